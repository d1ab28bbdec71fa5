// Package commands implements the CLI commands for xdirs.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xdirs"
	"github.com/thoreinstein/xdirs/internal/errors"
	"github.com/thoreinstein/xdirs/internal/logging"
)

// format holds the value of the -f/--format flag.
var format string

// only holds the value of the --only flag: kind names to restrict the
// report to.
var only []string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text, json, yaml")
	rootCmd.Flags().StringSliceVar(&only, "only", nil,
		"restrict output to the named kinds (e.g., config_for,log_for)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("xdirs version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "xdirs [app]",
	Short: "Print standard application directory paths",
	Long: `xdirs prints the standard, platform-appropriate filesystem paths
for application data: cache, configuration, data, logs, and installed
application locations.

Without an argument it prints the generic directories. With an
application name it additionally prints the application-specific
variants, including the macOS container paths where available.

Paths are computed, never created: xdirs does not touch the
filesystem and does not check that a directory exists. A kind with no
standard location on this platform is reported as (none).`,
	Example: `  # Generic directories for this platform
  xdirs

  # Directories for a specific application
  xdirs myapp

  # Machine-readable output
  xdirs myapp --format json`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := ""
		if len(args) == 1 {
			app = args[0]
		}

		entries, err := filter(collect(app), only)
		if err != nil {
			return errors.NewUserError(err, "run 'xdirs --help' to see kind names")
		}
		slog.Debug("resolved paths",
			"platform", xdirs.CurrentPlatform(),
			"app", app,
			"kinds", len(entries))

		return write(cmd, entries)
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		err := errors.New("cannot use --quiet and --verbose together")
		return errors.NewUserError(err, "drop one of the two flags")
	}

	level := slog.LevelError
	if !quiet {
		level = logging.LevelFromVerbosity(verbosity)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	return nil
}

// entry is one row of the path report. An empty Path means the kind has no
// standard location on this platform.
type entry struct {
	Kind string `json:"kind" yaml:"kind"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// collect builds the path report in a fixed, stable order. Application-name
// dependent rows are included only when an app was given.
func collect(app string) []entry {
	entries := []entry{
		{"cache", xdirs.CacheDir()},
		{"config", xdirs.ConfigDir()},
		{"data", xdirs.DataDir()},
		{"data_local", xdirs.DataLocalDir()},
		{"application", xdirs.ApplicationDir()},
		{"application_shared", xdirs.ApplicationSharedDir()},
		{"user_application", xdirs.UserApplicationDir()},
	}

	if app == "" {
		return entries
	}

	return append(entries,
		entry{"cache_for", xdirs.CacheDirFor(app)},
		entry{"config_for", xdirs.ConfigDirFor(app)},
		entry{"data_for", xdirs.DataDirFor(app)},
		entry{"data_local_for", xdirs.DataLocalDirFor(app)},
		entry{"favorites_for", xdirs.FavoritesDirFor(app)},
		entry{"preference_for", xdirs.PreferenceDirFor(app)},
		entry{"template_for", xdirs.TemplateDirFor(app)},
		entry{"log_for", xdirs.LogDirFor(app)},
		entry{"app_container_for", xdirs.AppContainerDirFor(app)},
		entry{"app_container_executable_for", xdirs.AppContainerExecutableDirFor(app)},
		entry{"user_app_container_for", xdirs.UserAppContainerDirFor(app)},
		entry{"user_app_container_executable_for", xdirs.UserAppContainerExecutableDirFor(app)},
	)
}

// filter restricts the report to the named kinds, preserving report order.
// Names that match nothing in the report are rejected.
func filter(entries []entry, names []string) ([]entry, error) {
	if len(names) == 0 {
		return entries, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var kept []entry
	for _, e := range entries {
		if wanted[e.Kind] {
			kept = append(kept, e)
			delete(wanted, e.Kind)
		}
	}

	for name := range wanted {
		return nil, errors.Wrap(errors.ErrUnknownKind, name)
	}
	return kept, nil
}

// write encodes the report to the command's stdout in the selected format.
func write(cmd *cobra.Command, entries []entry) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		for _, e := range entries {
			path := e.Path
			if path == "" {
				path = "(none)"
			}
			fmt.Fprintf(out, "%-34s %s\n", e.Kind, path)
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "encoding JSON"), "")
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		if err := enc.Encode(entries); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "encoding YAML"), "")
		}
		return nil
	default:
		err := errors.Wrap(errors.ErrUnknownFormat, format)
		return errors.NewUserError(err, "use text, json, or yaml")
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
