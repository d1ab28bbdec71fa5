// Package errors provides error handling conventions for the xdirs CLI.
//
// This package re-exports the core helpers of github.com/cockroachdb/errors,
// defines sentinel errors for common failure conditions, an ExitError type
// for CLI exit code handling, and exit code constants following standard
// Unix conventions.
//
// The xdirs library itself raises no errors: absence of a path is its only
// failure signal, modeled as an empty string. This package exists for the
// command-line frontend, where flag validation and output encoding can fail.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, xdirserrors.ErrUnknownFormat) {
//	    // handle unknown format
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flag, unknown format)
//   - ExitSystem (2): System-related error (I/O, encoding)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion
// for CLI applications. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := xdirserrors.NewUserError(xdirserrors.ErrUnknownFormat, "use text, json, or yaml")
//	var exitErr *xdirserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
