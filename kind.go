package xdirs

// Kind identifies a category of standard directory.
//
// The set is closed: every (Kind, Platform) pair is handled explicitly by
// the Resolver and the default Provider, so availability can be enumerated
// in advance rather than discovered at runtime.
type Kind int

const (
	// KindCache is the user's cache directory.
	KindCache Kind = iota

	// KindConfig is the user's configuration directory.
	KindConfig

	// KindData is the user's data directory (roaming on Windows).
	KindData

	// KindDataLocal is the user's local (non-roaming) data directory.
	KindDataLocal

	// KindFavorites is the user's favorites/bookmarks directory.
	KindFavorites

	// KindPreferences is the user's preferences directory.
	KindPreferences

	// KindTemplate is the user's document templates directory.
	KindTemplate

	// KindLog is the user's log files directory.
	KindLog

	// KindApplication is the system-wide application install directory.
	KindApplication

	// KindApplicationShared is the directory for shared application
	// components (frameworks, common files).
	KindApplicationShared

	// KindUserApplication is the per-user application install directory.
	KindUserApplication

	// KindAppContainer is the root under which per-application sandbox
	// containers live. Only meaningful on macOS.
	KindAppContainer
)

var kindNames = map[Kind]string{
	KindCache:             "cache",
	KindConfig:            "config",
	KindData:              "data",
	KindDataLocal:         "data_local",
	KindFavorites:         "favorites",
	KindPreferences:       "preferences",
	KindTemplate:          "template",
	KindLog:               "log",
	KindApplication:       "application",
	KindApplicationShared: "application_shared",
	KindUserApplication:   "user_application",
	KindAppContainer:      "app_container",
}

// String returns the kind's identifier as used in CLI output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
