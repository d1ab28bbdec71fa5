package xdirs

// std is the host-bound resolver used by the package-level functions.
var std = NewResolver(CurrentPlatform(), NewProvider(CurrentPlatform()))

// Default returns the host-bound Resolver used by the package-level
// functions.
func Default() *Resolver {
	return std
}

// CacheDir returns the user's generic cache directory.
//
//	Linux:   $XDG_CACHE_HOME or ~/.cache
//	macOS:   ~/Library/Caches
//	Windows: %LOCALAPPDATA%\cache
func CacheDir() string { return std.CacheDir() }

// ConfigDir returns the user's generic configuration directory.
//
//	Linux:   $XDG_CONFIG_HOME or ~/.config
//	macOS:   ~/Library/Application Support
//	Windows: %LOCALAPPDATA%
func ConfigDir() string { return std.ConfigDir() }

// DataDir returns the user's generic data directory.
//
//	Linux:   $XDG_DATA_HOME or ~/.local/share
//	macOS:   ~/Library/Application Support
//	Windows: %LOCALAPPDATA%
func DataDir() string { return std.DataDir() }

// DataLocalDir returns the user's generic local data directory.
//
//	Linux:   $XDG_DATA_HOME or ~/.local/share
//	macOS:   ~/Library/Application Support
//	Windows: %LOCALAPPDATA%
func DataLocalDir() string { return std.DataLocalDir() }

// CacheDirFor returns the cache directory for the named application:
// [CacheDir] plus app as a single path segment.
//
// The name is used verbatim; callers are responsible for supplying a valid
// path segment for the platform. An empty name yields the base directory
// itself.
func CacheDirFor(app string) string { return std.CacheDirFor(app) }

// ConfigDirFor returns the configuration directory for the named
// application: [ConfigDir] plus app as a single path segment.
func ConfigDirFor(app string) string { return std.ConfigDirFor(app) }

// DataDirFor returns the data directory for the named application:
// [DataDir] plus app as a single path segment.
func DataDirFor(app string) string { return std.DataDirFor(app) }

// DataLocalDirFor returns the local data directory for the named
// application: [DataLocalDir] plus app as a single path segment.
func DataLocalDirFor(app string) string { return std.DataLocalDirFor(app) }

// FavoritesDirFor returns the favorites directory for the named application.
//
//	Linux:   (none)
//	macOS:   ~/Library/Favorites/<app>
//	Windows: %USERPROFILE%\Favorites\<app>
func FavoritesDirFor(app string) string { return std.FavoritesDirFor(app) }

// PreferenceDirFor returns the preferences directory for the named
// application.
//
//	Linux:   (none)
//	macOS:   ~/Library/Preferences/<app>
//	Windows: %LOCALAPPDATA%\<app>
func PreferenceDirFor(app string) string { return std.PreferenceDirFor(app) }

// TemplateDirFor returns the document templates directory for the named
// application.
//
//	Linux:   (none)
//	macOS:   ~/Library/Application Support/<app>/Templates
//	Windows: %APPDATA%\Microsoft\Windows\Templates\<app>
func TemplateDirFor(app string) string { return std.TemplateDirFor(app) }

// LogDirFor returns the log files directory for the named application.
//
//	Linux:   $XDG_DATA_HOME/<app>/logs or ~/.local/share/<app>/logs
//	macOS:   ~/Library/Logs/<app>
//	Windows: %LOCALAPPDATA%\Logs\<app>
func LogDirFor(app string) string { return std.LogDirFor(app) }

// ApplicationDir returns the system-wide application install directory.
//
//	Linux:   /usr/share/applications
//	macOS:   /Applications
//	Windows: %ProgramFiles%
func ApplicationDir() string { return std.ApplicationDir() }

// ApplicationSharedDir returns the shared application components directory.
//
//	Linux:   /usr/local/share/applications
//	macOS:   /Library/Frameworks
//	Windows: %CommonProgramFiles%
func ApplicationSharedDir() string { return std.ApplicationSharedDir() }

// UserApplicationDir returns the per-user application install directory.
//
//	Linux:   $XDG_DATA_HOME/applications or ~/.local/share/applications
//	macOS:   ~/Applications
//	Windows: %LOCALAPPDATA%\Programs
func UserApplicationDir() string { return std.UserApplicationDir() }

// AppContainerDirFor returns the sandbox container data root for the named
// application. Containers are a macOS construct; every other platform
// returns the empty string unconditionally.
//
//	macOS: ~/Library/Containers/<app>/Data
func AppContainerDirFor(app string) string {
	return std.AppContainerDirFor(app)
}

// AppContainerExecutableDirFor returns the executable directory within the
// named application's sandbox container. Empty on everything but macOS.
//
//	macOS: ~/Library/Containers/<app>/Data/Contents/MacOS
func AppContainerExecutableDirFor(app string) string {
	return std.AppContainerExecutableDirFor(app)
}

// UserAppContainerDirFor returns the bundle directory of the named
// application installed in the user's Applications folder. Empty on
// everything but macOS.
//
//	macOS: ~/Applications/<app>.app
func UserAppContainerDirFor(app string) string {
	return std.UserAppContainerDirFor(app)
}

// UserAppContainerExecutableDirFor returns the executable directory within
// the named application's user-installed bundle. Empty on everything but
// macOS.
//
//	macOS: ~/Applications/<app>.app/Contents/MacOS
func UserAppContainerExecutableDirFor(app string) string {
	return std.UserAppContainerExecutableDirFor(app)
}
