// Package xdirs computes standard, platform-appropriate filesystem paths
// for application data: cache, configuration, data, logs, and installed
// application locations.
//
// It complements the generic directories exposed by github.com/adrg/xdg
// with application-specific variants: for each generic directory such as
// [CacheDir] there is a [CacheDirFor] that appends an application name
// using the platform's join rule. Not every standard directory can safely
// have an application name appended to it, so the *For functions encode the
// correct construction per platform rather than leaving it to the caller.
//
// # Directory Families
//
//	| Generic Form   | Application-Specific Form |
//	|----------------|---------------------------|
//	| CacheDir       | CacheDirFor               |
//	| ConfigDir      | ConfigDirFor              |
//	| DataDir        | DataDirFor                |
//	| DataLocalDir   | DataLocalDirFor           |
//	| (none)         | FavoritesDirFor           |
//	| (none)         | PreferenceDirFor          |
//	| (none)         | TemplateDirFor            |
//	| (none)         | LogDirFor                 |
//
// Favorites, preferences, templates, and logs have no generic accessor:
// appending an application name to those bases is only meaningful through
// the platform-specific construction, so the *For form is the only form.
//
// Installed application locations are exposed via [ApplicationDir],
// [ApplicationSharedDir], and [UserApplicationDir]. For systems with a
// notion of an application container or bundle, [AppContainerDirFor],
// [AppContainerExecutableDirFor], [UserAppContainerDirFor], and
// [UserAppContainerExecutableDirFor] locate those trees; they return values
// only on macOS.
//
// # Platform Conventions
//
// Paths follow
//
//   - the XDG Base Directory specification on Linux and the BSDs,
//   - the Known Folder conventions on Windows, and
//   - the Standard Directories on macOS.
//
// # Absence
//
// Every function returns the empty string when the requested directory has
// no standard location on the host platform. That is the only failure
// signal: no function returns an error, touches the filesystem, or checks
// that a directory exists. Whether a value is present depends only on the
// (kind, platform) pair, never on transient conditions.
//
// # Testing
//
// The package-level functions are bound to the host. [NewResolver] accepts
// an explicit [Platform] and [Provider], allowing the join rules of all
// three platform families to be exercised from a single operating system
// with fabricated base paths.
//
// # Example
//
//	installed := xdirs.ApplicationDir()
//	config := xdirs.ConfigDirFor("myapp")
//	logs := xdirs.LogDirFor("myapp")
package xdirs
