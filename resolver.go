package xdirs

import "path/filepath"

// Resolver derives application-specific paths from the base paths supplied
// by a Provider, using the join rules of a single platform.
//
// A Resolver is stateless: every method is a pure function of
// (kind, platform, app) and is safe for concurrent use. Methods return the
// empty string when the requested kind has no standard location on the
// Resolver's platform; that is the only failure signal.
type Resolver struct {
	platform Platform
	provider Provider
}

// NewResolver returns a Resolver for the given platform backed by the given
// provider. Pass a fabricated Provider to exercise the join rules for a
// platform other than the host.
func NewResolver(platform Platform, provider Provider) *Resolver {
	return &Resolver{platform: platform, provider: provider}
}

// Platform returns the platform the Resolver derives paths for.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// dirFor appends app as a single path segment under the base for kind.
// An empty app yields the base itself; no validation is applied beyond that.
func (r *Resolver) dirFor(kind Kind, app string) string {
	base, ok := r.provider.BasePath(kind)
	if !ok {
		return ""
	}
	return filepath.Join(base, app)
}

// dir returns the generic base for kind.
func (r *Resolver) dir(kind Kind) string {
	base, ok := r.provider.BasePath(kind)
	if !ok {
		return ""
	}
	return base
}

// CacheDir returns the generic cache directory.
func (r *Resolver) CacheDir() string { return r.dir(KindCache) }

// ConfigDir returns the generic configuration directory.
func (r *Resolver) ConfigDir() string { return r.dir(KindConfig) }

// DataDir returns the generic data directory.
func (r *Resolver) DataDir() string { return r.dir(KindData) }

// DataLocalDir returns the generic local data directory.
func (r *Resolver) DataLocalDir() string { return r.dir(KindDataLocal) }

// CacheDirFor returns the cache directory for the named application.
func (r *Resolver) CacheDirFor(app string) string {
	return r.dirFor(KindCache, app)
}

// ConfigDirFor returns the configuration directory for the named application.
func (r *Resolver) ConfigDirFor(app string) string {
	return r.dirFor(KindConfig, app)
}

// DataDirFor returns the data directory for the named application.
func (r *Resolver) DataDirFor(app string) string {
	return r.dirFor(KindData, app)
}

// DataLocalDirFor returns the local data directory for the named application.
func (r *Resolver) DataLocalDirFor(app string) string {
	return r.dirFor(KindDataLocal, app)
}

// FavoritesDirFor returns the favorites directory for the named application.
func (r *Resolver) FavoritesDirFor(app string) string {
	return r.dirFor(KindFavorites, app)
}

// PreferenceDirFor returns the preferences directory for the named
// application.
func (r *Resolver) PreferenceDirFor(app string) string {
	return r.dirFor(KindPreferences, app)
}

// TemplateDirFor returns the document templates directory for the named
// application. macOS has no standalone templates location, so the path is
// rooted in the application's data directory there.
func (r *Resolver) TemplateDirFor(app string) string {
	if r.platform == PlatformDarwin {
		dataDir := r.dirFor(KindData, app)
		if dataDir == "" {
			return ""
		}
		return filepath.Join(dataDir, "Templates")
	}
	return r.dirFor(KindTemplate, app)
}

// LogDirFor returns the log files directory for the named application.
// On XDG systems logs live inside the application's local data directory;
// on Windows and macOS they live under a shared logs root.
func (r *Resolver) LogDirFor(app string) string {
	if r.platform == PlatformLinux {
		dataDir := r.dirFor(KindDataLocal, app)
		if dataDir == "" {
			return ""
		}
		return filepath.Join(dataDir, "logs")
	}
	return r.dirFor(KindLog, app)
}

// ApplicationDir returns the system-wide application install directory.
func (r *Resolver) ApplicationDir() string {
	return r.dir(KindApplication)
}

// ApplicationSharedDir returns the shared application components directory.
func (r *Resolver) ApplicationSharedDir() string {
	return r.dir(KindApplicationShared)
}

// UserApplicationDir returns the per-user application install directory.
func (r *Resolver) UserApplicationDir() string {
	return r.dir(KindUserApplication)
}

// AppContainerDirFor returns the sandbox container data root for the named
// application. Containers exist only on macOS; every other platform returns
// the empty string unconditionally.
func (r *Resolver) AppContainerDirFor(app string) string {
	if r.platform != PlatformDarwin {
		return ""
	}
	base, ok := r.provider.BasePath(KindAppContainer)
	if !ok {
		return ""
	}
	return filepath.Join(base, app, "Data")
}

// AppContainerExecutableDirFor returns the executable directory within the
// named application's sandbox container. Empty on everything but macOS.
func (r *Resolver) AppContainerExecutableDirFor(app string) string {
	container := r.AppContainerDirFor(app)
	if container == "" {
		return ""
	}
	return filepath.Join(container, "Contents", "MacOS")
}

// UserAppContainerDirFor returns the bundle directory of the named
// application installed under the user's Applications folder. Empty on
// everything but macOS.
func (r *Resolver) UserAppContainerDirFor(app string) string {
	if r.platform != PlatformDarwin {
		return ""
	}
	base, ok := r.provider.BasePath(KindUserApplication)
	if !ok {
		return ""
	}
	return filepath.Join(base, app+".app")
}

// UserAppContainerExecutableDirFor returns the executable directory within
// the named application's user-installed bundle. Empty on everything but
// macOS.
func (r *Resolver) UserAppContainerExecutableDirFor(app string) string {
	container := r.UserAppContainerDirFor(app)
	if container == "" {
		return ""
	}
	return filepath.Join(container, "Contents", "MacOS")
}
