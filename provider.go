package xdirs

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Provider supplies the base path for a directory kind, or reports that the
// kind has no standard location. Absence is a normal outcome, not an error:
// providers never fail, they only decline.
//
// The default provider is backed by github.com/adrg/xdg. A fabricated
// Provider can be injected into a Resolver to test the join rules without
// depending on real OS state.
type Provider interface {
	// BasePath returns the base path for the given kind and whether the
	// kind has a standard location on this provider's platform.
	BasePath(kind Kind) (string, bool)
}

// xdgProvider resolves base paths from the XDG Base Directory specification
// on Linux/BSD, Known Folder conventions on Windows, and Standard
// Directories on macOS. The heavy lifting is delegated to github.com/adrg/xdg;
// kinds that library does not expose (favorites, preferences, logs,
// containers, install locations) are filled in from the platform's
// documented home-relative conventions.
type xdgProvider struct {
	platform Platform
}

// NewProvider returns the default Provider for the given platform.
// Values for the dirs-backed kinds come from the adrg/xdg state of the
// running process, so the platform should normally be CurrentPlatform().
func NewProvider(platform Platform) Provider {
	return &xdgProvider{platform: platform}
}

func (p *xdgProvider) BasePath(kind Kind) (string, bool) {
	switch p.platform {
	case PlatformWindows:
		return p.windowsBase(kind)
	case PlatformDarwin:
		return p.darwinBase(kind)
	default:
		return p.xdgBase(kind)
	}
}

// xdgBase covers the Linux/BSD family. Favorites, preferences, and
// templates have no standard meaning here; log bases are derived by the
// Resolver from the local data directory. Application install locations
// follow the XDG applications directories.
func (p *xdgProvider) xdgBase(kind Kind) (string, bool) {
	switch kind {
	case KindCache:
		return xdg.CacheHome, true
	case KindConfig:
		return xdg.ConfigHome, true
	case KindData, KindDataLocal:
		return xdg.DataHome, true
	case KindApplication:
		return filepath.Join("/usr", "share", "applications"), true
	case KindApplicationShared:
		return filepath.Join("/usr", "local", "share", "applications"), true
	case KindUserApplication:
		return filepath.Join(xdg.DataHome, "applications"), true
	default:
		return "", false
	}
}

// darwinBase covers macOS Standard Directories. Template has no base of its
// own; the Resolver derives template paths from the data directory.
func (p *xdgProvider) darwinBase(kind Kind) (string, bool) {
	switch kind {
	case KindCache:
		return xdg.CacheHome, true
	case KindConfig:
		return xdg.ConfigHome, true
	case KindData, KindDataLocal:
		return xdg.DataHome, true
	case KindFavorites:
		return filepath.Join(xdg.Home, "Library", "Favorites"), true
	case KindPreferences:
		return filepath.Join(xdg.Home, "Library", "Preferences"), true
	case KindLog:
		return filepath.Join(xdg.Home, "Library", "Logs"), true
	case KindApplication:
		return "/Applications", true
	case KindApplicationShared:
		return filepath.Join("/Library", "Frameworks"), true
	case KindUserApplication:
		return filepath.Join(xdg.Home, "Applications"), true
	case KindAppContainer:
		return filepath.Join(xdg.Home, "Library", "Containers"), true
	default:
		return "", false
	}
}

// windowsBase covers the Known Folder conventions. adrg/xdg maps the
// dirs-backed kinds onto AppData; the install locations and favorites come
// from the folders' well-known environment variables.
func (p *xdgProvider) windowsBase(kind Kind) (string, bool) {
	switch kind {
	case KindCache:
		return xdg.CacheHome, true
	case KindConfig, KindPreferences:
		return xdg.ConfigHome, true
	case KindData, KindDataLocal:
		return xdg.DataHome, true
	case KindFavorites:
		return envDir("USERPROFILE", "Favorites")
	case KindTemplate:
		if xdg.UserDirs.Templates == "" {
			return "", false
		}
		return xdg.UserDirs.Templates, true
	case KindLog:
		return filepath.Join(xdg.DataHome, "Logs"), true
	case KindApplication:
		return envDir("ProgramFiles", "")
	case KindApplicationShared:
		return envDir("CommonProgramFiles", "")
	case KindUserApplication:
		return filepath.Join(xdg.DataHome, "Programs"), true
	default:
		return "", false
	}
}

// envDir resolves an environment-variable-rooted directory, optionally with
// a fixed subdirectory. An unset variable means the kind is unavailable.
func envDir(env, sub string) (string, bool) {
	root := os.Getenv(env)
	if root == "" {
		return "", false
	}
	if sub == "" {
		return root, true
	}
	return filepath.Join(root, sub), true
}
