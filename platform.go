package xdirs

import "runtime"

// Platform identifies the host operating system family for the purpose of
// path construction. It is an input to the Resolver rather than an implicit
// process-wide global, so all three families can be exercised from a single
// test environment.
type Platform string

const (
	// PlatformLinux covers Linux and the BSDs: any system following the
	// XDG Base Directory specification.
	PlatformLinux Platform = "linux"

	// PlatformWindows covers Windows and its Known Folder conventions.
	PlatformWindows Platform = "windows"

	// PlatformDarwin covers macOS and its Standard Directories.
	PlatformDarwin Platform = "darwin"
)

// CurrentPlatform returns the platform of the running process.
// Operating systems without their own directory conventions are treated
// as members of the XDG family.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}
