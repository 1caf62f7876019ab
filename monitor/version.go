package monitor

// Version information for the futexsync library.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the library.
type Info struct {
	// Version is the library version string.
	Version string

	// Backend is the kernel wait-queue backend in use.
	Backend string
}

// GetInfo returns information about the library build.
//
// Example:
//
//	info := monitor.GetInfo()
//	fmt.Printf("futexsync %s (%s)\n", info.Version, info.Backend)
func GetInfo() Info {
	return Info{
		Version: Version,
		Backend: "linux-futex",
	}
}
