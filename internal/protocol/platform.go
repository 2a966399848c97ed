package protocol

import (
	"runtime"
	"strings"
)

// Platform captures the host traits the pipeline depends on: scheme
// prefix length, path separator syntax, and case sensitivity. It is
// configured once at startup and fixed for the process lifetime, which
// also keeps Windows path semantics testable on any host.
type Platform struct {
	Windows bool
}

// HostPlatform returns the platform matching the running OS.
func HostPlatform() Platform {
	return Platform{Windows: runtime.GOOS == "windows"}
}

// Separator returns the platform's path separator.
func (p Platform) Separator() string {
	if p.Windows {
		return `\`
	}
	return "/"
}

// IsAbs reports whether path is absolute under the platform's syntax.
// On Windows that means a drive-qualified path or a UNC path; elsewhere
// a leading separator.
func (p Platform) IsAbs(path string) bool {
	if !p.Windows {
		return strings.HasPrefix(path, "/")
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' &&
		(path[2] == '\\' || path[2] == '/')
}

// fold returns the comparison form of a path: lower-cased on Windows
// (NTFS is case-insensitive), unchanged elsewhere.
func (p Platform) fold(path string) string {
	if p.Windows {
		return strings.ToLower(path)
	}
	return path
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
