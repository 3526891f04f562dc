// pkg/platform/archtag.go
package platform

import (
	"errors"
	"fmt"
	"sort"
)

const (
	SystemLinux   = "Linux"
	SystemWindows = "Windows"

	ArchLinux   = "i386_linux"
	ArchWindows = "i386_nt"
)

// ErrUnsupported indicates the platform has no ECLiPSe architecture tag
var ErrUnsupported = errors.New("platform not supported")

var knownSystems = map[string]string{
	"linux":   SystemLinux,
	"windows": SystemWindows,
	"darwin":  "Darwin",
	"freebsd": "FreeBSD",
	"netbsd":  "NetBSD",
	"openbsd": "OpenBSD",
}

// archTags is the closed set of systems an ECLiPSe build exists for
var archTags = map[string]string{
	SystemLinux:   ArchLinux,
	SystemWindows: ArchWindows,
}

// UnsupportedPlatformError is returned for a system identifier outside archTags
type UnsupportedPlatformError struct {
	System string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupported, e.System)
}

// Is reports whether target is ErrUnsupported
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupported
}

// ArchTag maps a system identifier to its ECLiPSe architecture tag.
// Matching is exact: "linux" is not "Linux".
func ArchTag(system string) (string, error) {
	tag, ok := archTags[system]
	if !ok {
		return "", &UnsupportedPlatformError{System: system}
	}
	return tag, nil
}

// Supported returns the system identifiers that have an architecture tag
func Supported() []string {
	systems := make([]string, 0, len(archTags))
	for s := range archTags {
		systems = append(systems, s)
	}
	sort.Strings(systems)
	return systems
}
