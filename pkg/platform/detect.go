// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform represents the detected system platform
type Platform struct {
	OS     string // linux, darwin, windows
	Arch   string // amd64, arm64, 386, arm
	System string // Vendor spelling of the OS: Linux, Windows, Darwin
}

// Detect detects the current platform
func Detect() *Platform {
	return &Platform{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		System: Identifier(runtime.GOOS),
	}
}

// Identifier maps a Go OS name to the system identifier used by
// the ECLiPSe distribution (e.g. "linux" -> "Linux").
func Identifier(goos string) string {
	if id, ok := knownSystems[goos]; ok {
		return id
	}
	if goos == "" {
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

// ArchTag returns the resolved architecture tag for the platform
func (p *Platform) ArchTag() (string, error) {
	return ArchTag(p.System)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (system: %s)", p.OS, p.Arch, p.System)
}
