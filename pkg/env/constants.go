// pkg/env/constants.go
package env

import (
	"path/filepath"

	"github.com/arc-language/eclbuild/pkg/platform"
)

// GetLayout returns the per-architecture directory structure of an ECLiPSe
// installation. These are RELATIVE paths within the installation root.
func GetLayout(archTag string) Layout {
	return Layout{
		// include/i386_linux/eclipse.h
		Includes: []string{
			filepath.Join("include", archTag),
		},
		// lib/i386_linux/libeclipse.so
		Libraries: []string{
			filepath.Join("lib", archTag),
		},
		// bin/i386_linux/eclipse
		Binaries: []string{
			filepath.Join("bin", archTag),
		},
	}
}

// GetLibraryExtensions returns file extensions to look for based on the architecture
func GetLibraryExtensions(archTag string) []string {
	if platform.IsWindowsTag(archTag) {
		return []string{".dll", ".lib"}
	}
	return []string{".so", ".a"}
}

// GetLibraryPrefix returns the file name prefix libraries carry on the architecture
func GetLibraryPrefix(archTag string) string {
	if platform.IsWindowsTag(archTag) {
		return ""
	}
	return "lib"
}

func isStaticExtension(ext string) bool {
	return ext == ".a" || ext == ".lib"
}
