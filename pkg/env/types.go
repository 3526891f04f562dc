// pkg/env/types.go
package env

import "github.com/viant/afs"

// Layout defines where files are located within an ECLiPSe installation
type Layout struct {
	Libraries []string // Relative paths to library directories
	Includes  []string // Relative paths to include directories
	Binaries  []string // Relative paths to binary directories
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "eclipse")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dll", ".lib"
	IsStatic bool   // True for .a and .lib files
}

// Environment represents an ECLiPSe installation for one architecture
type Environment struct {
	InstallPath string      // Root installation path (e.g., /opt/eclipse)
	ArchTag     string      // Architecture tag (i386_linux, i386_nt)
	FS          afs.Service // Filesystem access; afs.New() when nil
}

// Problem describes one missing piece of the installation
type Problem struct {
	Kind string // "include", "lib", "library"
	Path string // Path that was expected
}
