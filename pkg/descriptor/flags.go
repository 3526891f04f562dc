// pkg/descriptor/flags.go
package descriptor

import "strings"

// CompilerFlags returns the -I/-L/-l flags for the descriptor
func (d *Descriptor) CompilerFlags() CompilerFlags {
	flags := CompilerFlags{}
	for _, dir := range d.includeDirs {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	for _, dir := range d.libraryDirs {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)
	}
	for _, lib := range d.libraries {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+lib)
	}
	return flags
}

// CFlags returns the include flags joined for a compiler command line
func (f CompilerFlags) CFlags() string {
	return strings.Join(f.IncludeFlags, " ")
}

// LDFlags returns the library and link flags joined for a linker command line
func (f CompilerFlags) LDFlags() string {
	return strings.Join(append(append([]string{}, f.LibraryFlags...), f.LinkFlags...), " ")
}

// CgoEnv returns CGO_CFLAGS and CGO_LDFLAGS assignments so a cgo build
// links the same library
func (d *Descriptor) CgoEnv() []string {
	flags := d.CompilerFlags()
	return []string{
		"CGO_CFLAGS=" + flags.CFlags(),
		"CGO_LDFLAGS=" + flags.LDFlags(),
	}
}
