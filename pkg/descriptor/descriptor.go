// pkg/descriptor/descriptor.go
package descriptor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidInput indicates a descriptor cannot be formed from the inputs
var ErrInvalidInput = errors.New("invalid descriptor input")

// Descriptor describes one native extension build against an ECLiPSe
// installation. It is immutable: accessors return copies.
type Descriptor struct {
	name        string
	sources     []string
	includeDirs []string
	libraryDirs []string
	libraries   []string
}

// IncludeDir returns the ECLiPSe header directory for an architecture
func IncludeDir(root, archTag string) string {
	return JoinRoot(root, "include", archTag)
}

// LibraryDir returns the ECLiPSe library directory for an architecture
func LibraryDir(root, archTag string) string {
	return JoinRoot(root, "lib", archTag)
}

// JoinRoot appends parts to root with the host separator. Unlike
// filepath.Join the root is kept as given: "./" and ".." segments survive,
// so a root reached through a symlink still resolves the same way.
func JoinRoot(root string, parts ...string) string {
	sep := string(filepath.Separator)
	return strings.TrimRight(root, sep) + sep + strings.Join(parts, sep)
}

// Build derives the descriptor for ext from an accepted installation root
// and a resolved architecture tag. Derived directories are not checked
// for existence.
func Build(root, archTag string, ext Extension) (*Descriptor, error) {
	switch {
	case root == "":
		return nil, fmt.Errorf("%w: empty installation root", ErrInvalidInput)
	case archTag == "":
		return nil, fmt.Errorf("%w: empty architecture tag", ErrInvalidInput)
	case ext.Name == "":
		return nil, fmt.Errorf("%w: empty module name", ErrInvalidInput)
	case len(ext.Sources) == 0:
		return nil, fmt.Errorf("%w: module %s has no sources", ErrInvalidInput, ext.Name)
	}

	libraries := ext.Libraries
	if len(libraries) == 0 {
		libraries = DefaultExtension().Libraries
	}

	includeDirs := make([]string, 0, 1+len(ext.IncludeDirs))
	includeDirs = append(includeDirs, IncludeDir(root, archTag))
	includeDirs = append(includeDirs, ext.IncludeDirs...)

	return &Descriptor{
		name:        ext.Name,
		sources:     clone(ext.Sources),
		includeDirs: includeDirs,
		libraryDirs: []string{LibraryDir(root, archTag)},
		libraries:   clone(libraries),
	}, nil
}

// Name returns the dotted module name
func (d *Descriptor) Name() string { return d.name }

// Sources returns the source files
func (d *Descriptor) Sources() []string { return clone(d.sources) }

// IncludeDirs returns the header search path, installation first
func (d *Descriptor) IncludeDirs() []string { return clone(d.includeDirs) }

// LibraryDirs returns the library search path
func (d *Descriptor) LibraryDirs() []string { return clone(d.libraryDirs) }

// Libraries returns the libraries to link
func (d *Descriptor) Libraries() []string { return clone(d.libraries) }

// Equal reports whether two descriptors hold the same fields
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name &&
		equalStrings(d.sources, other.sources) &&
		equalStrings(d.includeDirs, other.includeDirs) &&
		equalStrings(d.libraryDirs, other.libraryDirs) &&
		equalStrings(d.libraries, other.libraries)
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
