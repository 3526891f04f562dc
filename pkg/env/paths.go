// pkg/env/paths.go
package env

import (
	"github.com/viant/afs"

	"github.com/arc-language/eclbuild/pkg/descriptor"
)

// New creates an Environment for an installation root and architecture tag
func New(installPath, archTag string) *Environment {
	return &Environment{
		InstallPath: installPath,
		ArchTag:     archTag,
	}
}

// GetIncludePaths returns absolute include directories
func (e *Environment) GetIncludePaths() []string {
	return e.join(GetLayout(e.ArchTag).Includes)
}

// GetLibraryPaths returns absolute library directories
func (e *Environment) GetLibraryPaths() []string {
	return e.join(GetLayout(e.ArchTag).Libraries)
}

// GetBinaryPaths returns absolute binary directories
func (e *Environment) GetBinaryPaths() []string {
	return e.join(GetLayout(e.ArchTag).Binaries)
}

func (e *Environment) join(rel []string) []string {
	paths := make([]string, 0, len(rel))
	for _, r := range rel {
		paths = append(paths, descriptor.JoinRoot(e.InstallPath, r))
	}
	return paths
}

func (e *Environment) fs() afs.Service {
	if e.FS != nil {
		return e.FS
	}
	return afs.New()
}
