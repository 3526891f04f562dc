// pkg/env/library.go
package env

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/eclbuild/pkg/descriptor"
)

// FindLibrary searches for a specific library by name.
// Returns the first match found in library search paths, or nil.
func (e *Environment) FindLibrary(ctx context.Context, name string) (*Library, error) {
	fs := e.fs()
	prefix := GetLibraryPrefix(e.ArchTag)
	extensions := GetLibraryExtensions(e.ArchTag)

	for _, dir := range e.GetLibraryPaths() {
		abs, err := absPath(dir)
		if err != nil {
			return nil, err
		}
		ok, err := fs.Exists(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", dir, err)
		}
		if !ok {
			continue
		}
		objects, err := fs.List(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}

		for _, ext := range extensions {
			filename := prefix + name + ext
			for _, object := range objects {
				if object.IsDir() {
					continue
				}
				// Accept versioned names too (e.g., libeclipse.so.7)
				if object.Name() == filename || strings.HasPrefix(object.Name(), filename+".") {
					return &Library{
						Name:     name,
						Path:     filepath.Join(abs, object.Name()),
						Type:     ext,
						IsStatic: isStaticExtension(ext),
					}, nil
				}
			}
		}
	}

	return nil, nil
}

// HasLibrary checks if a library exists in the installation
func (e *Environment) HasLibrary(ctx context.Context, name string) bool {
	lib, err := e.FindLibrary(ctx, name)
	return err == nil && lib != nil
}

// absPath anchors a relative path at the working directory without
// cleaning it
func absPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return descriptor.JoinRoot(wd, path), nil
}
