// pkg/env/verify.go
package env

import (
	"context"
	"fmt"
	"strings"
)

// Verify checks that the derived include and library directories exist
// and that every named library can be found. It returns the problems found;
// an empty result means the installation looks usable.
func (e *Environment) Verify(ctx context.Context, libraries ...string) ([]Problem, error) {
	fs := e.fs()
	var problems []Problem

	check := func(kind string, dirs []string) error {
		for _, dir := range dirs {
			abs, err := absPath(dir)
			if err != nil {
				return err
			}
			ok, err := fs.Exists(ctx, abs)
			if err != nil {
				return fmt.Errorf("checking %s: %w", dir, err)
			}
			if !ok {
				problems = append(problems, Problem{Kind: kind, Path: dir})
			}
		}
		return nil
	}

	if err := check("include", e.GetIncludePaths()); err != nil {
		return nil, err
	}
	if err := check("lib", e.GetLibraryPaths()); err != nil {
		return nil, err
	}

	for _, name := range libraries {
		lib, err := e.FindLibrary(ctx, name)
		if err != nil {
			return nil, err
		}
		if lib == nil {
			problems = append(problems, Problem{Kind: "library", Path: name})
		}
	}

	return problems, nil
}

// String returns a one-line description of the problem
func (p Problem) String() string {
	if p.Kind == "library" {
		return fmt.Sprintf("library %s not found", p.Path)
	}
	return fmt.Sprintf("%s directory %s does not exist", p.Kind, p.Path)
}

// FormatProblems joins problems for an error message
func FormatProblems(problems []Problem) string {
	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "; ")
}
