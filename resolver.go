// resolver.go
package eclbuild

import (
	"context"
	"io"
	"os"

	"github.com/arc-language/eclbuild/internal/ctxlog"
	"github.com/arc-language/eclbuild/pkg/core"
	"github.com/arc-language/eclbuild/pkg/descriptor"
	"github.com/arc-language/eclbuild/pkg/platform"
	"github.com/arc-language/eclbuild/pkg/root"
)

// Re-export descriptor types for convenience
type (
	Descriptor = descriptor.Descriptor
	Extension  = descriptor.Extension
	Package    = descriptor.Package
	Setup      = descriptor.Setup
	Config     = core.Config
)

// DefaultConfig returns a configuration with the pyclp defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Resolver turns an ECLiPSe installation and the running platform into
// build descriptors
type Resolver struct {
	config   *Config
	system   string
	acquirer *root.Acquirer
}

// Option customizes a Resolver
type Option func(*Resolver)

// WithSystem overrides the detected platform identifier (e.g. "Linux")
func WithSystem(system string) Option {
	return func(r *Resolver) {
		r.system = system
	}
}

// WithLookup replaces the environment lookup used for ECLIPSEDIR
func WithLookup(lookup root.LookupFunc) Option {
	return func(r *Resolver) {
		r.acquirer.Lookup = lookup
	}
}

// WithPrompt sets where the operator is prompted and answers are read.
// Interactive resolvers default to os.Stdin and os.Stderr.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(r *Resolver) {
		r.acquirer.In = in
		r.acquirer.Out = out
	}
}

// WithExists replaces the filesystem check applied to prompted paths
func WithExists(exists root.ExistsFunc) Option {
	return func(r *Resolver) {
		r.acquirer.Exists = exists
	}
}

// NewResolver creates a resolver for the given configuration
func NewResolver(config *Config, opts ...Option) *Resolver {
	if config == nil {
		config = core.DefaultConfig()
	}

	r := &Resolver{
		config: config,
		system: config.Platform,
		acquirer: &root.Acquirer{
			Interactive: !config.NonInteractive,
			MaxAttempts: config.MaxAttempts,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.system == "" {
		r.system = platform.Detect().System
	}
	if r.acquirer.Interactive && r.acquirer.In == nil {
		r.acquirer.In = os.Stdin
		r.acquirer.Out = os.Stderr
	}

	return r
}

// System returns the platform identifier the resolver targets
func (r *Resolver) System() string {
	return r.system
}

// Resolve runs the whole resolution: platform detection, installation
// root acquisition and descriptor emission. The platform is checked first
// so an unsupported host fails before the operator is prompted.
func (r *Resolver) Resolve(ctx context.Context) (*Setup, error) {
	logger := ctxlog.FromContext(ctx)

	logger.Debug("detecting platform", "system", r.system)
	arch, err := platform.ArchTag(r.system)
	if err != nil {
		return nil, &Error{Op: "resolve platform", Err: err}
	}
	logger.Debug("architecture resolved", "system", r.system, "arch", arch)

	eclipseDir, err := r.installationRoot(ctx)
	if err != nil {
		return nil, &Error{Op: "resolve installation root", Err: err}
	}
	logger.Debug("installation root acquired", "root", eclipseDir)

	setup := &Setup{
		Package: r.config.Package,
		Root:    eclipseDir,
		System:  r.system,
		ArchTag: arch,
	}

	for _, ext := range r.config.Extensions {
		d, err := descriptor.Build(eclipseDir, arch, ext)
		if err != nil {
			return nil, &Error{Op: "build descriptor", Module: ext.Name, Err: err}
		}
		logger.Debug("descriptor emitted", "module", d.Name(), "include_dirs", d.IncludeDirs(), "library_dirs", d.LibraryDirs())
		setup.Extensions = append(setup.Extensions, d)
	}

	return setup, nil
}

// installationRoot prefers an explicitly configured directory over
// ECLIPSEDIR and the prompt
func (r *Resolver) installationRoot(ctx context.Context) (string, error) {
	if r.config.EclipseDir != "" {
		return r.config.EclipseDir, nil
	}
	return r.acquirer.Acquire(ctx)
}
