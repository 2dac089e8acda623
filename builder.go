// File: vrsarin/argmap/builder.go
package argmap

import (
	"fmt"
	"os"
)

// SetupFunc declares an application's settings on a fresh Map.
type SetupFunc func(*Map)

// Builder provides a fluent interface for constructing a fully parsed Map:
// declarations, then defaults, then the config file (with includes), then
// the CLI overlay.
type Builder struct {
	setup    []SetupFunc
	file     string
	args     []string
	lax      bool
	logger   Logger
	resolver IdentityResolver
}

// NewBuilder creates a builder that parses os.Args[1:] by default.
func NewBuilder() *Builder {
	return &Builder{
		args: os.Args[1:],
	}
}

// WithSetup adds a declaration function. Setups run in the order added.
func (b *Builder) WithSetup(fn SetupFunc) *Builder {
	if fn != nil {
		b.setup = append(b.setup, fn)
	}
	return b
}

// WithFile sets the configuration file path. A missing file is logged and
// tolerated; the application keeps its declared values.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs replaces the command-line arguments to overlay.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithLax downgrades unknown/deprecated conditions to silent tolerance.
func (b *Builder) WithLax(lax bool) *Builder {
	b.lax = lax
	return b
}

// WithLogger sets the warning/error sink.
func (b *Builder) WithLogger(l Logger) *Builder {
	b.logger = l
	return b
}

// WithResolver sets the user/group identity-resolution capability.
func (b *Builder) WithResolver(r IdentityResolver) *Builder {
	b.resolver = r
	return b
}

// Build runs the declaration setups, registers defaults from the declared
// values, parses the configuration file and its includes, and overlays the
// command-line arguments.
func (b *Builder) Build() (*Map, error) {
	m := New()
	if b.logger != nil {
		m.SetLogger(b.logger)
	}
	if b.resolver != nil {
		m.SetResolver(b.resolver)
	}

	for _, fn := range b.setup {
		fn(m)
	}
	// Declared before SetDefaults so a later full dump has its default.
	if !m.IsSet("include-dir") {
		m.declare("include-dir", "Directory to include configuration files from", KindValue)
	}
	m.SetDefaults()

	if b.file != "" {
		if _, err := m.File(b.file, b.lax); err != nil {
			return nil, fmt.Errorf("config file %q: %w", b.file, err)
		}
		// A missing file was already logged by File; defaults stand.
	}

	if err := m.Parse(b.args, b.lax); err != nil {
		return nil, err
	}

	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Map {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("argmap build failed: %v", err))
	}
	return m
}
