// FILE: lixenwraith/cliconf/builder.go
package cliconf

import (
	"log/slog"
	"os"
)

// Builder provides a fluent interface for resolving a schema against one invocation
type Builder[D any] struct {
	schema  *Schema[D]
	args    []string
	baseDir string
	logger  *slog.Logger
	doc     *D
	hasDoc  bool
}

// NewBuilder creates a builder reading os.Args and the platform data directory
func NewBuilder[D any](schema *Schema[D]) *Builder[D] {
	return &Builder[D]{
		schema:  schema,
		args:    os.Args,
		baseDir: DataDir(schema.Name),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithArgs sets the command line, program name first
func (b *Builder[D]) WithArgs(args []string) *Builder[D] {
	b.args = args
	return b
}

// WithBaseDir sets the directory that $BASE expands to
func (b *Builder[D]) WithBaseDir(dir string) *Builder[D] {
	b.baseDir = dir
	return b
}

// WithLogger sets the sink for loader diagnostics
func (b *Builder[D]) WithLogger(logger *slog.Logger) *Builder[D] {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithDocument bypasses file loading and resolves against doc.
// A nil doc resolves every field to its default.
func (b *Builder[D]) WithDocument(doc *D) *Builder[D] {
	b.doc = doc
	b.hasDoc = true
	return b
}

// Build parses the command line, loads the config document and merges them
func (b *Builder[D]) Build() (Values, error) {
	raw, err := b.schema.Parse(b.args)
	if err != nil {
		return Values{}, err
	}

	doc := b.doc
	if !b.hasDoc {
		doc, err = b.schema.LoadDocument(raw, b.baseDir, b.logger)
		if err != nil {
			return Values{}, err
		}
	}

	return b.schema.Merge(raw, doc), nil
}

// MustBuild is like Build but renders the error and exits the process on failure,
// including help and version requests
func (b *Builder[D]) MustBuild() Values {
	v, err := b.Build()
	if err != nil {
		Exit(err)
	}
	return v
}
