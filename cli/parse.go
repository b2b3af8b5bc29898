// FILE: lixenwraith/cliconf/cli/parse.go
package cli

import (
	"github.com/lixenwraith/cliconf"
)

// NewBuilder returns a builder for the ledgerd schema, reading os.Args by default
func NewBuilder() *cliconf.Builder[Document] {
	return cliconf.NewBuilder(Schema)
}

// Parse resolves argv (program name first) against the config file and defaults
func Parse(argv []string) (Args, error) {
	return ParseWith(NewBuilder().WithArgs(argv))
}

// ParseWith resolves using a configured builder
func ParseWith(b *cliconf.Builder[Document]) (Args, error) {
	v, err := b.Build()
	if err != nil {
		return Args{}, err
	}
	return FromValues(v), nil
}

// ParseWithDocument resolves argv against doc without touching the filesystem
func ParseWithDocument(argv []string, doc *Document) (Args, error) {
	return ParseWith(NewBuilder().WithArgs(argv).WithDocument(doc))
}

// ParseWithoutConfig resolves argv against compiled defaults only
func ParseWithoutConfig(argv []string) (Args, error) {
	return ParseWithDocument(argv, nil)
}

// ParseDocument decodes TOML config text
func ParseDocument(text string) (*Document, error) {
	return cliconf.DecodeDocument[Document]("config.toml", []byte(text))
}
