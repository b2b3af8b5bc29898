// File: lixenwraith/cliconf/doc.go

// Package cliconf resolves a program's effective configuration from three layered
// sources: command-line arguments, an optional config file, and compiled-in defaults.
// It also declares and parses a command tree whose arguments are scoped to the
// command that owns them.
//
// Features:
//   - Static schema of typed fields, each classified by its merge policy (Kind)
//   - Command tree with nested sub-commands, scoped flags and positional arguments
//   - Two-phase resolution: Parse yields a Raw record, Merge yields immutable Values
//   - Config files in TOML, YAML or JSON, decoded into a typed document
//   - Source tracking to see where values originated
//   - One error façade with defined exit statuses
//
// Quick Start:
//
//	type Doc struct {
//	    Port *uint16 `toml:"port"`
//	}
//
//	var port = &cliconf.Field[Doc, uint16]{
//	    Key: "port", Name: "port", Kind: cliconf.Defaulted, Default: 8080,
//	    Help: "Listen port",
//	    Config: func(d *Doc) (uint16, bool) {
//	        if d.Port == nil {
//	            return 0, false
//	        }
//	        return *d.Port, true
//	    },
//	}
//
//	schema := cliconf.MustSchema(cliconf.Schema[Doc]{
//	    Name:   "app",
//	    Fields: []cliconf.Decl[Doc]{port},
//	})
//
//	values, err := cliconf.NewBuilder(schema).Build()
//	if err != nil {
//	    cliconf.Exit(err)
//	}
//	p := cliconf.Get(values, *port)
//
// Precedence (highest to lowest):
//  1. Command-line arguments
//  2. Configuration file
//  3. Default values
//
// Boolean UsageFlag fields are the OR of all three sources instead.
//
// Values are immutable once built and safe for concurrent reads.
package cliconf
