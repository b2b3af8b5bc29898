// FILE: lixenwraith/cliconf/fixture_test.go
package cliconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testDoc is the config document of the test schema
type testDoc struct {
	Name    *string      `toml:"name"`
	Port    *uint16      `toml:"port"`
	Tags    []string     `toml:"tags"`
	Logging *string      `toml:"logging"`
	Shift   *uint16      `toml:"shift"`
	Quiet   *bool        `toml:"quiet"`
	Remote  *testSection `toml:"remote"`
}

type testSection struct {
	Fetch *bool `toml:"fetch"`
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

var (
	tConfig = Field[testDoc, string]{
		Key: "config", Name: "config", Kind: Defaulted, Default: "$BASE/config.toml",
		Help: "Config file path",
	}
	tNoConfig = Field[testDoc, bool]{
		Key: "no_config", Name: "no-config", Kind: Plain, Help: "Skip the config file",
	}
	tName = Field[testDoc, string]{
		Key: "name", Name: "name", Kind: Defaulted, Default: "node", Help: "Node name",
		Config: func(d *testDoc) (string, bool) { return deref(d.Name) },
	}
	tPort = Field[testDoc, uint16]{
		Key: "port", Name: "port", Kind: Defaulted, Default: 8080, Help: "Listen port",
		Config: func(d *testDoc) (uint16, bool) { return deref(d.Port) },
	}
	tTags = Field[testDoc, []string]{
		Key: "tags", Name: "tags", Kind: Defaulted, Default: []string{"a", "b"}, Help: "Tags",
		Config: func(d *testDoc) ([]string, bool) { return d.Tags, d.Tags != nil },
	}
	tLogging = Field[testDoc, string]{
		Key: "logging", Name: "logging", Short: "l", Kind: OptionalPassthrough, Help: "Log filter",
		Config: func(d *testDoc) (string, bool) { return deref(d.Logging) },
	}
	tShift = Field[testDoc, uint16]{
		Key: "shift", Name: "shift", Kind: UsageDefaulted, Default: 0,
		Usage:  "--shift=[N] 'Shift all ports by N.'",
		Config: func(d *testDoc) (uint16, bool) { return deref(d.Shift) },
	}
	tQuiet = Field[testDoc, bool]{
		Key: "quiet", Name: "quiet", Kind: UsageFlag,
		Usage:  "-q, --quiet 'Suppress output.'",
		Short:  "q",
		Config: func(d *testDoc) (bool, bool) { return deref(d.Quiet) },
	}
	tForced = Field[testDoc, bool]{
		Key: "forced", Name: "forced", Kind: UsageFlag, Default: true,
		Usage: "--forced 'Always on.'",
	}

	tRunTarget = Field[testDoc, string]{
		Key: "run_target", Name: "target", Kind: ScopedArgument, Position: 1, Required: true,
	}
	tRunDryRun = Field[testDoc, bool]{
		Key: "run_dry_run", Name: "dry-run", Kind: ScopedArgument, Help: "Print actions only",
	}
	tRemoteVerbose = Field[testDoc, bool]{
		Key: "remote_verbose", Name: "verbose", Kind: ScopedArgument, Help: "Verbose remote output",
	}
	tRemoteAddName = Field[testDoc, string]{
		Key: "remote_add_name", Name: "name", Kind: ScopedArgument, Position: 1, Required: true,
	}
	tRemoteAddURL = Field[testDoc, string]{
		Key: "remote_add_url", Name: "url", Kind: ScopedArgument, Position: 2, Required: true,
	}
	tRemoteAddFetch = Field[testDoc, bool]{
		Key: "remote_add_fetch", Name: "fetch", Kind: ScopedArgument, Help: "Fetch after adding",
	}
	tRemoteRemoveName = Field[testDoc, string]{
		Key: "remote_remove_name", Name: "name", Kind: ScopedArgument, Position: 1, Required: true,
	}
	tListPattern = Field[testDoc, []string]{
		Key: "list_pattern", Name: "pattern", Kind: ScopedArgument, Position: 1, Variadic: true,
	}
	tShowID = Field[testDoc, uint64]{
		Key: "show_id", Name: "id", Kind: ScopedArgument, Position: 1,
	}
)

func testSchemaDecl() Schema[testDoc] {
	return Schema[testDoc]{
		Name:    "app",
		About:   "Test application",
		Version: func() string { return "app version 1.0" },
		Fields: []Decl[testDoc]{
			tConfig, tNoConfig, tName, tPort, tTags, tLogging, tShift, tQuiet, tForced,
		},
		Commands: []*Command[testDoc]{
			{
				Key: "run", Name: "run", About: "Run a target",
				Args: []Decl[testDoc]{tRunTarget, tRunDryRun},
			},
			{
				Key: "remote", Name: "remote", About: "Manage remotes",
				Args: []Decl[testDoc]{tRemoteVerbose},
				Commands: []*Command[testDoc]{
					{
						Key: "remote_add", Name: "add", About: "Add a remote",
						Args: []Decl[testDoc]{tRemoteAddName, tRemoteAddURL, tRemoteAddFetch},
					},
					{
						Key: "remote_remove", Name: "remove", About: "Remove a remote",
						Args: []Decl[testDoc]{tRemoteRemoveName},
					},
				},
			},
			{
				Key: "list", Name: "list", About: "List entries",
				Args: []Decl[testDoc]{tListPattern},
			},
			{
				Key: "show", Name: "show", About: "Show an entry",
				Args: []Decl[testDoc]{tShowID},
			},
		},
		ConfigPath: &tConfig,
		NoConfig:   &tNoConfig,
	}
}

func newTestSchema(t *testing.T) *Schema[testDoc] {
	t.Helper()
	s, err := NewSchema(testSchemaDecl())
	require.NoError(t, err)
	return s
}

func mustParse(t *testing.T, s *Schema[testDoc], args ...string) *Raw {
	t.Helper()
	raw, err := s.Parse(append([]string{"app"}, args...))
	require.NoError(t, err)
	return raw
}
