// FILE: lixenwraith/cliconf/loader_test.go
package cliconf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestLoadDocument tests config file location and loading
func TestLoadDocument(t *testing.T) {
	s := newTestSchema(t)

	t.Run("DefaultPathFound", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "config.toml"), "port = 9100\nname = \"alpha\"\n")

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		doc, err := s.LoadDocument(mustParse(t, s), base, logger)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, uint16(9100), *doc.Port)
		assert.Equal(t, "alpha", *doc.Name)
		assert.Contains(t, logs.String(), "Loading config file")
		assert.Contains(t, logs.String(), filepath.Join(base, "config.toml"))
	})

	t.Run("DefaultPathMissingIsSilent", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		doc, err := s.LoadDocument(mustParse(t, s), t.TempDir(), logger)
		assert.NoError(t, err)
		assert.Nil(t, doc)
		assert.Empty(t, logs.String())
	})

	t.Run("ExplicitPathMissingIsFatal", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.toml")

		doc, err := s.LoadDocument(mustParse(t, s, "--config", missing), t.TempDir(), nil)
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.True(t, errors.Is(err, ErrConfigIO))
		assert.False(t, errors.Is(err, ErrDecode))
		assert.True(t, errors.Is(err, os.ErrNotExist))

		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, missing, configErr.Path)
	})

	t.Run("ExplicitEmptyPathIsFatal", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "config.toml"), "port = 9100\n")

		doc, err := s.LoadDocument(mustParse(t, s, "--config", ""), base, nil)
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.True(t, errors.Is(err, ErrConfigIO))

		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "", configErr.Path)
	})

	t.Run("ExplicitPathFound", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, "port = 9200\n")

		doc, err := s.LoadDocument(mustParse(t, s, "--config", path), t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint16(9200), *doc.Port)
	})

	t.Run("NoConfigWinsOverExplicitPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, "port = 9200\n")

		doc, err := s.LoadDocument(mustParse(t, s, "--no-config", "--config", path), t.TempDir(), nil)
		assert.NoError(t, err)
		assert.Nil(t, doc)

		doc, err = s.LoadDocument(mustParse(t, s, "--no-config", "--config", "/missing/path.toml"), t.TempDir(), nil)
		assert.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("UnparsableContentIsDecodeError", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "config.toml"), "port = = 1\n")

		_, err := s.LoadDocument(mustParse(t, s), base, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecode))
		assert.False(t, errors.Is(err, ErrConfigIO))
	})

	t.Run("WrongTypeIsDecodeError", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "config.toml"), "port = \"high\"\n")

		_, err := s.LoadDocument(mustParse(t, s), base, nil)
		assert.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("UnknownKeyIsDecodeError", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "config.toml"), "port = 1\nbogus = true\n\n[remote]\nextra = 1\n")

		_, err := s.LoadDocument(mustParse(t, s), base, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecode))
		assert.Contains(t, err.Error(), "unknown configuration keys: bogus, remote.extra")
	})

	t.Run("ReadFailureAfterOpenIsConfigError", func(t *testing.T) {
		dir := t.TempDir()

		_, err := s.LoadDocument(mustParse(t, s, "--config", dir), t.TempDir(), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigIO))
	})
}

// TestLoadDocumentHomeExpansion tests marker expansion for explicit and default paths
func TestLoadDocumentHomeExpansion(t *testing.T) {
	s := newTestSchema(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, "data", "config.toml"), "port = 9300\n")
	writeFile(t, filepath.Join(home, "explicit.toml"), "port = 9400\n")

	t.Run("DefaultPathUnderHomeBase", func(t *testing.T) {
		doc, err := s.LoadDocument(mustParse(t, s), "~/data", nil)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, uint16(9300), *doc.Port)

		manual, err := s.LoadDocument(mustParse(t, s), filepath.Join(home, "data"), nil)
		require.NoError(t, err)
		assert.Equal(t, manual, doc)
	})

	t.Run("ExplicitTildePath", func(t *testing.T) {
		doc, err := s.LoadDocument(mustParse(t, s, "--config", "~/explicit.toml"), t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint16(9400), *doc.Port)
	})

	t.Run("ExplicitHomeMarkerPath", func(t *testing.T) {
		doc, err := s.LoadDocument(mustParse(t, s, "--config", "$HOME/explicit.toml"), t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint16(9400), *doc.Port)
	})
}

// TestDecodeDocumentFormats tests format selection by extension
func TestDecodeDocumentFormats(t *testing.T) {
	want := &testDoc{
		Name:   ptr("alpha"),
		Port:   ptr[uint16](9000),
		Tags:   []string{"x", "y"},
		Quiet:  ptr(true),
		Remote: &testSection{Fetch: ptr(false)},
	}

	t.Run("TOML", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.toml", []byte(`
name = "alpha"
port = 9000
tags = ["x", "y"]
quiet = true

[remote]
fetch = false
`))
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("YAML", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.yml", []byte(`
name: alpha
port: 9000
tags: [x, y]
quiet: true
remote:
  fetch: false
`))
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("JSON", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.json", []byte(`{
  "name": "alpha",
  "port": 9000,
  "tags": ["x", "y"],
  "quiet": true,
  "remote": {"fetch": false}
}`))
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("UnknownKeyInYAML", func(t *testing.T) {
		_, err := DecodeDocument[testDoc]("config.yaml", []byte("bogus: 1\n"))
		require.Error(t, err)
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, "config.yaml", decodeErr.Path)
	})

	t.Run("OverflowInYAML", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.yaml", []byte("port: 70000\n"))
		assert.Nil(t, doc)
		require.True(t, errors.Is(err, ErrDecode))
		assert.Contains(t, err.Error(), "70000 is out of range for uint16")
	})

	t.Run("OverflowInJSON", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.json", []byte(`{"port": 70000}`))
		assert.Nil(t, doc)
		require.True(t, errors.Is(err, ErrDecode))
		assert.Contains(t, err.Error(), "70000 is out of range for uint16")
	})

	t.Run("NegativeIntoUnsigned", func(t *testing.T) {
		_, err := DecodeDocument[testDoc]("config.yaml", []byte("shift: -1\n"))
		assert.True(t, errors.Is(err, ErrDecode))

		_, err = DecodeDocument[testDoc]("config.json", []byte(`{"shift": -1}`))
		assert.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("UpperBoundFits", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.json", []byte(`{"port": 65535}`))
		require.NoError(t, err)
		assert.Equal(t, uint16(65535), *doc.Port)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := DecodeDocument[testDoc]("config.json", []byte(`{"port": `))
		assert.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("EmptyFile", func(t *testing.T) {
		doc, err := DecodeDocument[testDoc]("config.toml", nil)
		require.NoError(t, err)
		assert.Equal(t, &testDoc{}, doc)
	})
}

// TestSaveDocument tests atomic TOML writes
func TestSaveDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	doc := &testDoc{Port: ptr[uint16](9000), Tags: []string{"x"}, Remote: &testSection{Fetch: ptr(true)}}

	require.NoError(t, SaveDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "name", "nil fields are omitted")

	loaded, err := DecodeDocument[testDoc](path, data)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

// TestWriteAtomicEncodeFailure tests that a failed write keeps the previous file
func TestWriteAtomicEncodeFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "port = 9000\n")

	encodeErr := errors.New("encoder exploded")
	err := writeAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "port = ")
		return encodeErr
	})
	require.ErrorIs(t, err, encodeErr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "port = 9000\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "staged file must be removed")
}
