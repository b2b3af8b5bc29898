// FILE: lixenwraith/cliconf/loader.go
package cliconf

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadDocument locates and reads the config document for a parsed command line.
//
// Loading is skipped when the no-config field resolves to true. An explicit --config path
// that cannot be opened is a *ConfigError; the computed default path failing to open
// is not an error and yields the empty document. A nil document means "use defaults".
func (s *Schema[D]) LoadDocument(raw *Raw, baseDir string, logger *slog.Logger) (*D, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if s.NoConfig != nil {
		noConfig, _ := s.NoConfig.resolve(raw, new(D))
		if asBool(noConfig) {
			return nil, nil
		}
	}

	path, explicit := s.configPath(raw)
	if path == "" && !explicit {
		return nil, nil
	}
	path = ReplaceHome(baseDir, path)

	file, err := os.Open(path)
	if err != nil {
		if explicit {
			return nil, &ConfigError{Path: path, Err: err}
		}
		// Default location missing is the normal first-run case
		return nil, nil
	}
	defer file.Close()

	logger.Info("Loading config file", "path", path)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return DecodeDocument[D](path, data)
}

// configPath returns the candidate config path and whether the command line supplied it.
// The fallback resolves the path field against the empty document, so only its default applies.
func (s *Schema[D]) configPath(raw *Raw) (string, bool) {
	if s.ConfigPath == nil {
		return "", false
	}
	if p, ok := Lookup(raw, *s.ConfigPath); ok {
		return p, true
	}

	resolved, _ := s.ConfigPath.resolve(nil, new(D))
	switch p := resolved.(type) {
	case string:
		return p, false
	case *string:
		if p != nil {
			return *p, false
		}
	}
	return "", false
}

// DecodeDocument deserializes config file contents into D, choosing the format by extension:
// .yaml/.yml and .json go through the map decoder, everything else is TOML.
// Keys the document does not declare are rejected.
func DecodeDocument[D any](path string, data []byte) (*D, error) {
	doc := new(D)

	switch detectFileFormat(path) {
	case "yaml":
		fileConfig := make(map[string]any)
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		if err := decodeDocumentMap(fileConfig, doc); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}

	case "json":
		fileConfig := make(map[string]any)
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&fileConfig); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		if err := decodeDocumentMap(fileConfig, doc); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}

	default:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, &DecodeError{
				Path: path,
				Err:  fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", ")),
			}
		}
	}

	return doc, nil
}

// SaveDocument writes doc to path as TOML atomically. Nil pointer fields are omitted.
func SaveDocument[D any](path string, doc *D) error {
	return writeAtomic(path, func(w io.Writer) error {
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode config document as TOML: %w", err)
		}
		return nil
	})
}

// writeAtomic streams encode into a hidden sibling of path and renames it into place.
// The staged file is removed on any failure, leaving an existing target untouched.
func writeAtomic(path string, encode func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	staged, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to stage config file in '%s': %w", dir, err)
	}
	defer func() {
		if err != nil {
			staged.Close()
			os.Remove(staged.Name())
		}
	}()

	w := bufio.NewWriter(staged)
	if err = encode(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write staged config file: %w", err)
	}
	if err = staged.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if err = staged.Sync(); err != nil {
		return fmt.Errorf("failed to sync staged config file: %w", err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("failed to close staged config file: %w", err)
	}
	if err = os.Rename(staged.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config file '%s': %w", path, err)
	}
	return nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "toml"
	}
}
