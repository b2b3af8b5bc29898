// FILE: lixenwraith/cliconf/raw.go
package cliconf

import (
	"sort"
)

// Raw holds exactly what the command line supplied, before any config or default knowledge.
// A Raw is produced by Schema.Parse and never modified afterwards.
type Raw struct {
	values   map[string]any
	commands map[string]bool
}

func newRaw() *Raw {
	return &Raw{
		values:   make(map[string]any),
		commands: make(map[string]bool),
	}
}

// Active reports whether the command with the given key is on the matched path
func (r *Raw) Active(key string) bool {
	if r == nil {
		return false
	}
	return r.commands[key]
}

// Present reports whether a value was extracted for key
func (r *Raw) Present(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[key]
	return ok
}

// Keys returns the keys of all extracted values in sorted order
func (r *Raw) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the command-line value of f and whether it was present
func Lookup[D, T any](r *Raw, f Field[D, T]) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	v, ok := r.values[f.Key]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
