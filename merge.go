// FILE: lixenwraith/cliconf/merge.go
package cliconf

import (
	"fmt"
	"strings"
)

// Values is the fully resolved configuration. It is immutable once built
// and safe to share across goroutines.
type Values struct {
	order    []string
	values   map[string]any
	sources  map[string]Source
	commands map[string]bool
}

// Merge combines the command-line values and the config document into the final values.
// A nil document stands for the empty document, so every field falls through to its default.
// Merge never fails and has no side effects.
func (s *Schema[D]) Merge(raw *Raw, doc *D) Values {
	if doc == nil {
		doc = new(D)
	}

	v := Values{
		values:   make(map[string]any),
		sources:  make(map[string]Source),
		commands: make(map[string]bool),
	}
	resolve := func(d Decl[D]) {
		val, src := d.resolve(raw, doc)
		v.order = append(v.order, d.key())
		v.values[d.key()] = val
		v.sources[d.key()] = src
	}

	for _, f := range s.Fields {
		resolve(f)
	}
	walkCommands(s.Commands, 0, func(c *Command[D], _ int) {
		active := raw.Active(c.Key)
		v.order = append(v.order, c.Key)
		v.commands[c.Key] = active
		if active {
			v.sources[c.Key] = SourceCLI
		} else {
			v.sources[c.Key] = SourceDefault
		}
		for _, a := range c.Args {
			resolve(a)
		}
	})
	return v
}

// Get returns the resolved value of f; an absent optional yields the zero value
func Get[D, T any](v Values, f Field[D, T]) T {
	switch x := v.values[f.Key].(type) {
	case T:
		return cloneValue(x)
	case *T:
		if x != nil {
			return cloneValue(*x)
		}
	}
	var zero T
	return zero
}

// GetOptional returns the resolved value of f, or nil when it resolved to absence
func GetOptional[D, T any](v Values, f Field[D, T]) *T {
	switch x := v.values[f.Key].(type) {
	case *T:
		if x != nil {
			c := cloneValue(*x)
			return &c
		}
	case T:
		c := cloneValue(x)
		return &c
	}
	return nil
}

// Active reports whether the command with the given key was selected
func (v Values) Active(key string) bool {
	return v.commands[key]
}

// Source reports where the value for key came from
func (v Values) Source(key string) (Source, bool) {
	src, ok := v.sources[key]
	return src, ok
}

// Keys returns all resolved keys in declaration order
func (v Values) Keys() []string {
	return append([]string(nil), v.order...)
}

// Debug renders every resolved key with its value and source, one per line
func (v Values) Debug() string {
	var b strings.Builder
	for _, key := range v.order {
		val, isValue := v.values[key]
		if !isValue {
			val = v.commands[key]
		}
		fmt.Fprintf(&b, "%s = %s (%s)\n", key, formatValue(val), v.sources[key])
	}
	return b.String()
}
