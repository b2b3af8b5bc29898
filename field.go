// FILE: lixenwraith/cliconf/field.go
package cliconf

import (
	"fmt"
	"reflect"
)

// Decl is a schema entry the engine can bind, extract and resolve.
// Field is the only implementation.
type Decl[D any] interface {
	key() string
	kind() Kind
	flag() (flagSpec, error)
	positional() (index int, required, variadic bool)
	newValue() value
	defaultText() string
	resolve(r *Raw, doc *D) (any, Source)
	validate() error
}

// Field declares one configurable value of type T backed by config document D.
//
// Key is the identifier used in raw and resolved records and must be unique across
// the schema. Name is the exposed long flag (or the positional placeholder for
// positional scoped arguments) and is always declared explicitly.
type Field[D, T any] struct {
	Key   string
	Name  string
	Short string
	Help  string

	// Usage declares the flag surface in usage grammar, e.g.
	// "--ports-shift=[SHIFT] 'Add SHIFT to all port numbers.'".
	// Required for UsageDefaulted and UsageFlag, forbidden otherwise.
	Usage string

	Kind    Kind
	Default T

	// Config maps the document to an override; nil means the document never overrides
	Config func(doc *D) (T, bool)

	// Position is the 1-based positional index of a scoped argument, 0 for a flag
	Position int
	Required bool
	Variadic bool
}

func (f Field[D, T]) key() string { return f.Key }

func (f Field[D, T]) kind() Kind { return f.Kind }

func (f Field[D, T]) positional() (int, bool, bool) {
	return f.Position, f.Required, f.Variadic
}

func (f Field[D, T]) newValue() value { return &typedValue[T]{} }

func (f Field[D, T]) defaultText() string {
	switch f.Kind {
	case Defaulted, UsageDefaulted:
		return formatValue(f.Default)
	default:
		return ""
	}
}

// flag returns the flag surface, parsing the usage grammar when declared
func (f Field[D, T]) flag() (flagSpec, error) {
	if f.Usage == "" {
		return flagSpec{name: f.Name, short: f.Short, help: f.Help}, nil
	}
	u, err := parseUsage(f.Usage)
	if err != nil {
		return flagSpec{}, err
	}
	return flagSpec{
		name:      u.long,
		short:     u.short,
		help:      u.helpText(),
		valueName: u.valueName,
		takesVal:  u.takesValue,
	}, nil
}

// FromConfig returns the document override for the field, if any
func (f Field[D, T]) FromConfig(doc *D) (T, bool) {
	if f.Config == nil || doc == nil {
		var zero T
		return zero, false
	}
	return f.Config(doc)
}

// resolve applies the merge policy of the field's kind
func (f Field[D, T]) resolve(r *Raw, doc *D) (any, Source) {
	raw, present := Lookup(r, f)

	switch f.Kind {
	case Defaulted, UsageDefaulted:
		if present {
			return cloneValue(raw), SourceCLI
		}
		if v, ok := f.FromConfig(doc); ok {
			return cloneValue(v), SourceFile
		}
		return cloneValue(f.Default), SourceDefault

	case OptionalPassthrough:
		if present {
			v := cloneValue(raw)
			return &v, SourceCLI
		}
		if v, ok := f.FromConfig(doc); ok {
			v = cloneValue(v)
			return &v, SourceFile
		}
		return (*T)(nil), SourceDefault

	case UsageFlag:
		cli := present && asBool(raw)
		cfg, ok := f.FromConfig(doc)
		fromFile := ok && asBool(cfg)
		on := PresenceOr(cli, fromFile, asBool(f.Default))
		src := SourceDefault
		switch {
		case cli:
			src = SourceCLI
		case fromFile:
			src = SourceFile
		}
		return on, src

	default:
		// Plain and ScopedArgument: copy as-is
		if present {
			return cloneValue(raw), SourceCLI
		}
		var zero T
		return zero, SourceDefault
	}
}

func (f Field[D, T]) validate() error {
	if f.Key == "" {
		return fmt.Errorf("field with name %q has no key", f.Name)
	}
	if f.Name == "" {
		return fmt.Errorf("field %s has no name", f.Key)
	}

	isBool := reflect.TypeFor[T]().Kind() == reflect.Bool
	isSlice := reflect.TypeFor[T]().Kind() == reflect.Slice

	switch f.Kind {
	case Plain, Defaulted, OptionalPassthrough, ScopedArgument:
		if f.Usage != "" {
			return fmt.Errorf("field %s: usage grammar is only valid for usage kinds, got %s", f.Key, f.Kind)
		}
	case UsageDefaulted, UsageFlag:
		if f.Usage == "" {
			return fmt.Errorf("field %s: %s requires a usage string", f.Key, f.Kind)
		}
		u, err := parseUsage(f.Usage)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Key, err)
		}
		if u.long != f.Name {
			return fmt.Errorf("field %s: usage declares --%s but the field is named %q", f.Key, u.long, f.Name)
		}
		if f.Short != "" && f.Short != u.short {
			return fmt.Errorf("field %s: short flag %q disagrees with usage %q", f.Key, f.Short, u.short)
		}
		if f.Kind == UsageFlag && (u.takesValue || !isBool) {
			return fmt.Errorf("field %s: usage flags must be bool and take no value", f.Key)
		}
		if f.Kind == UsageDefaulted && !u.takesValue {
			return fmt.Errorf("field %s: usage-defaulted fields must declare a value placeholder", f.Key)
		}
		if u.multiple && !isSlice {
			return fmt.Errorf("field %s: usage allows multiple values but the type is %s", f.Key, reflect.TypeFor[T]())
		}
	default:
		return fmt.Errorf("field %s: kind %s cannot be declared as a field", f.Key, f.Kind)
	}

	if len(f.Short) > 1 {
		return fmt.Errorf("field %s: short flag %q must be a single character", f.Key, f.Short)
	}
	if f.Position < 0 {
		return fmt.Errorf("field %s: negative position %d", f.Key, f.Position)
	}
	if f.Position > 0 && f.Kind != ScopedArgument {
		return fmt.Errorf("field %s: only scoped arguments can be positional", f.Key)
	}
	if f.Position > 0 && f.Short != "" {
		return fmt.Errorf("field %s: positional arguments have no short flag", f.Key)
	}
	if (f.Variadic || f.Required) && f.Position == 0 {
		return fmt.Errorf("field %s: variadic and required apply to positional arguments only", f.Key)
	}
	if f.Variadic && !isSlice {
		return fmt.Errorf("field %s: variadic arguments must be slices", f.Key)
	}
	return nil
}

// PresenceOr merges a boolean switch: CLI presence, config assertion and compiled default.
// The merge is an OR, so source order never changes the result.
func PresenceOr(cli, config, def bool) bool {
	return cli || config || def
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// cloneValue copies slices so resolved records never alias defaults or raw storage
func cloneValue[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	dup := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(dup, rv)
	return dup.Interface().(T)
}
