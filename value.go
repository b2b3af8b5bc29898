// FILE: lixenwraith/cliconf/value.go
package cliconf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/pflag"
)

// value is a typed flag or positional slot filled by the grammar engine
type value interface {
	pflag.Value
	get() any
	isSet() bool
	isBool() bool
	setAll(tokens []string) error
}

// typedValue implements pflag.Value for any T that mapstructure can decode from a string.
// Slice values accumulate across repeated flags.
type typedValue[T any] struct {
	value T
	set   bool
}

func (v *typedValue[T]) String() string {
	if !v.set {
		return ""
	}
	return formatValue(v.value)
}

func (v *typedValue[T]) Set(s string) error {
	var parsed T
	if err := coerce(s, &parsed); err != nil {
		return err
	}

	rv := reflect.ValueOf(&v.value).Elem()
	if v.set && rv.Kind() == reflect.Slice {
		rv.Set(reflect.AppendSlice(rv, reflect.ValueOf(parsed)))
	} else {
		v.value = parsed
	}
	v.set = true
	return nil
}

// Type names follow pflag's conventions so usage output stays familiar
func (v *typedValue[T]) Type() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String {
		return "stringSlice"
	}
	return t.String()
}

func (v *typedValue[T]) get() any { return v.value }

func (v *typedValue[T]) isSet() bool { return v.set }

func (v *typedValue[T]) isBool() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Bool
}

// setAll fills a positional slot; variadic slots receive every remaining token
func (v *typedValue[T]) setAll(tokens []string) error {
	for _, tok := range tokens {
		if err := v.Set(tok); err != nil {
			return fmt.Errorf("invalid argument %q: %w", tok, err)
		}
	}
	return nil
}

// formatValue renders a value for help defaults and debug output
func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return ""
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<none>"
		}
		return formatValue(rv.Elem().Interface())
	}
	if rv.Kind() == reflect.Slice {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return fmt.Sprint(v)
}
