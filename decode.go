// FILE: lixenwraith/cliconf/decode.go
package cliconf

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// coerce converts a command-line token into target.
// Weak typing lets "30303" become a uint16 and "a,b" a []string.
func coerce(input any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(input)
}

// decodeDocumentMap decodes a generic map (YAML, JSON) into the document struct.
// Field names follow the document's toml tags; unknown keys are rejected.
func decodeDocumentMap(data map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		TagName:     "toml",
		ErrorUnused: true,
		DecodeHook:  decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(data)
}

// decodeHook returns the composite decode hook shared by flags and documents
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		integerRangeHookFunc(),
	)
}

// integerRangeHookFunc rejects numbers that do not fit the target integer type.
// mapstructure converts between numeric kinds without a range check.
func integerRangeHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return data, nil
		}

		src, ok := numericValue(data)
		if !ok {
			return data, nil
		}
		if !fitsInteger(src, to) {
			return nil, fmt.Errorf("%v is out of range for %s", data, to)
		}
		return data, nil
	}
}

// numericValue normalizes a decoded number, including json.Number, to a reflect.Value
func numericValue(data any) (reflect.Value, bool) {
	if n, ok := data.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return reflect.ValueOf(i), true
		}
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return reflect.ValueOf(u), true
		}
		if f, err := n.Float64(); err == nil {
			return reflect.ValueOf(f), true
		}
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v, true
	}
	return reflect.Value{}, false
}

func fitsInteger(src reflect.Value, to reflect.Type) bool {
	zero := reflect.Zero(to)
	unsigned := zero.CanUint()

	switch {
	case src.CanInt():
		n := src.Int()
		if unsigned {
			return n >= 0 && !zero.OverflowUint(uint64(n))
		}
		return !zero.OverflowInt(n)

	case src.CanUint():
		n := src.Uint()
		if unsigned {
			return !zero.OverflowUint(n)
		}
		return n <= math.MaxInt64 && !zero.OverflowInt(int64(n))

	case src.CanFloat():
		f := src.Float()
		if unsigned {
			return f >= 0 && f < math.MaxUint64 && !zero.OverflowUint(uint64(f))
		}
		return f >= math.MinInt64 && f < math.MaxInt64 && !zero.OverflowInt(int64(f))
	}
	return true
}
