// FILE: lixenwraith/cliconf/value_test.go
package cliconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypedValue tests string coercion of flag values
func TestTypedValue(t *testing.T) {
	t.Run("Integer", func(t *testing.T) {
		v := &typedValue[uint32]{}
		require.NoError(t, v.Set("10240"))
		assert.Equal(t, uint32(10240), v.get())
		assert.Equal(t, "uint32", v.Type())
		assert.True(t, v.isSet())
		assert.Error(t, (&typedValue[uint32]{}).Set("-1"))
	})

	t.Run("Bool", func(t *testing.T) {
		v := &typedValue[bool]{}
		assert.True(t, v.isBool())
		require.NoError(t, v.Set("true"))
		assert.Equal(t, true, v.get())
		assert.Error(t, (&typedValue[bool]{}).Set("maybe"))
	})

	t.Run("Duration", func(t *testing.T) {
		v := &typedValue[time.Duration]{}
		require.NoError(t, v.Set("1m30s"))
		assert.Equal(t, 90*time.Second, v.get())
	})

	t.Run("SliceAccumulates", func(t *testing.T) {
		v := &typedValue[[]string]{}
		assert.Equal(t, "stringSlice", v.Type())
		assert.Equal(t, "", v.String())
		require.NoError(t, v.Set("a,b"))
		require.NoError(t, v.Set("c"))
		assert.Equal(t, []string{"a", "b", "c"}, v.get())
		assert.Equal(t, "[a,b,c]", v.String())
	})

	t.Run("SetAllReportsToken", func(t *testing.T) {
		v := &typedValue[[]uint16]{}
		require.NoError(t, v.setAll([]string{"1", "2"}))
		assert.Equal(t, []uint16{1, 2}, v.get())

		err := v.setAll([]string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid argument "x"`)
	})
}

// TestFormatValue tests rendering for help defaults and debug output
func TestFormatValue(t *testing.T) {
	assert.Equal(t, "8080", formatValue(uint16(8080)))
	assert.Equal(t, "[web3,eth]", formatValue([]string{"web3", "eth"}))
	assert.Equal(t, "<none>", formatValue((*string)(nil)))
	assert.Equal(t, "x", formatValue(ptr("x")))
	assert.Equal(t, "", formatValue(nil))
}
