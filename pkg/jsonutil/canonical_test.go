package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMarshal_SortsKeys(t *testing.T) {
	out, err := CanonicalMarshal(map[string]any{"z": 1, "a": 2, "m": []any{"x"}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"m":["x"],"z":1}`, string(out))
}

func TestCanonicalMarshal_Deterministic(t *testing.T) {
	v := map[string]any{
		"principal": "NT AUTHORITY\\SYSTEM",
		"deviant":   true,
		"nested":    map[string]any{"b": nil, "a": "x"},
	}
	first, err := CanonicalMarshal(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CanonicalMarshal(v)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestCanonicalMarshal_StructsViaTags(t *testing.T) {
	type rec struct {
		B string `json:"b"`
		A string `json:"a"`
	}
	out, err := CanonicalMarshal(rec{B: "2", A: "1"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1","b":"2"}`, string(out))
}
