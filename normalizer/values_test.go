package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessorsTolerateMissingAndMistyped(t *testing.T) {
	m := map[string]any{
		"str":    "hello",
		"num":    42,
		"flag":   true,
		"nested": map[string]any{"k": "v"},
		"list":   []any{"a", 1, "b"},
		"scopes": map[string]any{"read": "read things", "weight": 10},
	}

	assert.Equal(t, "hello", getString(m, "str"))
	assert.Empty(t, getString(m, "num"))
	assert.Empty(t, getString(m, "missing"))
	assert.Empty(t, getString(nil, "str"))

	assert.True(t, getBool(m, "flag"))
	assert.False(t, getBool(m, "str"))
	assert.False(t, getBool(nil, "flag"))

	assert.Equal(t, map[string]any{"k": "v"}, getMap(m, "nested"))
	assert.Nil(t, getMap(m, "str"))
	assert.Nil(t, getMap(nil, "nested"))

	assert.Len(t, getSlice(m, "list"), 3)
	assert.Nil(t, getSlice(m, "str"))

	assert.Equal(t, []string{"a", "b"}, getStringSlice(m, "list"))
	assert.Nil(t, getStringSlice(m, "missing"))

	assert.Equal(t, map[string]string{"read": "read things", "weight": "10"},
		getStringMap(m, "scopes"))
	assert.Nil(t, getStringMap(m, "missing"))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"zebra": 1, "apple": 2, "mango": 3}
	assert.Equal(t, []string{"apple", "mango", "zebra"}, sortedKeys(m))
	assert.Empty(t, sortedKeys(map[string]int{}))
}

func TestWarningSink(t *testing.T) {
	sink := &WarningSink{}
	assert.Zero(t, sink.Len())
	assert.Nil(t, sink.Warnings())

	sink.Add("first")
	sink.Addf("second: %d", 2)
	assert.Equal(t, 2, sink.Len())
	assert.Equal(t, []string{"first", "second: 2"}, sink.Warnings())
}
