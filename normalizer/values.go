package normalizer

import (
	"fmt"
	"slices"
)

// Accessors for generic deserialized documents. YAML and JSON decoders both
// produce map[string]any trees with string keys; these helpers keep dialect
// traversal tolerant of missing or mistyped nodes.

// asMap returns v as a string-keyed map, or nil when it is not one.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// getMap returns m[key] as a map, or nil when absent or mistyped.
func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	return asMap(m[key])
}

// getString returns m[key] as a string, or "" when absent or mistyped.
func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// getBool returns m[key] as a bool, or false when absent or mistyped.
func getBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// getSlice returns m[key] as a slice, or nil when absent or mistyped.
func getSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	s, _ := m[key].([]any)
	return s
}

// getStringSlice returns m[key] as a string slice, skipping non-string
// elements.
func getStringSlice(m map[string]any, key string) []string {
	raw := getSlice(m, key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getStringMap returns m[key] as a string-to-string map, stringifying
// non-string values.
func getStringMap(m map[string]any, key string) map[string]string {
	raw := getMap(m, key)
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// sortedKeys returns the keys of m in lexicographic order. Go maps iterate in
// random order; canonical extraction needs a deterministic one.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
