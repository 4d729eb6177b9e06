//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap renders v as its JSON object form and applies muts, so tests can
// send payloads a typed DTO cannot express (missing or mistyped fields).
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// ItemField mutates key on the basket line at index idx.
func ItemField(idx int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m["items"].([]any)
		if !ok || idx >= len(items) {
			return
		}
		if line, ok := items[idx].(map[string]any); ok {
			Field(key, value)(line)
		}
	}
}
