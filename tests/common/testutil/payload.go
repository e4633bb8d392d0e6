//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit mutates a decoded JSON object.
type Edit func(map[string]any)

// JSONBody round-trips v through JSON so tests can drop or corrupt single
// fields of an otherwise valid request.
func JSONBody(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Without(key string) Edit {
	return func(m map[string]any) { delete(m, key) }
}

func With(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}
