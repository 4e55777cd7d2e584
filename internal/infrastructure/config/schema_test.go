package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchemaFile(t *testing.T) {
	isolateXDG(t)

	path, err := GenerateSchemaFile()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "bridgehost configuration", doc["title"])
	assert.Contains(t, string(data), "precheck_os_permissions")
	assert.Contains(t, string(data), "allow_list")
}

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	require.NotEmpty(t, keys)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}

	for _, want := range []string{
		"permissions.policy.mode",
		"permissions.precheck_os_permissions",
		"logging.level",
		"database.path",
		"window.width",
		"window.inhibit_idle",
	} {
		assert.True(t, seen[want], want)
	}
}
