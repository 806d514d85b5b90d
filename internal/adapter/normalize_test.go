package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeIDs_TopLevelObject(t *testing.T) {
	out := canonicalizeIDs(json.RawMessage(`{"_id":"abc","name":"A-101"}`))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "abc", m["id"])
	assert.NotContains(t, m, "_id")
}

func TestCanonicalizeIDs_ArrayAndNested(t *testing.T) {
	raw := json.RawMessage(`[{"_id":"1","flat":{"_id":"f1"}},{"id":"2"}]`)
	out := canonicalizeIDs(raw)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(out, &items))

	assert.Equal(t, "1", items[0]["id"])
	nested := items[0]["flat"].(map[string]any)
	assert.Equal(t, "f1", nested["id"])
	assert.Equal(t, "2", items[1]["id"])
}

func TestCanonicalizeIDs_ExistingIDWins(t *testing.T) {
	out := canonicalizeIDs(json.RawMessage(`{"_id":"mongo","id":"canonical"}`))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "canonical", m["id"])
	assert.NotContains(t, m, "_id")
}

func TestCanonicalizeIDs_InvalidJSONPassedThrough(t *testing.T) {
	raw := json.RawMessage(`{not-json`)
	assert.Equal(t, raw, canonicalizeIDs(raw))
}

func TestCanonicalizeIDs_Empty(t *testing.T) {
	assert.Empty(t, canonicalizeIDs(nil))
}
