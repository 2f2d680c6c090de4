package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The die's persisted field names are load-bearing: stored rolls and feed
// frames carry them, so clients read `type`, not `kind`.
func TestDieWireShape(t *testing.T) {
	die := Die{Kind: DieKindDark, Value: 6, ID: "d1"}

	raw, err := json.Marshal(die)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"dark","value":6,"id":"d1"}`, string(raw))

	var decoded Die
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, die, decoded)
}
