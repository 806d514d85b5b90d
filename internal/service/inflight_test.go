package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflight_BeginEnd(t *testing.T) {
	f := newInflight()

	require.NoError(t, f.begin("complaints/c1"))
	assert.ErrorIs(t, f.begin("complaints/c1"), ErrRequestInFlight)

	// Other keys are unaffected.
	require.NoError(t, f.begin("complaints/c2"))

	f.end("complaints/c1")
	assert.NoError(t, f.begin("complaints/c1"), "key is reusable once released")
}
