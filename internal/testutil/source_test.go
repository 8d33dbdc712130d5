package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedSource_ReturnsDrawsInOrder(t *testing.T) {
	src := NewScriptedSource(2, 0, 7)

	assert.Equal(t, 3, src.Remaining())
	assert.Equal(t, uint64(2), src.Next())
	assert.Equal(t, uint64(0), src.Next())
	assert.Equal(t, uint64(7), src.Next())
	assert.Zero(t, src.Remaining())
}

func TestScriptedSource_PanicsWhenExhausted(t *testing.T) {
	src := NewScriptedSource(1)
	src.Next()

	assert.PanicsWithValue(t, "ScriptedSource: all draws exhausted", func() {
		src.Next()
	})
}
