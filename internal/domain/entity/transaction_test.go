package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdjustOperation(t *testing.T) {
	for _, valid := range []string{"add", "subtract", "set_zero"} {
		operation, ok := ParseAdjustOperation(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, AdjustOperation(valid), operation)
	}

	for _, invalid := range []string{"", "ADD", "multiply", "zero"} {
		_, ok := ParseAdjustOperation(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestAdjustOperation_RequiresAmount(t *testing.T) {
	assert.True(t, AdjustAdd.RequiresAmount())
	assert.True(t, AdjustSubtract.RequiresAmount())
	assert.False(t, AdjustSetZero.RequiresAmount())
}
