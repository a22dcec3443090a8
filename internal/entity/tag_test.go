package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTagType(t *testing.T) {
	assert.Equal(t, TagTypeNone, InferTagType(false, false))
	assert.Equal(t, TagTypeIncome, InferTagType(true, false))
	assert.Equal(t, TagTypeExpense, InferTagType(false, true))
	assert.Equal(t, TagTypeBoth, InferTagType(true, true))
}

func TestTagCounter(t *testing.T) {
	tag := Tag{Counter: 1}

	tag.IncrementCounter()
	assert.Equal(t, 2, tag.Counter)

	tag.DecrementCounter()
	tag.DecrementCounter()
	assert.Equal(t, 0, tag.Counter)

	// Never goes negative.
	tag.DecrementCounter()
	assert.Equal(t, 0, tag.Counter)
}

func TestIsValidTagType(t *testing.T) {
	assert.True(t, IsValidTagType("INCOME"))
	assert.True(t, IsValidTagType("EXPENSE"))
	assert.False(t, IsValidTagType("BOTH"))
	assert.False(t, IsValidTagType("income"))
	assert.False(t, IsValidTagType(""))
}
