package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionOf(t *testing.T) {
	assert.Equal(t, SectionPotreby, SectionOf("Jedlo"))
	assert.Equal(t, SectionVolnyCas, SectionOf("hry"))
	assert.Equal(t, SectionSporenie, SectionOf("  Rezerva "))
	assert.Equal(t, SectionInvestovanie, SectionOf("KRYPTO"))

	t.Run("unmapped categories fall back to POTREBY", func(t *testing.T) {
		assert.Equal(t, SectionPotreby, SectionOf("nieco uplne ine"))
		assert.Equal(t, SectionPotreby, SectionOf(""))
	})
}

func TestIsValidSection(t *testing.T) {
	for _, s := range AllSections() {
		assert.True(t, IsValidSection(string(s)))
	}
	assert.False(t, IsValidSection("potreby"))
	assert.False(t, IsValidSection("OTHER"))
	assert.False(t, IsValidSection(""))
}

func TestIsValidGoalType(t *testing.T) {
	assert.True(t, IsValidGoalType("monthly"))
	assert.True(t, IsValidGoalType("longterm"))
	assert.False(t, IsValidGoalType("weekly"))
	assert.False(t, IsValidGoalType(""))
}
