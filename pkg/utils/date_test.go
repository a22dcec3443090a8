package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("accepts strict YYYY-MM-DD", func(t *testing.T) {
		d, err := ParseDate("2025-03-09")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, raw := range []string{"09.03.2025", "2025/03/09", "2025-3-9", "2025-03-09T00:00:00Z", ""} {
			_, err := ParseDate(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.True(t, IsValidMonth("1999-12"))

	for _, raw := range []string{"2025-1", "2025", "2025-001", "25-01", "2025-01-01", "abcd-ef", ""} {
		assert.False(t, IsValidMonth(raw), raw)
	}

	for _, raw := range []string{"2025-00", "2025-13", "2025-99"} {
		assert.False(t, IsValidMonth(raw), raw)
	}
}

func TestPrevMonth(t *testing.T) {
	assert.Equal(t, "2025-02", PrevMonth("2025-03"))
	assert.Equal(t, "2024-12", PrevMonth("2025-01"))
}

func TestLastNMonths(t *testing.T) {
	months := LastNMonths(6, "2025-02")

	require.Len(t, months, 6)
	assert.Equal(t, []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}, months)
}

func TestMonthRange(t *testing.T) {
	t.Run("half open over the month", func(t *testing.T) {
		from, to, err := MonthRange("2025-12")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("rejects malformed months", func(t *testing.T) {
		_, _, err := MonthRange("2025-13")
		assert.Error(t, err)
	})
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "2025-03", FormatMonth(2025, 3))
	assert.Equal(t, "0999-12", FormatMonth(999, 12))
}
