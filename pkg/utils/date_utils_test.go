package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 6, int(parsed.Month()))
	assert.Equal(t, 1, parsed.Day())
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "2024-6-1", "06/01/2024", "2024-13-01", "not-a-date"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", input)
	}
}

func TestDurationDaysIsInclusive(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2024-06-01", "2024-06-07", 7},
		{"2024-06-01", "2024-06-02", 2},
		{"2024-02-28", "2024-03-01", 3}, // leap year
		{"2024-12-30", "2025-01-02", 4},
	}
	for _, tt := range tests {
		got, err := DurationDays(tt.start, tt.end)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.start, tt.end)
	}
}

func TestDurationDaysMalformedDate(t *testing.T) {
	_, err := DurationDays("2024-06-01", "garbage")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestAddDays(t *testing.T) {
	date, err := AddDays("2024-06-01", 6)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-07", date)

	date, err = AddDays("2024-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", date)
}
