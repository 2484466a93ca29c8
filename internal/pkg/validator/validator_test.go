package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		clock   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"09:60", 0, false},
		{"garbage", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		minutes, ok := ClockMinutes(tt.clock)
		assert.Equal(t, tt.ok, ok, "clock %q", tt.clock)
		if tt.ok {
			assert.Equal(t, tt.minutes, minutes, "clock %q", tt.clock)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2026-06-15")
	assert.True(t, ok)
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-06-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("+919876543210"))
	assert.True(t, IsValidPhoneNumber("98765 43210"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("98765abcde"))
	assert.False(t, IsValidPhoneNumber("12345678901234"))
}

func TestValidationErrorsError(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "mobile", Message: "is required"},
		{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"},
	}

	assert.Equal(t, "mobile: is required; date: must be a valid date (YYYY-MM-DD)", errs.Error())
	assert.Equal(t, map[string]string{
		"mobile": "is required",
		"date":   "must be a valid date (YYYY-MM-DD)",
	}, errs.ToMap())
}
