package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@clinic.co.uk",
		"  padded@example.com  ",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), "expected valid: %q", e)
	}

	invalid := []string{
		"",
		"no-at-sign.com",
		"two@@example.com",
		"no-domain@",
		"spaces in@example.com",
		"no-tld@example",
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "expected invalid: %q", e)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"5551234567",
		"+15551234567",
		"(555) 123-4567",
		"555.123.4567",
		"+44 20 7946 0958",
	}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), "expected valid: %q", p)
	}

	invalid := []string{
		"",
		"555123",
		"555-1234",
		"phone number",
		"555123456x",
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), "expected invalid: %q", p)
	}
}

func TestValidTime(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, ValidTime(v), "expected valid: %q", v)
	}

	invalid := []string{"", "24:00", "12:60", "1230", "9:3", "12:00 PM"}
	for _, v := range invalid {
		assert.False(t, ValidTime(v), "expected invalid: %q", v)
	}
}

func TestParseFutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	parsed, err := ParseFutureDate(tomorrow)
	require.NoError(t, err)
	assert.Equal(t, tomorrow, parsed.Format("2006-01-02"))

	// Today at midnight is not in the past.
	_, err = ParseFutureDate(time.Now().UTC().Format("2006-01-02"))
	assert.NoError(t, err)

	_, err = ParseFutureDate(time.Now().AddDate(0, 0, -1).Format("2006-01-02"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past")

	_, err = ParseFutureDate("06/15/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******4567", MaskPhone("5551234567"))
	assert.Equal(t, "*******4567", MaskPhone("15551234567"))
	assert.Equal(t, "****", MaskPhone("123"))
}
