package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestValidTimeOfDay(t *testing.T) {
	assert.True(t, ValidTimeOfDay("09:30"))
	assert.True(t, ValidTimeOfDay("23:59"))
	assert.False(t, ValidTimeOfDay("24:00"))
	assert.False(t, ValidTimeOfDay("9am"))
	assert.False(t, ValidTimeOfDay(""))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "RM 150.00", FormatAmount("RM", 150))
	assert.Equal(t, "RM 99.90", FormatAmount("RM", 99.9))
	assert.Equal(t, "RM 0.00", FormatAmount("RM", 0))
}
