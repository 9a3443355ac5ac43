package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("가벼운 비", "비", "눈"))
	assert.True(t, HasAny("눈 날림", "비", "눈"))
	assert.False(t, HasAny("맑음", "비", "눈"))
	assert.False(t, HasAny("맑음"))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "25.0", FormatDecimal(25))
	assert.Equal(t, "0.3", FormatDecimal(0.3))
	assert.Equal(t, "-4.99", FormatDecimal(-4.99))
	assert.Equal(t, "127.0", FormatDecimal(127))
}
