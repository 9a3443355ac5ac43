package weather

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorUnwrapsToProviderRejected(t *testing.T) {
	err := fmt.Errorf("weatherapi: %w", &StatusError{StatusCode: 400})

	assert.True(t, errors.Is(err, ErrProviderRejected))
	assert.False(t, errors.Is(err, ErrSchema))

	var se *StatusError
	if assert.True(t, errors.As(err, &se)) {
		assert.Equal(t, 400, se.StatusCode)
	}
}

func TestMissingFieldErrorNamesPath(t *testing.T) {
	err := &MissingFieldError{Path: "forecast.forecastday[0].astro.moon_phase"}

	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "forecast.forecastday[0].astro.moon_phase")
}
