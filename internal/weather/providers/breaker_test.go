package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type scriptedFetcher struct {
	calls int
	err   error
}

func (f *scriptedFetcher) Name() string { return "scripted" }

func (f *scriptedFetcher) Fetch(_ context.Context, _ string) (weather.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return weather.Snapshot{}, f.err
	}
	return weather.Snapshot{LocationName: "Seoul"}, nil
}

func TestBreakerFetcherIgnoresClientErrors(t *testing.T) {
	f := &scriptedFetcher{err: fmt.Errorf("weatherapi: %w", &weather.StatusError{StatusCode: 400})}
	b := NewBreakerFetcher(f)

	for i := 0; i < 10; i++ {
		_, err := b.Fetch(context.Background(), "Atlantis")
		require.True(t, errors.Is(err, weather.ErrProviderRejected))
	}
	assert.Equal(t, 10, f.calls)
	assert.Equal(t, "scripted", b.Name())
}

func TestBreakerFetcherOpensOnServerErrors(t *testing.T) {
	f := &scriptedFetcher{err: fmt.Errorf("weatherapi: %w", &weather.StatusError{StatusCode: 502})}
	b := NewBreakerFetcher(f)

	// The default policy trips after more than five consecutive failures.
	for i := 0; i < 6; i++ {
		_, err := b.Fetch(context.Background(), "Seoul")
		require.True(t, errors.Is(err, weather.ErrProviderRejected))
	}

	_, err := b.Fetch(context.Background(), "Seoul")
	assert.True(t, errors.Is(err, weather.ErrCircuitOpen))
	assert.Equal(t, 6, f.calls)
}

func TestBreakerFetcherDoesNotAffectWrappedFetcher(t *testing.T) {
	f := &scriptedFetcher{err: errors.New("dial tcp: connection refused")}
	b := NewBreakerFetcher(f)

	for i := 0; i < 7; i++ {
		_, _ = b.Fetch(context.Background(), "Seoul")
	}
	_, err := b.Fetch(context.Background(), "Seoul")
	require.True(t, errors.Is(err, weather.ErrCircuitOpen))

	f.err = nil
	snap, err := f.Fetch(context.Background(), "Seoul")
	require.NoError(t, err)
	assert.Equal(t, "Seoul", snap.LocationName)
}

func TestBreakerFetcherPassesSuccess(t *testing.T) {
	b := NewBreakerFetcher(&scriptedFetcher{})

	snap, err := b.Fetch(context.Background(), "Seoul")
	require.NoError(t, err)
	assert.Equal(t, "Seoul", snap.LocationName)
}
