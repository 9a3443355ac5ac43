package providers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// BreakerFetcher guards a fetcher with its own circuit breaker. It is meant
// for background callers such as the health probe; page renders use the
// unwrapped fetcher so that each one reaches the provider.
type BreakerFetcher struct {
	next    weather.Fetcher
	circuit *gobreaker.CircuitBreaker
}

// NewBreakerFetcher wraps next with a breaker named after it.
func NewBreakerFetcher(next weather.Fetcher) *BreakerFetcher {
	name := next.Name() + "-breaker"
	return &BreakerFetcher{
		next: next,
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("INFO: circuit breaker %s: %s -> %s", name, from, to)
			},
		}),
	}
}

func (b *BreakerFetcher) Name() string {
	return b.next.Name()
}

// fetchOutcome carries a fetch result through the breaker. Client-side
// rejections ride here with a nil breaker error so they do not trip it.
type fetchOutcome struct {
	snap weather.Snapshot
	err  error
}

// Fetch calls the wrapped fetcher unless the breaker is open. Transport,
// schema and 5xx errors count as failures; 4xx responses do not.
func (b *BreakerFetcher) Fetch(ctx context.Context, query string) (weather.Snapshot, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		snap, err := b.next.Fetch(ctx, query)
		if err != nil && !isClientRejection(err) {
			return nil, err
		}
		return fetchOutcome{snap: snap, err: err}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return weather.Snapshot{}, fmt.Errorf("%w: %v", weather.ErrCircuitOpen, err)
		}
		return weather.Snapshot{}, err
	}

	out, ok := result.(fetchOutcome)
	if !ok {
		return weather.Snapshot{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return out.snap, out.err
}

func isClientRejection(err error) bool {
	var se *weather.StatusError
	return errors.As(err, &se) && se.StatusCode < 500
}
