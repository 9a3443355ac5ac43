package weather

import (
	"context"
)

// Fetcher abstracts the weather data source. Query is passed to the provider
// verbatim: a city name or a "lat,lon" pair.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, query string) (Snapshot, error)
}
