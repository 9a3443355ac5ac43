package providers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// doRequest executes exactly one request. There is no retry and no state kept
// between calls: a failed attempt is reported to the caller as is. Non-200
// responses are returned as *weather.StatusError.
func doRequest(ctx context.Context, client *http.Client, provider string, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndLog(resp, provider)
		return nil, &weather.StatusError{StatusCode: resp.StatusCode}
	}
	return resp, nil
}

// drainAndLog closes a rejected response. The body goes to the log only;
// users see a generic message.
func drainAndLog(resp *http.Response, provider string) {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	log.Printf("ERROR: provider %s returned status %d: %s", provider, resp.StatusCode, body)
}
