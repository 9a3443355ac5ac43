package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultWeatherAPIURL is the WeatherAPI.com forecast endpoint.
const DefaultWeatherAPIURL = "http://api.weatherapi.com/v1/forecast.json"

// WeatherAPIProvider implements the weather.Fetcher interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherAPIProvider builds a provider. An empty baseURL selects DefaultWeatherAPIURL.
func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// Fetch requests a one-day Korean-language forecast for query and extracts the
// fields the dashboard shows.
func (p *WeatherAPIProvider) Fetch(ctx context.Context, query string) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// "q" accepts a city name or "lat,lon".
	values.Set("q", query)
	values.Set("days", "1")
	values.Set("lang", "ko")

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return weather.Snapshot{}, err
	}

	resp, err := doRequest(ctx, p.client, p.name, req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: %w", err)
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: decode response: %w", err)
	}

	snap, err := payload.snapshot()
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: %w", err)
	}
	return snap, nil
}

// forecastPayload mirrors the forecast.json fields in use. Pointers tell an
// absent field apart from a zero value.
type forecastPayload struct {
	Location *struct {
		Name      *string `json:"name"`
		Localtime *string `json:"localtime"`
	} `json:"location"`
	Current *struct {
		TempC     *float64 `json:"temp_c"`
		Condition *struct {
			Text *string `json:"text"`
		} `json:"condition"`
		WindKph    *float64 `json:"wind_kph"`
		PrecipMm   *float64 `json:"precip_mm"`
		Humidity   *float64 `json:"humidity"`
		FeelslikeC *float64 `json:"feelslike_c"`
	} `json:"current"`
	Forecast *struct {
		Forecastday []struct {
			Day   *struct{} `json:"day"`
			Astro *struct {
				MoonPhase *string `json:"moon_phase"`
			} `json:"astro"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (p forecastPayload) snapshot() (weather.Snapshot, error) {
	missing := func(path string) (weather.Snapshot, error) {
		return weather.Snapshot{}, &weather.MissingFieldError{Path: path}
	}

	switch {
	case p.Location == nil:
		return missing("location")
	case p.Location.Name == nil:
		return missing("location.name")
	case p.Location.Localtime == nil:
		return missing("location.localtime")
	case p.Current == nil:
		return missing("current")
	case p.Current.TempC == nil:
		return missing("current.temp_c")
	case p.Current.Condition == nil || p.Current.Condition.Text == nil:
		return missing("current.condition.text")
	case p.Current.WindKph == nil:
		return missing("current.wind_kph")
	case p.Current.PrecipMm == nil:
		return missing("current.precip_mm")
	case p.Current.Humidity == nil:
		return missing("current.humidity")
	case p.Current.FeelslikeC == nil:
		return missing("current.feelslike_c")
	case p.Forecast == nil || len(p.Forecast.Forecastday) == 0:
		return missing("forecast.forecastday[0]")
	case p.Forecast.Forecastday[0].Day == nil:
		return missing("forecast.forecastday[0].day")
	case p.Forecast.Forecastday[0].Astro == nil || p.Forecast.Forecastday[0].Astro.MoonPhase == nil:
		return missing("forecast.forecastday[0].astro.moon_phase")
	}

	return weather.Snapshot{
		LocationName: *p.Location.Name,
		LocalTime:    *p.Location.Localtime,
		Temperature:  *p.Current.TempC,
		Condition:    *p.Current.Condition.Text,
		WindKph:      *p.Current.WindKph,
		PrecipMM:     *p.Current.PrecipMm,
		Humidity:     *p.Current.Humidity,
		FeelsLike:    *p.Current.FeelslikeC,
		MoonPhase:    *p.Forecast.Forecastday[0].Astro.MoonPhase,
	}, nil
}
