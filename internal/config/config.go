package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when WEATHER_API_KEY is not set.
var ErrMissingAPIKey = errors.New("API 키가 설정되지 않았습니다. 환경 변수 WEATHER_API_KEY 또는 .env 파일을 확인하세요.")

type AppConfig struct {
	WeatherAPIKey string
	// WeatherAPIURL overrides the forecast endpoint (empty = provider default).
	WeatherAPIURL string

	// HTTPTimeout bounds outbound provider calls (0 = no client timeout).
	HTTPTimeout time.Duration

	// ProbeInterval enables the provider reachability probe when > 0.
	ProbeInterval time.Duration
	ProbeQuery    string

	Port string
}

// Load reads configuration from a .env file, if any, and the environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	if cfg.WeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	cfg.WeatherAPIURL = os.Getenv("WEATHER_API_URL")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := time.ParseDuration(getenvDefault("PROBE_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = interval
	cfg.ProbeQuery = getenvDefault("PROBE_QUERY", "Seoul")

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
