package weather

// Snapshot is the subset of a provider forecast response the dashboard renders.
// It lives for a single render and is never stored.
type Snapshot struct {
	LocationName string  `json:"locationName"`
	LocalTime    string  `json:"localTime"` // as sent by the provider
	Temperature  float64 `json:"temperatureC"`
	Condition    string  `json:"condition"`
	WindKph      float64 `json:"windKph"`
	PrecipMM     float64 `json:"precipMm"`
	Humidity     float64 `json:"humidityPercent"`
	FeelsLike    float64 `json:"feelsLikeC"`
	MoonPhase    string  `json:"moonPhase"`
}
