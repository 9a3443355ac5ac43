// Package presenter maps a weather snapshot to the labelled blocks of the
// dashboard page.
package presenter

import (
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Block is one labelled value on the page.
type Block struct {
	Icon  string `json:"icon,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// MainCard is the headline panel.
type MainCard struct {
	LocationName string `json:"locationName"`
	Temperature  string `json:"temperature"`
	Condition    string `json:"condition"`
}

// View is everything rendered for a successful fetch.
type View struct {
	Main          MainCard `json:"main"`
	Precipitation Block    `json:"precipitation"`
	Wind          Block    `json:"wind"`
	OutfitTitle   string   `json:"outfitTitle"`
	Outfit        string   `json:"outfit"`
	Humidity      Block    `json:"humidity"`
	FeelsLike     Block    `json:"feelsLike"`
	Moon          Block    `json:"moon"`
	Footer        string   `json:"footer"`
}

// Build maps a snapshot to a View. It is a pure function of its input.
//
// Snapshot numbers are float64, so an integral temperature sent as 25 and one
// sent as 25.0 cannot be told apart; FormatDecimal prints both as "25.0".
// Humidity is integral in the payload and prints without a fraction.
func Build(s weather.Snapshot) View {
	return View{
		Main: MainCard{
			LocationName: s.LocationName,
			Temperature:  "🌡️ " + common.FormatDecimal(s.Temperature) + "°C",
			Condition:    s.Condition,
		},
		Precipitation: Block{
			Icon:  PrecipitationIcon(s.Condition),
			Label: "강수량",
			Value: common.FormatDecimal(s.PrecipMM) + " mm",
		},
		Wind: Block{
			Icon:  "💨",
			Label: "바람 세기",
			Value: common.FormatDecimal(s.WindKph) + " km/h",
		},
		OutfitTitle: "👔 추천 옷차림",
		Outfit:      Outfit(s.Temperature, s.PrecipMM),
		Humidity: Block{
			Icon:  "💦",
			Label: "습도",
			Value: strconv.FormatFloat(s.Humidity, 'f', -1, 64) + "%",
		},
		FeelsLike: Block{
			Icon:  "🤒",
			Label: "체감",
			Value: common.FormatDecimal(s.FeelsLike) + "°C",
		},
		Moon: Block{
			Icon:  "🌙",
			Label: "오늘 밤 달",
			Value: MoonLabel(s.MoonPhase),
		},
		Footer: "최종 업데이트: " + s.LocalTime,
	}
}

// PrecipitationIcon picks an icon from the localized condition text. Rain
// wins over snow when both appear.
func PrecipitationIcon(condition string) string {
	switch {
	case common.HasAny(condition, "비"):
		return "🌧️"
	case common.HasAny(condition, "눈"):
		return "⛄"
	default:
		return "💧"
	}
}

// Metrics returns the secondary metric row in display order.
func (v View) Metrics() []Block {
	return []Block{v.Humidity, v.FeelsLike, v.Moon}
}
