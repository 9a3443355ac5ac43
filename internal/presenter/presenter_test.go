package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	summer = "👕 시원한 반팔과 반바지"
	light  = "🧥 가벼운 가디건이나 셔츠"
	coat   = "🧥 코트나 두꺼운 외투"
	winter = "🧣 패딩과 방한용품 필수"
)

func TestOutfitBoundaries(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{30, summer},
		{25.0, summer},
		{24.99, light},
		{15.0, light},
		{14.99, coat},
		{5.0, coat},
		{4.99, winter},
		{-10, winter},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outfit(tt.temp, 0), "temp=%v", tt.temp)
	}
}

func TestOutfitRainGear(t *testing.T) {
	for _, temp := range []float64{25, 24.99, 5, 4.99} {
		assert.Equal(t, Outfit(temp, 0)+" (🌂 우산이나 장화 필수!)", Outfit(temp, 0.1), "temp=%v", temp)
		assert.NotContains(t, Outfit(temp, 0), "🌂")
	}
}

func TestMoonLabel(t *testing.T) {
	assert.Equal(t, "🌕 보름달", MoonLabel("Full Moon"))
	assert.Equal(t, "🌑 신월", MoonLabel("New Moon"))
	assert.Equal(t, "🌘 그믐달", MoonLabel("Waning Crescent"))
	assert.Equal(t, "🌙 확인중", MoonLabel("Blood Moon"))
	assert.Equal(t, "🌙 확인중", MoonLabel("full moon"))
	assert.Equal(t, "🌙 확인중", MoonLabel(""))
}

func TestPrecipitationIcon(t *testing.T) {
	assert.Equal(t, "🌧️", PrecipitationIcon("가벼운 비"))
	assert.Equal(t, "⛄", PrecipitationIcon("눈"))
	assert.Equal(t, "🌧️", PrecipitationIcon("비 또는 눈"))
	assert.Equal(t, "💧", PrecipitationIcon("맑음"))
}

func TestBuild(t *testing.T) {
	v := Build(weather.Snapshot{
		LocationName: "Seoul",
		LocalTime:    "2026-10-16 18:30",
		Temperature:  17.2,
		Condition:    "약간의 비",
		WindKph:      11.5,
		PrecipMM:     0.3,
		Humidity:     81,
		FeelsLike:    16,
		MoonPhase:    "Waxing Crescent",
	})

	assert.Equal(t, MainCard{LocationName: "Seoul", Temperature: "🌡️ 17.2°C", Condition: "약간의 비"}, v.Main)
	assert.Equal(t, Block{Icon: "🌧️", Label: "강수량", Value: "0.3 mm"}, v.Precipitation)
	assert.Equal(t, Block{Icon: "💨", Label: "바람 세기", Value: "11.5 km/h"}, v.Wind)
	assert.Equal(t, light+" (🌂 우산이나 장화 필수!)", v.Outfit)
	assert.Equal(t, "81%", v.Humidity.Value)
	assert.Equal(t, "16.0°C", v.FeelsLike.Value)
	assert.Equal(t, "🌒 초승달", v.Moon.Value)
	assert.Equal(t, "최종 업데이트: 2026-10-16 18:30", v.Footer)
}

func TestMetricsOrder(t *testing.T) {
	v := Build(weather.Snapshot{Humidity: 55, FeelsLike: 3, MoonPhase: "Blood Moon"})

	m := v.Metrics()
	assert.Len(t, m, 3)
	assert.Equal(t, "습도", m[0].Label)
	assert.Equal(t, "체감", m[1].Label)
	assert.Equal(t, Block{Icon: "🌙", Label: "오늘 밤 달", Value: "🌙 확인중"}, m[2])
}
