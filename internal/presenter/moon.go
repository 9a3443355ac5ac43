package presenter

// MoonPhaseUnknown is shown for phase names outside moonPhases.
const MoonPhaseUnknown = "🌙 확인중"

var moonPhases = map[string]string{
	"New Moon":        "🌑 신월",
	"Full Moon":       "🌕 보름달",
	"First Quarter":   "🌓 상현달",
	"Last Quarter":    "🌗 하현달",
	"Waxing Crescent": "🌒 초승달",
	"Waxing Gibbous":  "🌔 차오르는 달",
	"Waning Gibbous":  "🌖 기우는 달",
	"Waning Crescent": "🌘 그믐달",
}

// MoonLabel translates a provider moon phase name.
func MoonLabel(phase string) string {
	if label, ok := moonPhases[phase]; ok {
		return label
	}
	return MoonPhaseUnknown
}
