package presenter

const rainGearSuffix = " (🌂 우산이나 장화 필수!)"

// Outfit recommends clothing for a temperature in °C. Each tier includes its
// lower bound. Any precipitation adds rain gear.
func Outfit(tempC, precipMM float64) string {
	var outfit string
	switch {
	case tempC >= 25:
		outfit = "👕 시원한 반팔과 반바지"
	case tempC >= 15:
		outfit = "🧥 가벼운 가디건이나 셔츠"
	case tempC >= 5:
		outfit = "🧥 코트나 두꺼운 외투"
	default:
		outfit = "🧣 패딩과 방한용품 필수"
	}

	if precipMM > 0 {
		outfit += rainGearSuffix
	}
	return outfit
}
