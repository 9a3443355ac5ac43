// Package location turns a dashboard selection into the query string sent to
// the weather provider.
package location

import (
	"fmt"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// Mode is the kind of location a dropdown option stands for.
type Mode string

const (
	ModeGPS    Mode = "gps"
	ModePreset Mode = "preset"
	ModeCustom Mode = "custom"
)

const (
	// OptionGPS is the dropdown entry for the device location.
	OptionGPS = "📍 내 위치 (GPS)"
	// OptionCustom is the dropdown entry enabling free-text input.
	OptionCustom = "직접 입력"

	// DefaultCustomCity is used when the free-text field is left empty.
	DefaultCustomCity = "London"
)

// presets maps display names to the English names the provider expects.
// Read-only after init.
var presets = map[string]string{
	"서울": "Seoul",
	"부산": "Busan",
	"제주": "Jeju",
	"인천": "Incheon",
	"대구": "Daegu",
	"대전": "Daejeon",
	"광주": "Gwangju",
}

var presetOrder = []string{"서울", "부산", "제주", "인천", "대구", "대전", "광주"}

// Options returns the dropdown entries in display order.
func Options() []string {
	opts := make([]string, 0, len(presetOrder)+2)
	opts = append(opts, OptionGPS)
	opts = append(opts, presetOrder...)
	return append(opts, OptionCustom)
}

// PresetNames returns the preset display names in display order.
func PresetNames() []string {
	return append([]string(nil), presetOrder...)
}

// Preset returns the provider name for a preset display name.
func Preset(display string) (string, bool) {
	name, ok := presets[display]
	return name, ok
}

// ModeOf reports which mode an option selects. Unknown options report false.
func ModeOf(option string) (Mode, bool) {
	switch option {
	case OptionGPS:
		return ModeGPS, true
	case OptionCustom:
		return ModeCustom, true
	}
	if _, ok := presets[option]; ok {
		return ModePreset, true
	}
	return "", false
}

// Coordinates is a device position reported by the browser.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Query formats the pair at full precision, e.g. "37.5,127.0".
func (c Coordinates) Query() string {
	return common.FormatDecimal(c.Latitude) + "," + common.FormatDecimal(c.Longitude)
}

// Display formats the pair for the confirmation banner.
func (c Coordinates) Display() string {
	return fmt.Sprintf("%.2f, %.2f", c.Latitude, c.Longitude)
}
