package location

import (
	"fmt"
)

// StatusKind classifies the banner shown with a resolution.
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusSuccess StatusKind = "success"
	StatusInfo    StatusKind = "info"
	StatusError   StatusKind = "error"
)

const (
	msgGPSConfirmed = "✅ GPS 위치 확인: %s"
	msgGPSPending   = "GPS 권한을 허용하거나 위치 정보를 가져오는 중입니다..."
)

// Selection is everything the user controls on the page. Coords is nil until
// the browser reports a position.
type Selection struct {
	Option     string       `json:"option"`
	CustomCity string       `json:"customCity,omitempty"`
	Coords     *Coordinates `json:"coords,omitempty"`
}

// Resolution is the outcome of Resolve. Query is only meaningful when Resolved.
type Resolution struct {
	Mode     Mode       `json:"mode"`
	Query    string     `json:"query,omitempty"`
	Resolved bool       `json:"resolved"`
	Status   StatusKind `json:"status,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// Resolve maps a selection to a provider query. It performs no I/O and no
// validation of city names: a bad name is reported by the provider.
func Resolve(sel Selection) (Resolution, error) {
	mode, ok := ModeOf(sel.Option)
	if !ok {
		return Resolution{}, fmt.Errorf("unknown location option %q", sel.Option)
	}

	switch mode {
	case ModeGPS:
		if sel.Coords == nil {
			return Resolution{
				Mode:    mode,
				Status:  StatusInfo,
				Message: msgGPSPending,
			}, nil
		}
		return Resolution{
			Mode:     mode,
			Query:    sel.Coords.Query(),
			Resolved: true,
			Status:   StatusSuccess,
			Message:  fmt.Sprintf(msgGPSConfirmed, sel.Coords.Display()),
		}, nil

	case ModeCustom:
		q := sel.CustomCity
		if q == "" {
			q = DefaultCustomCity
		}
		return Resolution{Mode: mode, Query: q, Resolved: true}, nil

	default:
		name, _ := Preset(sel.Option)
		return Resolution{Mode: mode, Query: name, Resolved: true}, nil
	}
}
