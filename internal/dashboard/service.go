// Package dashboard performs one page render: resolve the location, fetch the
// forecast once and map it for display.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/i474232898/weather-dashboard/internal/location"
	"github.com/i474232898/weather-dashboard/internal/presenter"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	msgUnresolved = "지역을 선택하거나 GPS 권한을 허용해 주세요."
	msgRejected   = "날씨 데이터를 불러오는데 실패했습니다. 입력하신 도시 이름을 확인해주세요."
	msgFailure    = "오류가 발생했습니다: %v"
)

// Page is the result of a render. Weather is nil unless the fetch succeeded.
type Page struct {
	Options   []string            `json:"options"`
	Selection location.Selection  `json:"selection"`
	Location  location.Resolution `json:"location"`

	// Status and Message describe the outcome of the fetch, or the reason
	// none was made.
	Status  location.StatusKind `json:"status,omitempty"`
	Message string              `json:"message,omitempty"`

	Weather *presenter.View `json:"weather,omitempty"`
}

// Service renders pages against a single weather source. It keeps no state
// between renders.
type Service struct {
	fetcher weather.Fetcher
}

// NewService creates a new Service.
func NewService(fetcher weather.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Render runs one render for sel. An error is returned only for a selection
// that names no dropdown option; every other failure is reported on the page.
func (s *Service) Render(ctx context.Context, sel location.Selection) (Page, error) {
	res, err := location.Resolve(sel)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Options:   location.Options(),
		Selection: sel,
		Location:  res,
	}

	if !res.Resolved {
		page.Status = location.StatusInfo
		page.Message = msgUnresolved
		return page, nil
	}

	snap, err := s.fetcher.Fetch(ctx, res.Query)
	if err != nil {
		page.Status = location.StatusError
		page.Message = failureMessage(err)
		log.Printf("ERROR: render for %q via %s failed: %v", res.Query, s.fetcher.Name(), err)
		return page, nil
	}

	view := presenter.Build(snap)
	page.Weather = &view
	return page, nil
}

// failureMessage turns a fetch error into the text shown to the user. A
// rejected request hides its cause; anything else shows the error text.
func failureMessage(err error) string {
	if errors.Is(err, weather.ErrProviderRejected) {
		return msgRejected
	}
	return fmt.Sprintf(msgFailure, err)
}
