package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Status is the outcome of the most recent probe.
type Status struct {
	CheckedAt time.Time `json:"checkedAt"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// Probe periodically checks that the weather provider answers. Results only
// feed the health endpoint; rendered pages always fetch for themselves.
type Probe struct {
	scheduler *gocron.Scheduler
	fetcher   weather.Fetcher
	query     string
	interval  time.Duration

	mu      sync.RWMutex
	last    Status
	checked bool
}

// New creates a new Probe. A non-positive interval disables scheduling.
func New(fetcher weather.Fetcher, query string, interval time.Duration) *Probe {
	return &Probe{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		query:     query,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (p *Probe) Start() error {
	if p.interval <= 0 {
		log.Println("INFO: scheduler: provider probe disabled")
		return nil
	}

	_, err := p.scheduler.Every(p.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		p.Run(ctx)
	})
	if err != nil {
		return err
	}

	p.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (p *Probe) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// Run performs a single probe and records its outcome.
func (p *Probe) Run(ctx context.Context) Status {
	st := Status{CheckedAt: time.Now().UTC(), OK: true}
	if _, err := p.fetcher.Fetch(ctx, p.query); err != nil {
		st.OK = false
		st.Error = err.Error()
		log.Printf("ERROR: scheduler: probe of %s for %q failed: %v", p.fetcher.Name(), p.query, err)
	}

	p.mu.Lock()
	p.last = st
	p.checked = true
	p.mu.Unlock()
	return st
}

// Last returns the latest probe outcome; false means no probe has run.
func (p *Probe) Last() (Status, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last, p.checked
}
