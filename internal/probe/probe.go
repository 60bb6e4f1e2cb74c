// Package probe periodically verifies that the onOffice credentials are
// accepted, so readiness reflects whether listings can actually be read.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/estatebot/internal/metrics"
	"github.com/donaldgifford/estatebot/internal/onoffice"
)

// ErrNotProbed is returned by Ping before the first probe has completed.
var ErrNotProbed = errors.New("onOffice probe has not run yet")

// Caller is the part of the listings client the probe needs.
type Caller interface {
	Call(ctx context.Context, action, resourceType string, params onoffice.QuerySpec) (onoffice.Response, error)
}

// Probe issues a minimal signed read on a schedule and remembers the outcome.
type Probe struct {
	client  Caller
	timeout time.Duration
	log     *slog.Logger
	cron    *cron.Cron

	mu      sync.RWMutex
	lastErr error
	lastRun time.Time
}

// New creates a Probe that runs every interval once started.
func New(client Caller, interval, timeout time.Duration, log *slog.Logger) (*Probe, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("probe interval must be at least 1s (got %s)", interval)
	}

	p := &Probe{
		client:  client,
		timeout: timeout,
		log:     log,
		cron:    cron.New(),
		lastErr: ErrNotProbed,
	}

	if _, err := p.cron.AddFunc("@every "+interval.String(), p.runScheduled); err != nil {
		return nil, fmt.Errorf("scheduling probe: %w", err)
	}
	return p, nil
}

// Start runs one probe immediately and then begins the schedule.
func (p *Probe) Start(ctx context.Context) {
	p.log.Info("onoffice probe started")
	p.Run(ctx)
	p.cron.Start()
}

// Stop stops the schedule, waiting for a running probe to finish.
func (p *Probe) Stop() context.Context {
	p.log.Info("onoffice probe stopping")
	return p.cron.Stop()
}

func (p *Probe) runScheduled() {
	p.Run(context.Background())
}

// Run performs one probe and records its outcome.
func (p *Probe) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := onoffice.SearchQuery(nil, onoffice.WithLimit(1))
	resp, err := p.client.Call(ctx, onoffice.ActionRead, onoffice.ResourceTypeEstate, params)
	if err == nil {
		if code := resp.StatusCode(); code != 0 && code != 200 {
			err = fmt.Errorf("onOffice API status %d", code)
		}
	}

	p.mu.Lock()
	p.lastErr = err
	p.lastRun = time.Now()
	p.mu.Unlock()

	if err != nil {
		metrics.OnOfficeProbeUp.Set(0)
		p.log.Warn("onoffice probe failed", "error", err)
		return
	}
	metrics.OnOfficeProbeUp.Set(1)
	p.log.Debug("onoffice probe ok")
}

// Ping returns the error of the last probe, or nil if it succeeded.
func (p *Probe) Ping(_ context.Context) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// LastRun returns when the last probe finished.
func (p *Probe) LastRun() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastRun
}
