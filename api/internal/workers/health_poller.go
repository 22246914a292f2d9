package workers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/telemetry"
)

// Target pairs a remote endpoint with the element that displays its status.
type Target struct {
	Endpoint domain.Endpoint
	Element  *domain.Element
}

// HealthPoller classifies remote health routes as LIVE, ERROR or OFFLINE and
// writes the result into each target's element.
type HealthPoller struct {
	targets    []Target
	httpClient *http.Client
	hub        *telemetry.Hub
	logger     *slog.Logger
	timeout    time.Duration
	interval   time.Duration

	refresh singleflight.Group
	now     func() time.Time
}

// NewHealthPoller marks every target PENDING. A zero interval means each
// endpoint is checked once by Start and never again unless Refresh is called.
func NewHealthPoller(
	targets []Target,
	hub *telemetry.Hub,
	logger *slog.Logger,
	timeout time.Duration,
	interval time.Duration,
) *HealthPoller {
	for _, t := range targets {
		t.Element.SetText(string(domain.StatusPending))
		t.Element.SetColor(domain.StatusPending.Color())
	}

	return &HealthPoller{
		targets:  targets,
		hub:      hub,
		logger:   logger,
		timeout:  timeout,
		interval: interval,
		now:      time.Now,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Check issues one GET against url. Any 2xx is LIVE, any other status is
// ERROR, and a transport failure is OFFLINE. There is no retry.
func (p *HealthPoller) Check(ctx context.Context, url string) domain.EndpointStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		p.logger.Debug("Health check request invalid", slog.String("url", url), slog.Any("error", err))
		return domain.StatusOffline
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("Health check unreachable", slog.String("url", url), slog.Any("error", err))
		return domain.StatusOffline
	}
	// Drain so the keep-alive connection goes back to the pool.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return domain.StatusLive
	}
	return domain.StatusError
}

// CheckInto runs Check for t and reflects the outcome into its element.
// Changes are broadcast to the hub. A check cut short by ctx says nothing about
// the endpoint, so the element keeps its previous status.
func (p *HealthPoller) CheckInto(ctx context.Context, t Target) domain.EndpointStatus {
	status := p.Check(ctx, t.Endpoint.URL)

	previous := domain.EndpointStatus(t.Element.Text())
	if ctx.Err() != nil {
		p.logger.Debug("Health check abandoned",
			slog.String("endpoint", t.Endpoint.Name),
			slog.Any("error", ctx.Err()),
		)
		return previous
	}
	t.Element.SetText(string(status))
	t.Element.SetColor(status.Color())

	if previous != status {
		p.logger.Info("Endpoint status changed",
			slog.String("endpoint", t.Endpoint.Name),
			slog.String("from", string(previous)),
			slog.String("to", string(status)),
		)
		if p.hub != nil {
			p.hub.Broadcast(domain.StatusUpdate{
				Endpoint:  t.Endpoint.Name,
				Status:    status,
				Color:     status.Color(),
				CheckedAt: p.now().UTC(),
			})
		}
	}
	return status
}

// RunOnce checks every target concurrently; completion order is not defined.
func (p *HealthPoller) RunOnce(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range p.targets {
		g.Go(func() error {
			p.CheckInto(gctx, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Refresh re-checks every endpoint on demand. Concurrent callers share one run,
// which is detached from the caller's cancellation and bounded by the check
// timeout instead.
func (p *HealthPoller) Refresh(ctx context.Context) error {
	_, err, _ := p.refresh.Do("refresh", func() (any, error) {
		rctx := context.WithoutCancel(ctx)
		if p.timeout > 0 {
			// Leave room for the client timeout to classify a slow endpoint first.
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(rctx, p.timeout+time.Second)
			defer cancel()
		}
		return nil, p.RunOnce(rctx)
	})
	return err
}

// Start checks every endpoint once. With a positive interval each endpoint
// then gets its own ticker loop until ctx is cancelled. Start blocks until all
// loops have stopped.
func (p *HealthPoller) Start(ctx context.Context) {
	p.logger.Info("Health poller started",
		slog.Int("endpoints", len(p.targets)),
		slog.Duration("interval", p.interval),
	)

	if err := p.RunOnce(ctx); err != nil {
		return
	}
	if p.interval <= 0 {
		return
	}

	var wg sync.WaitGroup
	for _, t := range p.targets {
		wg.Add(1)
		go func(t Target) {
			defer wg.Done()
			p.poll(ctx, t)
		}(t)
	}
	wg.Wait()
	p.logger.Info("Health poller stopped")
}

func (p *HealthPoller) poll(ctx context.Context, t Target) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.CheckInto(ctx, t)
		}
	}
}

// Snapshot returns the current status of every endpoint, keyed by name.
func (p *HealthPoller) Snapshot() map[string]domain.StatusUpdate {
	out := make(map[string]domain.StatusUpdate, len(p.targets))
	for _, t := range p.targets {
		status := domain.EndpointStatus(t.Element.Text())
		out[t.Endpoint.Name] = domain.StatusUpdate{
			Endpoint: t.Endpoint.Name,
			Status:   status,
			Color:    t.Element.Color(),
		}
	}
	return out
}

// Endpoints lists the polled endpoints in configuration order.
func (p *HealthPoller) Endpoints() []domain.Endpoint {
	out := make([]domain.Endpoint, 0, len(p.targets))
	for _, t := range p.targets {
		out = append(out, t.Endpoint)
	}
	return out
}

// BindTargets resolves each endpoint's status element in doc.
func BindTargets(endpoints []domain.Endpoint, doc *domain.Document) ([]Target, error) {
	targets := make([]Target, 0, len(endpoints))
	for _, ep := range endpoints {
		el, err := doc.Lookup(ep.ElementID)
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", ep.Name, err)
		}
		targets = append(targets, Target{Endpoint: ep, Element: el})
	}
	return targets, nil
}
