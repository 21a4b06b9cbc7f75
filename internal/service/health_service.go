package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/logger"
)

// Health status values.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// Dependency state values reported per service.
const (
	StateConnected    = "connected"
	StateDisconnected = "disconnected"
)

// ProbeFunc checks one external dependency. It must respect ctx.
type ProbeFunc func(ctx context.Context) error

// HealthStatus is the composite report over all dependency probes.
type HealthStatus struct {
	Status    string
	Services  map[string]string
	Errors    map[string]string
	Timestamp time.Time
}

// HealthService checks external dependency connectivity. Probes run in
// parallel, each bounded by its own timeout, so one slow dependency cannot
// delay the report past a single timeout window.
type HealthService interface {
	Check(ctx context.Context) HealthStatus
}

type healthService struct {
	probes       map[string]ProbeFunc
	probeTimeout time.Duration
}

// NewHealthService creates a health service over named dependency probes.
func NewHealthService(probes map[string]ProbeFunc, probeTimeout time.Duration) HealthService {
	return &healthService{
		probes:       probes,
		probeTimeout: probeTimeout,
	}
}

func (s *healthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Services:  make(map[string]string, len(s.probes)),
		Errors:    make(map[string]string),
		Timestamp: time.Now().UTC(),
	}

	type outcome struct {
		name string
		err  error
	}
	results := make([]outcome, 0, len(s.probes))
	g := new(errgroup.Group)
	resultCh := make(chan outcome, len(s.probes))

	for name, probe := range s.probes {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
			defer cancel()
			resultCh <- outcome{name: name, err: probe(probeCtx)}
			return nil
		})
	}
	g.Wait()
	close(resultCh)
	for r := range resultCh {
		results = append(results, r)
	}

	healthy := true
	for _, r := range results {
		if r.err == nil {
			status.Services[r.name] = StateConnected
			continue
		}
		healthy = false
		status.Services[r.name] = StateDisconnected
		if errors.Is(r.err, context.DeadlineExceeded) {
			status.Errors[r.name] = r.name + " connection timeout"
		} else {
			status.Errors[r.name] = r.err.Error()
		}
		logger.Warn("dependency probe failed", "module", "service", "action", "probe", "resource", r.name, "result", "failed", "error", r.err)
	}

	if healthy {
		status.Status = StatusHealthy
	} else {
		status.Status = StatusDegraded
	}
	return status
}
