package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

// Status is the latest health snapshot.
type Status struct {
	Healthy      bool            `json:"healthy"`
	Dependencies map[string]bool `json:"dependencies"`
	CheckedAt    time.Time       `json:"checked_at"`
}

// Monitor runs the registered checks periodically and keeps the latest
// result in memory, so health requests never hit the dependencies.
type Monitor struct {
	checks map[string]Check
	logger *zap.Logger

	mu      sync.RWMutex
	current Status
}

func NewMonitor(checks map[string]Check, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{checks: checks, logger: logger.Named("health")}
}

// Status returns the latest snapshot.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start checks once right away, then every interval until ctx is done.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	m.CheckNow(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CheckNow(ctx)
			}
		}
	}()
}

// CheckNow runs every check and stores the result.
func (m *Monitor) CheckNow(ctx context.Context) Status {
	names := make([]string, 0, len(m.checks))
	for name := range m.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	st := Status{Healthy: true, Dependencies: make(map[string]bool, len(names))}
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := m.checks[name](cctx)
		cancel()
		ok := err == nil
		if !ok {
			m.logger.Warn("dependency unhealthy", zap.String("dependency", name), zap.Error(err))
			st.Healthy = false
		}
		st.Dependencies[name] = ok
	}
	st.CheckedAt = time.Now().UTC()

	m.mu.Lock()
	m.current = st
	m.mu.Unlock()
	return st
}
