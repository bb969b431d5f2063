package usecase

import (
	"log/slog"
	"sync"
	"time"

	"roomhub/internal/pkg/clock"
	"roomhub/internal/pkg/config"
	"roomhub/internal/pkg/errs"
)

// VisitStats is the only durable part of presence tracking.
type VisitStats struct {
	TotalVisits int `json:"total_visits"`
}

type PresenceUseCase interface {
	Ping(sessionID string) (online int, total int, err error)
	Disconnect(sessionID string)
}

// PresenceTracker approximates "online" as the number of sessions seen
// within the timeout window. The session map lives only in this process;
// false positives for up to one window after a client vanishes are
// accepted. Eviction is lazy, done on each ping.
type PresenceTracker struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	stats    VisitStore
	clock    clock.Clock
	timeout  time.Duration
}

func NewPresenceTracker(stats VisitStore, clk clock.Clock, cfg config.Config) *PresenceTracker {
	timeout := cfg.Data.PresenceTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PresenceTracker{
		sessions: make(map[string]time.Time),
		stats:    stats,
		clock:    clk,
		timeout:  timeout,
	}
}

// Ping marks the session as seen now, counting it toward the durable
// visit total only on its first appearance, then sweeps expired sessions.
func (t *PresenceTracker) Ping(sessionID string) (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	_, known := t.sessions[sessionID]

	var total int
	var err error
	if known {
		err = t.stats.View(func(s *VisitStats) error {
			total = s.TotalVisits
			return nil
		})
	} else {
		err = t.stats.Update(func(s *VisitStats) error {
			s.TotalVisits++
			total = s.TotalVisits
			return nil
		})
	}
	if err != nil {
		return 0, 0, errs.Mark(err, ErrStoreFailed)
	}

	t.sessions[sessionID] = now
	for sid, lastSeen := range t.sessions {
		if now.Sub(lastSeen) > t.timeout {
			delete(t.sessions, sid)
		}
	}

	return len(t.sessions), total, nil
}

// Disconnect drops the session immediately instead of waiting for the
// timeout sweep.
func (t *PresenceTracker) Disconnect(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, sessionID)
}

// Start and Stop tie the tracker to the process lifetime. The online set
// is ephemeral on purpose; only the visit total survives a restart.
func (t *PresenceTracker) Start() {
	slog.Info("presence tracker started", "timeout", t.timeout)
}

func (t *PresenceTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	slog.Info("presence tracker stopped", "online_at_shutdown", len(t.sessions))
	t.sessions = make(map[string]time.Time)
}
