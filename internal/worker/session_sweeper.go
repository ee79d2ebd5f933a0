package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper drops expired session state: idle slots or stale revocations.
type Sweeper interface {
	Sweep() int
}

// SessionSweeper periodically purges expired slots from a session store
// that does not expire them on its own.
type SessionSweeper struct {
	store    Sweeper
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(store Sweeper, interval time.Duration, log zerolog.Logger) *SessionSweeper {
	return &SessionSweeper{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "session_sweeper").Logger(),
	}
}

// Start runs until ctx is done. Call in a goroutine.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			if n := w.store.Sweep(); n > 0 {
				w.log.Debug().Int("dropped", n).Msg("Expired sessions swept")
			}
		}
	}
}
