package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
)

const (
	defaultLiveInterval      = 10 * time.Second
	defaultAnimationInterval = 5 * time.Second
)

// LiveFetcher is the slice of the live-position provider the scheduler
// needs; tests substitute a stub.
type LiveFetcher interface {
	GetPosition(ctx context.Context, icao24 string) (*dtos.PositionSample, error)
}

// Scheduler drives one session's resolver at a fixed cadence. Exactly one
// mode runs at a time: live polling when a transponder hex is known, or the
// faster estimation animation when falling back to schedule interpolation.
type Scheduler struct {
	session *Session
	live    LiveFetcher

	LiveInterval      time.Duration
	AnimationInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewScheduler(session *Session, live LiveFetcher) *Scheduler {
	return &Scheduler{
		session:           session,
		live:              live,
		LiveInterval:      defaultLiveInterval,
		AnimationInterval: defaultAnimationInterval,
	}
}

// StartLive begins polling live telemetry for the given transponder hex,
// replacing any running mode. Each poll is tagged with the generation
// current at issue time; an unavailable result is a no-op tick and the last
// known position is retained.
func (sc *Scheduler) StartLive(icao24 string) {
	ctx := sc.restart()

	go func() {
		sc.pollLive(ctx, icao24)

		ticker := time.NewTicker(sc.LiveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sc.pollLive(ctx, icao24)
			}
		}
	}()
}

// StartEstimationAnimation begins recomputing the interpolated position so
// the marker advances smoothly without new upstream data.
func (sc *Scheduler) StartEstimationAnimation() {
	ctx := sc.restart()

	go func() {
		sc.session.ApplyEstimate(sc.session.Generation(), time.Now())

		ticker := time.NewTicker(sc.AnimationInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sc.session.ApplyEstimate(sc.session.Generation(), time.Now())
			}
		}
	}()
}

// Stop halts the running mode. An already issued fetch may still complete;
// its result is dropped by the generation check.
func (sc *Scheduler) Stop() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cancel != nil {
		sc.cancel()
		sc.cancel = nil
	}
}

// restart tears down the previous mode and hands out the context for the
// next one, keeping the one-timer-per-session invariant.
func (sc *Scheduler) restart() context.Context {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cancel != nil {
		sc.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	sc.cancel = cancel
	return ctx
}

func (sc *Scheduler) pollLive(ctx context.Context, icao24 string) {
	gen := sc.session.Generation()

	sample, err := sc.live.GetPosition(ctx, icao24)
	if err != nil {
		if providers.IsUnavailable(err) {
			// Aircraft landed or out of coverage; keep showing the
			// last known position.
			return
		}
		if ctx.Err() == nil {
			logging.Warn("Live position poll failed",
				"icao24", icao24,
				"error", err.Error(),
			)
		}
		return
	}

	sc.session.ApplyLive(gen, sample, time.Now())
}
