package tracking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
)

// stubLiveFetcher returns canned results in sequence and records calls.
type stubLiveFetcher struct {
	mu      sync.Mutex
	results []stubResult
	calls   int
}

type stubResult struct {
	sample *dtos.PositionSample
	err    error
}

func (f *stubLiveFetcher) GetPosition(ctx context.Context, icao24 string) (*dtos.PositionSample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i].sample, f.results[i].err
}

func (f *stubLiveFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met in time")
}

func TestSchedulerLivePolling(t *testing.T) {
	dep := time.Now().Add(-time.Hour)
	s := NewSession(equatorRoute(dep, dtos.StatusActive))

	fetcher := &stubLiveFetcher{results: []stubResult{
		{sample: &dtos.PositionSample{Latitude: 0, Longitude: 4, AltitudeM: 9000, GroundSpeed: 230}},
	}}

	sc := NewScheduler(s, fetcher)
	sc.LiveInterval = 10 * time.Millisecond
	sc.StartLive("abc123")
	defer sc.Stop()

	waitFor(t, func() bool { return fetcher.callCount() >= 2 })
	waitFor(t, func() bool { return s.Resolved() != nil })

	rs := s.Resolved()
	if rs.IsEstimated {
		t.Error("Expected live resolved state from polling")
	}
	if rs.Position.Longitude != 4 {
		t.Errorf("Expected the fetched position, got %+v", rs.Position)
	}
}

func TestSchedulerUnavailableRetainsLastState(t *testing.T) {
	dep := time.Now().Add(-time.Hour)
	s := NewSession(equatorRoute(dep, dtos.StatusActive))

	unavailable := providers.NewProviderError(constants.ErrCodeUnavailable, nil)
	fetcher := &stubLiveFetcher{results: []stubResult{
		{sample: &dtos.PositionSample{Latitude: 0, Longitude: 4, AltitudeM: 9000, GroundSpeed: 230}},
		{err: unavailable},
	}}

	sc := NewScheduler(s, fetcher)
	sc.LiveInterval = 10 * time.Millisecond
	sc.StartLive("abc123")
	defer sc.Stop()

	waitFor(t, func() bool { return fetcher.callCount() >= 3 })

	rs := s.Resolved()
	if rs == nil || rs.Position == nil {
		t.Fatal("Expected the first poll's state to survive")
	}
	if rs.Position.Longitude != 4 {
		t.Errorf("Expected last known position retained, got %+v", rs.Position)
	}
	if len(s.Trail()) != 1 {
		t.Errorf("Expected unavailable ticks to add nothing, got %d trail points", len(s.Trail()))
	}
}

func TestSchedulerEstimationAnimation(t *testing.T) {
	dep := time.Now().Add(-time.Hour)
	s := NewSession(equatorRoute(dep, dtos.StatusActive))

	sc := NewScheduler(s, nil)
	sc.AnimationInterval = 10 * time.Millisecond
	sc.StartEstimationAnimation()
	defer sc.Stop()

	waitFor(t, func() bool { return len(s.Trail()) >= 2 })

	rs := s.Resolved()
	if rs == nil || !rs.IsEstimated {
		t.Fatal("Expected estimated resolved state")
	}
	if s.LiveSeen() {
		t.Error("Estimation must not mark live data as seen")
	}
}

func TestSchedulerRestartReplacesMode(t *testing.T) {
	dep := time.Now().Add(-time.Hour)
	s := NewSession(equatorRoute(dep, dtos.StatusActive))

	fetcher := &stubLiveFetcher{results: []stubResult{
		{sample: &dtos.PositionSample{Latitude: 0, Longitude: 4, AltitudeM: 9000, GroundSpeed: 230}},
	}}

	sc := NewScheduler(s, fetcher)
	sc.LiveInterval = 10 * time.Millisecond
	sc.AnimationInterval = 10 * time.Millisecond

	sc.StartLive("abc123")
	waitFor(t, func() bool { return fetcher.callCount() >= 1 })

	// Switching modes must stop the previous loop.
	sc.StartEstimationAnimation()
	time.Sleep(30 * time.Millisecond)
	calls := fetcher.callCount()
	time.Sleep(50 * time.Millisecond)
	if fetcher.callCount() > calls+1 {
		t.Error("Expected live polling to stop after mode switch")
	}
	sc.Stop()
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := NewSession(equatorRoute(time.Now(), dtos.StatusActive))
	sc := NewScheduler(s, nil)
	sc.Stop()
	sc.StartEstimationAnimation()
	sc.Stop()
	sc.Stop()
}
