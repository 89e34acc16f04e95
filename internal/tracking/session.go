package tracking

import (
	"sync"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

const altitudeHistoryLimit = 20

// Session owns all mutable view state for one tracked flight: the trail,
// the bounded altitude history, and the single resolved-state slot. Every
// tick replaces the slot wholesale; nothing partially mutates it. A
// generation counter tags fetches so a late response from a superseded
// search is detectable and dropped.
type Session struct {
	mu         sync.RWMutex
	flight     *dtos.FlightRecord
	generation uint64
	trail      []dtos.TrailPoint
	altitude   []dtos.AltitudeSample
	resolved   *dtos.ResolvedState
	liveSeen   bool

	updates chan *dtos.ResolvedState
}

// NewSession creates the state for a freshly searched flight.
func NewSession(rec *dtos.FlightRecord) *Session {
	return &Session{
		flight:  rec,
		updates: make(chan *dtos.ResolvedState, 1),
	}
}

// Flight returns the schedule record this session tracks.
func (s *Session) Flight() *dtos.FlightRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flight
}

// Generation returns the tag a fetch must carry to be applied.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Reset replaces the tracked flight and clears all accumulated state. The
// generation bump invalidates any fetch still in flight.
func (s *Session) Reset(rec *dtos.FlightRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flight = rec
	s.generation++
	s.trail = nil
	s.altitude = nil
	s.resolved = nil
	s.liveSeen = false
}

// ApplyLive fuses a live telemetry sample obtained under gen. Returns false
// when the sample arrived for a superseded generation and was discarded.
func (s *Session) ApplyLive(gen uint64, sample *dtos.PositionSample, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.liveSeen = true
	s.store(Resolve(s.flight, sample, now))
	return true
}

// ApplyEstimate recomputes the schedule-interpolated position under gen.
func (s *Session) ApplyEstimate(gen uint64, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.store(Resolve(s.flight, nil, now))
	return true
}

// store replaces the resolved slot and maintains trail and altitude
// history. Caller holds the write lock.
func (s *Session) store(rs *dtos.ResolvedState) {
	s.resolved = rs

	if rs.Position != nil {
		s.trail = append(s.trail, dtos.TrailPoint{
			Latitude:  rs.Position.Latitude,
			Longitude: rs.Position.Longitude,
		})

		if rs.Position.AltitudeM != 0 {
			s.altitude = append(s.altitude, dtos.AltitudeSample{
				Time:      time.Now(),
				AltitudeM: rs.Position.AltitudeM,
			})
			if len(s.altitude) > altitudeHistoryLimit {
				s.altitude = s.altitude[len(s.altitude)-altitudeHistoryLimit:]
			}
		}
	}

	s.notify(rs)
}

// notify pushes the snapshot to the updates channel, latest wins: a slow
// consumer sees the freshest state, never a backlog.
func (s *Session) notify(rs *dtos.ResolvedState) {
	select {
	case s.updates <- rs:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- rs:
		default:
		}
	}
}

// Updates exposes the latest-wins stream of resolved snapshots.
func (s *Session) Updates() <-chan *dtos.ResolvedState {
	return s.updates
}

// Resolved returns the current resolved state, nil before the first tick.
func (s *Session) Resolved() *dtos.ResolvedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

// LiveSeen reports whether any live sample has been applied this session.
// Estimation animation never starts once live data has been seen.
func (s *Session) LiveSeen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liveSeen
}

// Trail returns a copy of the resolved coordinates so far.
func (s *Session) Trail() []dtos.TrailPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dtos.TrailPoint, len(s.trail))
	copy(out, s.trail)
	return out
}

// AltitudeHistory returns a copy of the bounded altitude samples.
func (s *Session) AltitudeHistory() []dtos.AltitudeSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dtos.AltitudeSample, len(s.altitude))
	copy(out, s.altitude)
	return out
}
