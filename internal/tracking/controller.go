package tracking

import (
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

// Controller builds tracking sessions out of schedule records and picks the
// scheduler mode per the fusion rules: live polling when a transponder hex
// is known, a single-shot fix when the schedule carried an instantaneous
// position, estimation animation when only route coordinates exist, and a
// bare no-data session otherwise.
type Controller struct {
	live    LiveFetcher
	metrics *metrics.MetricsRegistry
}

func NewController(live LiveFetcher, reg *metrics.MetricsRegistry) *Controller {
	return &Controller{live: live, metrics: reg}
}

// StartTracking creates a session for rec and starts the appropriate
// scheduler mode. The caller owns teardown via StopTracking.
func (c *Controller) StartTracking(rec *dtos.FlightRecord) (*Session, *Scheduler) {
	session := NewSession(rec)
	scheduler := NewScheduler(session, c.live)
	log := logging.WithFlight(rec.FlightCode)

	switch {
	case rec.Aircraft != nil && rec.Aircraft.ICAO24 != "":
		log.Infow("Tracking via live telemetry", "icao24", rec.Aircraft.ICAO24)
		scheduler.StartLive(rec.Aircraft.ICAO24)

	case rec.LiveHint != nil:
		// Schedule provider supplied an instantaneous position but no
		// transponder hex to poll: apply it once as the initial fix.
		log.Infow("Tracking via single-shot live hint")
		session.ApplyLive(session.Generation(), rec.LiveHint, time.Now())

	case rec.HasRoute():
		log.Infow("Tracking via schedule estimation")
		scheduler.StartEstimationAnimation()

	default:
		log.Infow("No position data available for flight")
	}

	if c.metrics != nil {
		c.metrics.TrackingSessionsActive.Inc()
	}
	return session, scheduler
}

// StopTracking tears down a session's scheduler.
func (c *Controller) StopTracking(scheduler *Scheduler) {
	scheduler.Stop()
	if c.metrics != nil {
		c.metrics.TrackingSessionsActive.Dec()
	}
}
