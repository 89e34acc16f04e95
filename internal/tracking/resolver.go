package tracking

import (
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/geo"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

// TrackingState labels the resolver's outcome for one cycle.
type TrackingState string

const (
	StateNoData      TrackingState = "no_data"
	StateLiveTracked TrackingState = "live_tracked"
	StateEstimated   TrackingState = "estimated"
)

const (
	// Synthetic cruise values used while estimating. 35,000 ft and
	// 800 km/h, the placeholders shown when no telemetry exists.
	assumedCruiseAltitudeM = 10668.0
	assumedCruiseSpeedMS   = 800.0 / 3.6

	// A flight reported active past its scheduled arrival stays visually
	// short of the destination; real arrival time is unknown.
	activeProgressCap = 0.95

	// Below this ground speed a linear ETA projection is meaningless.
	minETASpeedKmh = 50.0
)

// Resolve produces the single resolved view state for one tick. A non-nil
// live sample always wins; otherwise the position is estimated from the
// schedule; with neither, the state carries no position at all.
func Resolve(rec *dtos.FlightRecord, live *dtos.PositionSample, now time.Time) *dtos.ResolvedState {
	rs := &dtos.ResolvedState{
		FlightCode: rec.FlightCode,
		ETA:        dtos.ETAUnknown,
	}

	if live != nil {
		rs.Position = live
		deriveMetrics(rs, rec, now)
		return rs
	}

	if est := EstimatePosition(rec, now); est != nil {
		rs.Position = est
		rs.IsEstimated = true
		deriveMetrics(rs, rec, now)
	}

	return rs
}

// StateOf reports which state a resolved snapshot represents.
func StateOf(rs *dtos.ResolvedState) TrackingState {
	switch {
	case rs == nil || rs.Position == nil:
		return StateNoData
	case rs.IsEstimated:
		return StateEstimated
	default:
		return StateLiveTracked
	}
}

// EstimatePosition interpolates a schedule-based position. Returns nil when
// the record lacks route coordinates or usable times; that is a "no data"
// outcome, not an error.
func EstimatePosition(rec *dtos.FlightRecord, now time.Time) *dtos.PositionSample {
	if !rec.HasRoute() {
		return nil
	}

	depTime := rec.DepartureTime()
	arrTime := rec.ArrivalTime()
	if depTime == nil || arrTime == nil || !arrTime.After(*depTime) {
		return nil
	}

	depLat, depLon := *rec.Departure.Latitude, *rec.Departure.Longitude
	arrLat, arrLon := *rec.Arrival.Latitude, *rec.Arrival.Longitude

	// Not departed yet: parked at the gate.
	if now.Before(*depTime) {
		return groundedSample(depLat, depLon, now)
	}

	// Arrived: only when the status confirms landing, or the scheduled
	// arrival has passed and the status no longer counts as active.
	if rec.Status.IsLanded() || (now.After(*arrTime) && !rec.Status.IsActive()) {
		return groundedSample(arrLat, arrLon, now)
	}

	progress := float64(now.Sub(*depTime)) / float64(arrTime.Sub(*depTime))
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	if rec.Status.IsActive() && progress > activeProgressCap {
		progress = activeProgressCap
	}

	// Linear interpolation on the lat/lon chord. Deliberately not a
	// great-circle path; see the route rendering, which draws the same
	// straight segment.
	curLat := depLat + (arrLat-depLat)*progress
	curLon := depLon + (arrLon-depLon)*progress

	heading := 0.0
	if curLat != arrLat || curLon != arrLon {
		heading = geo.InitialBearingDeg(curLat, curLon, arrLat, arrLon)
	}

	ts := now
	return &dtos.PositionSample{
		Latitude:    curLat,
		Longitude:   curLon,
		AltitudeM:   assumedCruiseAltitudeM,
		GroundSpeed: assumedCruiseSpeedMS,
		Heading:     heading,
		Timestamp:   &ts,
	}
}

func groundedSample(lat, lon float64, now time.Time) *dtos.PositionSample {
	ts := now
	return &dtos.PositionSample{
		Latitude:  lat,
		Longitude: lon,
		OnGround:  true,
		Timestamp: &ts,
	}
}

// deriveMetrics fills in route distances and the ETA. Missing route
// coordinates disable the computation for this cycle without failing it.
func deriveMetrics(rs *dtos.ResolvedState, rec *dtos.FlightRecord, now time.Time) {
	if !rec.HasRoute() || rs.Position == nil {
		return
	}

	depLat, depLon := *rec.Departure.Latitude, *rec.Departure.Longitude
	arrLat, arrLon := *rec.Arrival.Latitude, *rec.Arrival.Longitude

	rs.TotalRouteKm = geo.DistanceKm(depLat, depLon, arrLat, arrLon)
	rs.DistanceTraveledKm = geo.DistanceKm(depLat, depLon, rs.Position.Latitude, rs.Position.Longitude)
	rs.DistanceRemainingKm = geo.DistanceKm(rs.Position.Latitude, rs.Position.Longitude, arrLat, arrLon)

	if rs.IsEstimated {
		deriveEstimatedETA(rs, rec, now)
		return
	}

	speedKmh := rs.Position.GroundSpeed * 3.6
	if speedKmh > minETASpeedKmh {
		etaSeconds := rs.DistanceRemainingKm / speedKmh * 3600
		rs.ETA = now.Add(time.Duration(etaSeconds * float64(time.Second))).Format("15:04")
	} else {
		rs.ETA = dtos.ETAUnknown
	}
}

// deriveEstimatedETA takes the ETA straight from the schedule, which is
// more reliable than projecting from a synthetic speed, and back-computes a
// speed from distance and time left so countdown displays stay consistent.
func deriveEstimatedETA(rs *dtos.ResolvedState, rec *dtos.FlightRecord, now time.Time) {
	arrTime := rec.ArrivalTime()
	if arrTime == nil {
		rs.ETA = dtos.ETAUnknown
		return
	}

	hoursLeft := arrTime.Sub(now).Hours()
	if hoursLeft <= 0 {
		rs.ETA = dtos.ETAUnknown
		rs.Position.GroundSpeed = 0
		return
	}

	rs.ETA = arrTime.Format("15:04")
	if !rs.Position.OnGround {
		rs.Position.GroundSpeed = rs.DistanceRemainingKm / hoursLeft / 3.6
	}
}
