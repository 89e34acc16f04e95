package dtos

import "time"

// FlightStatus mirrors the status vocabulary of the schedule provider.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusActive    FlightStatus = "active"
	StatusEnRoute   FlightStatus = "en-route"
	StatusLanded    FlightStatus = "landed"
	StatusArrived   FlightStatus = "arrived"
	StatusCancelled FlightStatus = "cancelled"
	StatusUnknown   FlightStatus = "unknown"
)

// IsActive reports whether the status still counts as "in the air or about
// to be" for interpolation purposes.
func (s FlightStatus) IsActive() bool {
	return s == StatusActive || s == StatusEnRoute || s == StatusScheduled
}

// IsLanded reports whether the status confirms the flight is on the ground
// at its destination.
func (s FlightStatus) IsLanded() bool {
	return s == StatusLanded || s == StatusArrived
}

// Airline identifies the operating carrier.
type Airline struct {
	Name string `json:"name,omitempty"`
	IATA string `json:"iata,omitempty"`
	ICAO string `json:"icao,omitempty"`
}

// AirportLeg is one endpoint of a flight's route: the schedule fields for
// either the departure or the arrival airport.
type AirportLeg struct {
	IATA        string     `json:"iata"`
	AirportName string     `json:"airport,omitempty"`
	Terminal    string     `json:"terminal,omitempty"`
	Gate        string     `json:"gate,omitempty"`
	Scheduled   *time.Time `json:"scheduled,omitempty"`
	Estimated   *time.Time `json:"estimated,omitempty"`
	Actual      *time.Time `json:"actual,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Timezone    string     `json:"timezone,omitempty"`
}

// HasCoordinates reports whether the leg carries usable coordinates.
func (l *AirportLeg) HasCoordinates() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

// Aircraft carries the airframe identifiers attached to a schedule record.
// ICAO24 is the transponder hex used to request live telemetry.
type Aircraft struct {
	Registration string `json:"registration,omitempty"`
	ICAOType     string `json:"icao_type,omitempty"`
	ICAO24       string `json:"icao24,omitempty"`
}

// PositionSample is a point-in-time physical state of the aircraft, either
// measured by live telemetry or synthesized by schedule estimation.
type PositionSample struct {
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	AltitudeM   float64    `json:"altitude"`
	GroundSpeed float64    `json:"speed"` // metres per second
	Heading     float64    `json:"heading"`
	OnGround    bool       `json:"on_ground"`
	Timestamp   *time.Time `json:"last_update,omitempty"`
}

// FlightRecord is one tracked flight's schedule snapshot as returned by the
// schedule provider, after airport backfill.
type FlightRecord struct {
	FlightCode string          `json:"flight_code"`
	Airline    *Airline        `json:"airline,omitempty"`
	Status     FlightStatus    `json:"flight_status"`
	Departure  *AirportLeg     `json:"departure"`
	Arrival    *AirportLeg     `json:"arrival"`
	Aircraft   *Aircraft       `json:"aircraft,omitempty"`
	LiveHint   *PositionSample `json:"live,omitempty"`
}

// Clone returns a deep copy. Cached records are shared across requests and
// airport backfill mutates legs in place, so every consumer gets its own
// copy.
func (f *FlightRecord) Clone() *FlightRecord {
	if f == nil {
		return nil
	}
	out := *f
	if f.Airline != nil {
		a := *f.Airline
		out.Airline = &a
	}
	out.Departure = f.Departure.clone()
	out.Arrival = f.Arrival.clone()
	if f.Aircraft != nil {
		ac := *f.Aircraft
		out.Aircraft = &ac
	}
	if f.LiveHint != nil {
		lh := *f.LiveHint
		out.LiveHint = &lh
	}
	return &out
}

func (l *AirportLeg) clone() *AirportLeg {
	if l == nil {
		return nil
	}
	out := *l
	copyTime := func(t *time.Time) *time.Time {
		if t == nil {
			return nil
		}
		v := *t
		return &v
	}
	out.Scheduled = copyTime(l.Scheduled)
	out.Estimated = copyTime(l.Estimated)
	out.Actual = copyTime(l.Actual)
	copyFloat := func(f *float64) *float64 {
		if f == nil {
			return nil
		}
		v := *f
		return &v
	}
	out.Latitude = copyFloat(l.Latitude)
	out.Longitude = copyFloat(l.Longitude)
	return &out
}

// HasRoute reports whether both endpoints carry coordinates. Position and
// distance math is disabled without them.
func (f *FlightRecord) HasRoute() bool {
	return f != nil && f.Departure.HasCoordinates() && f.Arrival.HasCoordinates()
}

// DepartureTime returns actual-or-scheduled departure time.
func (f *FlightRecord) DepartureTime() *time.Time {
	if f.Departure == nil {
		return nil
	}
	if f.Departure.Actual != nil {
		return f.Departure.Actual
	}
	return f.Departure.Scheduled
}

// ArrivalTime returns estimated-or-scheduled arrival time.
func (f *FlightRecord) ArrivalTime() *time.Time {
	if f.Arrival == nil {
		return nil
	}
	if f.Arrival.Estimated != nil {
		return f.Arrival.Estimated
	}
	return f.Arrival.Scheduled
}

// ETAUnknown is the sentinel shown when no meaningful ETA can be projected.
const ETAUnknown = "--:--"

// ResolvedState is the resolver's output for one tick, consumed by the
// presentation layer. The position slot is replaced wholesale each cycle.
type ResolvedState struct {
	FlightCode          string          `json:"flight_code"`
	Position            *PositionSample `json:"position,omitempty"`
	IsEstimated         bool            `json:"is_estimated"`
	DistanceTraveledKm  float64         `json:"distance_traveled_km"`
	DistanceRemainingKm float64         `json:"distance_remaining_km"`
	TotalRouteKm        float64         `json:"total_route_km"`
	ETA                 string          `json:"eta"`
}

// AltitudeSample is one entry of the bounded altitude history.
type AltitudeSample struct {
	Time      time.Time `json:"time"`
	AltitudeM float64   `json:"altitude"`
}

// TrailPoint is one previously resolved coordinate of the active flight.
type TrailPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// AirportDetail is the normalized output of the airport-detail provider,
// used to backfill coordinates missing from the schedule response.
type AirportDetail struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// WeatherSnapshot is the normalized current-conditions payload.
type WeatherSnapshot struct {
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	WindSpeedMS float64 `json:"wind_speed_ms"`
	WindDeg     int     `json:"wind_deg"`
	VisibilityM int     `json:"visibility_m"`
	Station     string  `json:"station,omitempty"`
}

// SearchResult is the payload of a successful flight search: the schedule
// record plus the best-effort enrichments fetched alongside it.
type SearchResult struct {
	Flight           *FlightRecord    `json:"flight"`
	DepartureWeather *WeatherSnapshot `json:"departure_weather,omitempty"`
	ArrivalWeather   *WeatherSnapshot `json:"arrival_weather,omitempty"`
	AircraftImageURL string           `json:"aircraft_image_url,omitempty"`
	TotalRouteKm     float64          `json:"total_route_km,omitempty"`
}
