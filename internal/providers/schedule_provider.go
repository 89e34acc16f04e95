package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

const scheduleCacheTTL = 2 * time.Minute

// ScheduleProvider resolves an IATA flight number to a FlightRecord via the
// AviationStack flights endpoint.
type ScheduleProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

// NewScheduleProvider creates a new instance, reading config from environment variables
func NewScheduleProvider(cache common.CacheInterface, reg *metrics.MetricsRegistry) *ScheduleProvider {
	baseURL := os.Getenv("AVIATIONSTACK_BASE_URL")
	if baseURL == "" {
		baseURL = "http://api.aviationstack.com/v1"
	}
	return &ScheduleProvider{
		BaseURL: baseURL,
		APIKey:  os.Getenv("AVIATIONSTACK_KEY"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		metrics: reg,
	}
}

// GetFlight looks up the most recent schedule record for flightCode.
// Absence is returned as a NotFound tagged error, never as a hard failure.
func (svc *ScheduleProvider) GetFlight(ctx context.Context, flightCode string) (*dtos.FlightRecord, error) {
	code := common.NormalizeFlightCode(flightCode)
	if code == "" {
		return nil, NewProviderError(constants.ErrCodeInputError, nil)
	}
	if svc.APIKey == "" {
		return nil, NewProviderError(constants.ErrCodeConfigError, nil)
	}

	cacheKey := string(constants.CachePrefixSchedule) + code
	if svc.cache != nil {
		if cached, found := svc.cache.Get(cacheKey); found {
			if rec, ok := cached.(*dtos.FlightRecord); ok {
				countCache(svc.metrics, constants.CachePrefixSchedule, true)
				// The cached record is shared; hand out a copy so
				// concurrent callers never mutate each other's view.
				return rec.Clone(), nil
			}
		}
		countCache(svc.metrics, constants.CachePrefixSchedule, false)
	}

	q := url.Values{}
	q.Set("access_key", svc.APIKey)
	q.Set("flight_iata", code)
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", svc.BaseURL+"/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	start := time.Now()
	resp, err := svc.Client.Do(req)
	observeProviderDuration(svc.metrics, "schedule", start)
	if err != nil {
		svc.countOutcome("schedule", "network_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	defer resp.Body.Close()

	var raw dtos.AviationStackResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		svc.countOutcome("schedule", "decode_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	// AviationStack reports its own errors inside a 200 payload.
	if raw.Error != nil {
		svc.countOutcome("schedule", "provider_error")
		if raw.Error.Message != "" {
			return nil, NewProviderErrorWithMessage(constants.ErrCodeUpstreamError, raw.Error.Message)
		}
		return nil, NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("provider error code %s", raw.Error.Code))
	}

	if resp.StatusCode != http.StatusOK {
		svc.countOutcome("schedule", "http_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if len(raw.Data) == 0 {
		svc.countOutcome("schedule", "not_found")
		return nil, NewProviderError(constants.ErrCodeNotFound, nil)
	}

	rec := normalizeFlight(&raw.Data[0])
	if svc.cache != nil {
		// Store a private copy: the caller's record gets mutated by
		// airport backfill and must not alias the cache.
		svc.cache.Set(cacheKey, rec.Clone(), scheduleCacheTTL)
	}
	svc.countOutcome("schedule", "ok")
	return rec, nil
}

// normalizeFlight maps the raw AviationStack payload onto the internal
// FlightRecord shape.
func normalizeFlight(raw *dtos.AviationStackFlight) *dtos.FlightRecord {
	rec := &dtos.FlightRecord{
		FlightCode: raw.Flight.IATA,
		Status:     normalizeStatus(raw.FlightStatus),
		Departure:  normalizeLeg(&raw.Departure),
		Arrival:    normalizeLeg(&raw.Arrival),
	}

	if raw.Airline.Name != "" || raw.Airline.IATA != "" {
		rec.Airline = &dtos.Airline{
			Name: raw.Airline.Name,
			IATA: raw.Airline.IATA,
			ICAO: raw.Airline.ICAO,
		}
	}

	if raw.Aircraft != nil {
		rec.Aircraft = &dtos.Aircraft{
			Registration: raw.Aircraft.Registration,
			ICAOType:     raw.Aircraft.ICAO,
			ICAO24:       common.NormalizeICAO24(raw.Aircraft.ICAO24),
		}
	}

	if raw.Live != nil {
		ts := parseScheduleTime(raw.Live.Updated)
		rec.LiveHint = &dtos.PositionSample{
			Latitude:    raw.Live.Latitude,
			Longitude:   raw.Live.Longitude,
			AltitudeM:   raw.Live.Altitude,
			GroundSpeed: raw.Live.SpeedHorizontal / 3.6, // km/h -> m/s
			Heading:     raw.Live.Direction,
			OnGround:    raw.Live.IsGround,
			Timestamp:   ts,
		}
	}

	return rec
}

func normalizeLeg(raw *dtos.AviationStackAirport) *dtos.AirportLeg {
	return &dtos.AirportLeg{
		IATA:        raw.IATA,
		AirportName: raw.Airport,
		Terminal:    raw.Terminal,
		Gate:        raw.Gate,
		Timezone:    raw.Timezone,
		Scheduled:   parseScheduleTime(raw.Scheduled),
		Estimated:   parseScheduleTime(raw.Estimated),
		Actual:      parseScheduleTime(raw.Actual),
	}
}

func normalizeStatus(raw string) dtos.FlightStatus {
	switch dtos.FlightStatus(raw) {
	case dtos.StatusScheduled, dtos.StatusActive, dtos.StatusEnRoute,
		dtos.StatusLanded, dtos.StatusArrived, dtos.StatusCancelled:
		return dtos.FlightStatus(raw)
	default:
		return dtos.StatusUnknown
	}
}

// parseScheduleTime handles the provider's timestamp variants: RFC3339 with
// offset, or a bare local timestamp without zone.
func parseScheduleTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	logging.Warn("Unparseable schedule timestamp", "value", s)
	return nil
}

func (svc *ScheduleProvider) countOutcome(provider, outcome string) {
	if svc.metrics != nil {
		svc.metrics.ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
	}
}
