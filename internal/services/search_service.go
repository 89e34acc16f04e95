package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abheesh-03/Flight-Tracker/internal/geo"
	"github.com/abheesh-03/Flight-Tracker/internal/history"
	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

// The provider slices the search flow depends on. Handlers inject the real
// adapters; tests substitute stubs.
type FlightSource interface {
	GetFlight(ctx context.Context, flightCode string) (*dtos.FlightRecord, error)
}

type AirportSource interface {
	GetAirport(ctx context.Context, iata string) (*dtos.AirportDetail, error)
}

type WeatherSource interface {
	GetCurrent(ctx context.Context, lat, lon float64) (*dtos.WeatherSnapshot, error)
}

type ImageSource interface {
	GetImageURL(ctx context.Context, registration string) (string, error)
}

// SearchService runs the full search flow: fetch the schedule record,
// backfill missing airport coordinates, then enrich with weather and an
// aircraft photo. Only the schedule fetch can fail the search; every
// enrichment is best effort.
type SearchService struct {
	flights  FlightSource
	airports AirportSource
	weather  WeatherSource
	images   ImageSource
	searches *history.RecentSearchService
	metrics  *metrics.MetricsRegistry
}

func NewSearchService(
	flights FlightSource,
	airports AirportSource,
	weather WeatherSource,
	images ImageSource,
	searches *history.RecentSearchService,
	reg *metrics.MetricsRegistry,
) *SearchService {
	return &SearchService{
		flights:  flights,
		airports: airports,
		weather:  weather,
		images:   images,
		searches: searches,
		metrics:  reg,
	}
}

// Search resolves flightCode into an enriched result. clientID, when
// non-empty, records the search in that client's recent list.
func (s *SearchService) Search(ctx context.Context, clientID, flightCode string) (*dtos.SearchResult, error) {
	rec, err := s.flights.GetFlight(ctx, flightCode)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
	}
	if s.searches != nil && clientID != "" {
		s.searches.Record(clientID, rec.FlightCode)
	}

	s.backfillAirports(ctx, rec)

	result := &dtos.SearchResult{Flight: rec}
	if rec.HasRoute() {
		result.TotalRouteKm = geo.DistanceKm(
			*rec.Departure.Latitude, *rec.Departure.Longitude,
			*rec.Arrival.Latitude, *rec.Arrival.Longitude,
		)
	}

	s.enrich(ctx, rec, result)
	return result, nil
}

// backfillAirports fills coordinates and timezones the schedule feed left
// blank from the airport store, both legs in parallel. A failed lookup
// leaves the leg as it was.
func (s *SearchService) backfillAirports(ctx context.Context, rec *dtos.FlightRecord) {
	if s.airports == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, leg := range []*dtos.AirportLeg{rec.Departure, rec.Arrival} {
		if leg == nil || leg.IATA == "" || leg.HasCoordinates() {
			continue
		}
		leg := leg
		g.Go(func() error {
			detail, err := s.airports.GetAirport(gctx, leg.IATA)
			if err != nil {
				logging.Warn("Airport backfill failed",
					"iata", leg.IATA,
					"error", err.Error(),
				)
				return nil
			}
			if detail == nil {
				return nil
			}
			lat, lon := detail.Latitude, detail.Longitude
			leg.Latitude, leg.Longitude = &lat, &lon
			if leg.AirportName == "" {
				leg.AirportName = detail.Name
			}
			if leg.Timezone == "" {
				leg.Timezone = detail.Timezone
			}
			return nil
		})
	}
	g.Wait()
}

// enrich attaches weather for both route endpoints and the aircraft photo,
// all fetched concurrently. Failures are logged and swallowed.
func (s *SearchService) enrich(ctx context.Context, rec *dtos.FlightRecord, result *dtos.SearchResult) {
	g, gctx := errgroup.WithContext(ctx)

	if s.weather != nil {
		if rec.Departure != nil && rec.Departure.HasCoordinates() {
			lat, lon := *rec.Departure.Latitude, *rec.Departure.Longitude
			g.Go(func() error {
				wx, err := s.weather.GetCurrent(gctx, lat, lon)
				if err != nil {
					logging.Warn("Departure weather fetch failed", "error", err.Error())
					return nil
				}
				result.DepartureWeather = wx
				return nil
			})
		}
		if rec.Arrival != nil && rec.Arrival.HasCoordinates() {
			lat, lon := *rec.Arrival.Latitude, *rec.Arrival.Longitude
			g.Go(func() error {
				wx, err := s.weather.GetCurrent(gctx, lat, lon)
				if err != nil {
					logging.Warn("Arrival weather fetch failed", "error", err.Error())
					return nil
				}
				result.ArrivalWeather = wx
				return nil
			})
		}
	}

	if s.images != nil && rec.Aircraft != nil && rec.Aircraft.Registration != "" {
		reg := rec.Aircraft.Registration
		g.Go(func() error {
			url, err := s.images.GetImageURL(gctx, reg)
			if err != nil {
				logging.Warn("Aircraft image fetch failed",
					"registration", reg,
					"error", err.Error(),
				)
				return nil
			}
			result.AircraftImageURL = url
			return nil
		})
	}

	g.Wait()
}
