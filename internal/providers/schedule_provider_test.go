package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

const scheduleFixture = `{
  "pagination": {"limit": 1, "offset": 0, "count": 1, "total": 1},
  "data": [{
    "flight_date": "2024-03-15",
    "flight_status": "active",
    "departure": {
      "airport": "John F Kennedy International",
      "timezone": "America/New_York",
      "iata": "JFK",
      "icao": "KJFK",
      "terminal": "4",
      "gate": "B22",
      "scheduled": "2024-03-15T08:30:00+00:00",
      "estimated": "2024-03-15T08:30:00+00:00",
      "actual": "2024-03-15T08:41:00+00:00"
    },
    "arrival": {
      "airport": "Los Angeles International",
      "timezone": "America/Los_Angeles",
      "iata": "LAX",
      "icao": "KLAX",
      "scheduled": "2024-03-15T14:45:00+00:00"
    },
    "airline": {"name": "United Airlines", "iata": "UA", "icao": "UAL"},
    "flight": {"number": "123", "iata": "UA123", "icao": "UAL123"},
    "aircraft": {"registration": "N12345", "iata": "B739", "icao": "B739", "icao24": "A1B2C3"},
    "live": null
  }]
}`

func newScheduleProvider(serverURL string) *ScheduleProvider {
	return &ScheduleProvider{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}
}

func TestScheduleProvider_GetFlight_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/flights" {
			t.Errorf("Expected path /flights, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("flight_iata"); got != "UA123" {
			t.Errorf("Expected flight_iata UA123, got %s", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(scheduleFixture))
	}))
	defer server.Close()

	provider := newScheduleProvider(server.URL)

	rec, err := provider.GetFlight(context.Background(), "ua123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.FlightCode != "UA123" {
		t.Errorf("Expected flight code UA123, got %s", rec.FlightCode)
	}
	if rec.Status != dtos.StatusActive {
		t.Errorf("Expected status active, got %s", rec.Status)
	}
	if rec.Aircraft == nil || rec.Aircraft.ICAO24 != "a1b2c3" {
		t.Errorf("Expected normalized icao24 a1b2c3, got %+v", rec.Aircraft)
	}
	if rec.Departure.Actual == nil {
		t.Fatal("Expected actual departure time to be parsed")
	}
	if dep := rec.DepartureTime(); !dep.Equal(*rec.Departure.Actual) {
		t.Errorf("Expected DepartureTime to prefer actual, got %v", dep)
	}
	if rec.Arrival.Timezone != "America/Los_Angeles" {
		t.Errorf("Expected arrival timezone from schedule, got %s", rec.Arrival.Timezone)
	}
}

func TestScheduleProvider_GetFlight_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"pagination": {"count": 0}, "data": []}`))
	}))
	defer server.Close()

	provider := newScheduleProvider(server.URL)

	_, err := provider.GetFlight(context.Background(), "ZZ999")
	if !IsNotFound(err) {
		t.Errorf("Expected NotFound tagged error, got %v", err)
	}
}

func TestScheduleProvider_GetFlight_ProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// AviationStack signals usage errors inside a 200 payload.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": {"code": "usage_limit_reached", "message": "Your monthly usage limit has been reached."}}`))
	}))
	defer server.Close()

	provider := newScheduleProvider(server.URL)

	_, err := provider.GetFlight(context.Background(), "UA123")
	if err == nil {
		t.Fatal("Expected error")
	}
	if err.Error() != "Your monthly usage limit has been reached." {
		t.Errorf("Expected provider message to be surfaced, got %q", err.Error())
	}
}

func TestScheduleProvider_GetFlight_MissingKey(t *testing.T) {
	provider := &ScheduleProvider{BaseURL: "http://unused", Client: &http.Client{}}

	_, err := provider.GetFlight(context.Background(), "UA123")
	if !IsConfigError(err) {
		t.Errorf("Expected ConfigError, got %v", err)
	}
}

func TestScheduleProvider_GetFlight_CacheHit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(scheduleFixture))
	}))
	defer server.Close()

	provider := newScheduleProvider(server.URL)
	provider.cache = common.NewCacheService(time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := provider.GetFlight(context.Background(), "UA123"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("Expected 1 upstream call, got %d", calls)
	}
}

func TestScheduleProvider_GetFlight_CachedRecordNotAliased(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(scheduleFixture))
	}))
	defer server.Close()

	provider := newScheduleProvider(server.URL)
	provider.cache = common.NewCacheService(time.Minute, time.Minute)

	first, err := provider.GetFlight(context.Background(), "UA123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := provider.GetFlight(context.Background(), "UA123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first == second || first.Departure == second.Departure {
		t.Fatal("Expected each lookup to return its own copy")
	}

	// Backfill-style mutation of one caller's record must not leak into
	// another caller's view through the cache.
	lat := 91.0
	first.Departure.Latitude = &lat
	first.Aircraft.ICAO24 = "mutated"

	third, err := provider.GetFlight(context.Background(), "UA123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if third.Departure.Latitude != nil && *third.Departure.Latitude == 91.0 {
		t.Error("Expected cached record untouched by caller mutation")
	}
	if third.Aircraft.ICAO24 == "mutated" {
		t.Error("Expected cached aircraft untouched by caller mutation")
	}
}

func TestNormalizeStatusUnknown(t *testing.T) {
	if got := normalizeStatus("diverted"); got != dtos.StatusUnknown {
		t.Errorf("Expected unknown for unmapped status, got %s", got)
	}
	if got := normalizeStatus("landed"); got != dtos.StatusLanded {
		t.Errorf("Expected landed, got %s", got)
	}
}

func TestParseScheduleTimeVariants(t *testing.T) {
	if ts := parseScheduleTime("2024-03-15T08:30:00+00:00"); ts == nil {
		t.Error("Expected RFC3339 timestamp to parse")
	}
	if ts := parseScheduleTime("2024-03-15T08:30:00"); ts == nil {
		t.Error("Expected zone-less timestamp to parse")
	}
	if ts := parseScheduleTime(""); ts != nil {
		t.Error("Expected empty timestamp to yield nil")
	}
}
