package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/history"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
	"github.com/abheesh-03/Flight-Tracker/internal/services"
)

type stubFlights struct {
	rec *dtos.FlightRecord
	err error
}

func (s *stubFlights) GetFlight(_ context.Context, _ string) (*dtos.FlightRecord, error) {
	return s.rec, s.err
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) dtos.APIResponse {
	t.Helper()
	var resp dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestSearchFlightHandler_MissingParam(t *testing.T) {
	search := services.NewSearchService(&stubFlights{}, nil, nil, nil, nil, nil)
	handler := SearchFlightHandler(search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/search", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestSearchFlightHandler_NotFoundIsHTTP200(t *testing.T) {
	search := services.NewSearchService(
		&stubFlights{err: providers.NewProviderError(constants.ErrCodeNotFound, nil)},
		nil, nil, nil, nil, nil,
	)
	handler := SearchFlightHandler(search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?flight_number=ZZ999", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 with error payload, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if resp.Status != string(constants.APIStatusError) {
		t.Errorf("Expected error status in payload, got %s", resp.Status)
	}
	if resp.Message == "" {
		t.Error("Expected a human-readable message in the payload")
	}
}

func TestSearchFlightHandler_Success(t *testing.T) {
	rec := &dtos.FlightRecord{FlightCode: "BA142", Status: dtos.StatusScheduled}
	search := services.NewSearchService(&stubFlights{rec: rec}, nil, nil, nil, nil, nil)
	handler := SearchFlightHandler(search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?flight_number=ba142", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if resp.Status != string(constants.APIStatusOk) {
		t.Errorf("Expected ok status, got %s", resp.Status)
	}
	if resp.Data == nil {
		t.Error("Expected search result in payload")
	}
}

func TestSearchFlightHandler_RecordsHistory(t *testing.T) {
	cache := common.NewCacheService(0, 0)
	searches := history.NewRecentSearchService(cache)
	rec := &dtos.FlightRecord{FlightCode: "BA142", Status: dtos.StatusScheduled}
	search := services.NewSearchService(&stubFlights{rec: rec}, nil, nil, nil, searches, nil)
	handler := SearchFlightHandler(search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?flight_number=ba142", nil)
	req.Header.Set("X-Client-Id", "client-1")
	rr := httptest.NewRecorder()
	handler(rr, req)

	got := searches.Get("client-1")
	if len(got) != 1 || got[0] != "BA142" {
		t.Errorf("Expected search recorded for client, got %v", got)
	}
}

func TestFlightLocationHandler_MissingParam(t *testing.T) {
	handler := FlightLocationHandler(&providers.LivePositionProvider{Client: &http.Client{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/location", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestFlightLocationHandler_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"time": 1710500000, "states": null}`))
	}))
	defer server.Close()

	provider := &providers.LivePositionProvider{BaseURL: server.URL, Client: &http.Client{}}
	handler := FlightLocationHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/location?icao24=a1b2c3", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for no state vector, got %d", rr.Code)
	}
}

func TestAircraftImageHandler_NoPhotoIsNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := &providers.AircraftImageProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}
	handler := AircraftImageHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/aircraft/image?registration=G-XWBA", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if resp.Data != nil {
		t.Errorf("Expected null data for missing photo, got %v", resp.Data)
	}
}

func TestRecentSearchesHandler(t *testing.T) {
	cache := common.NewCacheService(0, 0)
	searches := history.NewRecentSearchService(cache)
	searches.Record("client-1", "BA142")
	handler := RecentSearchesHandler(searches)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without client header, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	req.Header.Set("X-Client-Id", "client-1")
	rr = httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	list, ok := resp.Data.([]interface{})
	if !ok || len(list) != 1 || list[0] != "BA142" {
		t.Errorf("Expected recorded search in payload, got %v", resp.Data)
	}
}
