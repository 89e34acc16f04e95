package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
	"github.com/abheesh-03/Flight-Tracker/internal/services"
	"github.com/abheesh-03/Flight-Tracker/internal/tracking"
)

func dialTrack(t *testing.T, handler http.HandlerFunc, query string) (*websocket.Conn, *httptest.Server, context.CancelFunc) {
	t.Helper()
	server := httptest.NewServer(handler)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/flights/track" + query
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		server.Close()
		cancel()
		t.Fatalf("Expected handshake to succeed, got %v", err)
	}
	return conn, server, cancel
}

func TestTrackFlightHandler_NoDataFlightStillSendsFrame(t *testing.T) {
	// A flight with no transponder, no live hint, and no route
	// coordinates: the stream must still announce the no-data state.
	rec := &dtos.FlightRecord{FlightCode: "BA142", Status: dtos.StatusScheduled}
	search := services.NewSearchService(&stubFlights{rec: rec}, nil, nil, nil, nil, nil)
	ctrl := tracking.NewController(nil, nil)
	handler := TrackFlightHandler(search, ctrl, nil)

	conn, server, cancel := dialTrack(t, handler, "?flight_number=BA142")
	defer server.Close()
	defer cancel()
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx, readCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer readCancel()

	var frame TrackUpdate
	if err := wsjson.Read(ctx, conn, &frame); err != nil {
		t.Fatalf("Expected an initial frame, got %v", err)
	}
	if frame.State != string(tracking.StateNoData) {
		t.Errorf("Expected no_data state, got %s", frame.State)
	}
	if frame.Resolved != nil {
		t.Errorf("Expected no resolved snapshot, got %+v", frame.Resolved)
	}
}

func TestTrackFlightHandler_EstimationStream(t *testing.T) {
	dep := time.Now().Add(-time.Hour)
	arr := dep.Add(2 * time.Hour)
	lat0, lon0, lat1, lon1 := 0.0, 0.0, 0.0, 10.0
	rec := &dtos.FlightRecord{
		FlightCode: "BA142",
		Status:     dtos.StatusActive,
		Departure:  &dtos.AirportLeg{IATA: "AAA", Scheduled: &dep, Latitude: &lat0, Longitude: &lon0},
		Arrival:    &dtos.AirportLeg{IATA: "BBB", Scheduled: &arr, Latitude: &lat1, Longitude: &lon1},
	}
	search := services.NewSearchService(&stubFlights{rec: rec}, nil, nil, nil, nil, nil)
	ctrl := tracking.NewController(nil, nil)
	handler := TrackFlightHandler(search, ctrl, nil)

	conn, server, cancel := dialTrack(t, handler, "?flight_number=BA142")
	defer server.Close()
	defer cancel()
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx, readCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer readCancel()

	// The estimation animation ticks immediately; within the first
	// frames an estimated snapshot must appear.
	for i := 0; i < 3; i++ {
		var frame TrackUpdate
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("Expected a frame, got %v", err)
		}
		if frame.State == string(tracking.StateEstimated) {
			if frame.Resolved == nil || frame.Resolved.Position == nil {
				t.Fatal("Expected an estimated position in the frame")
			}
			return
		}
	}
	t.Fatal("Expected an estimated frame within the first ticks")
}

func TestTrackFlightHandler_ErrorStatusByTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", providers.NewProviderError(constants.ErrCodeNotFound, nil), http.StatusNotFound},
		{"config", providers.NewProviderError(constants.ErrCodeConfigError, nil), http.StatusInternalServerError},
		{"upstream", providers.NewProviderError(constants.ErrCodeUpstreamError, nil), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			search := services.NewSearchService(&stubFlights{err: tc.err}, nil, nil, nil, nil, nil)
			handler := TrackFlightHandler(search, tracking.NewController(nil, nil), nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/track?flight_number=XX1", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			if rr.Code != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}
