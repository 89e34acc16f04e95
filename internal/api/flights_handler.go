package api

import (
	"net/http"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
	"github.com/abheesh-03/Flight-Tracker/internal/services"
)

// SearchFlightHandler handles GET /api/v1/flights/search?flight_number=
//
// Lookup failures other than bad input are reported with HTTP 200 and an
// error payload: the dashboard inspects the body, not the status, so a
// "flight not found" renders as a message rather than a transport error.
func SearchFlightHandler(search *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightNumber := r.URL.Query().Get("flight_number")
		if flightNumber == "" {
			common.RespondError(w, initTime, nil, "Missing flight_number parameter", http.StatusBadRequest)
			return
		}

		clientID := r.Header.Get("X-Client-Id")

		result, err := search.Search(r.Context(), clientID, flightNumber)
		if err != nil {
			logging.Info("Flight search failed",
				"flight_number", flightNumber,
				"error", err.Error(),
			)
			common.RespondError(w, initTime, err, "Flight search failed", http.StatusOK)
			return
		}

		common.RespondSuccess(w, initTime, "Flight found", result)
	}
}

// FlightLocationHandler handles GET /api/v1/flights/location?icao24=
//
// A transponder with no current state vector is a 404: the aircraft exists
// but is not broadcasting, typically after landing.
func FlightLocationHandler(live *providers.LivePositionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao24 := r.URL.Query().Get("icao24")
		if icao24 == "" {
			common.RespondError(w, initTime, nil, "Missing icao24 parameter", http.StatusBadRequest)
			return
		}

		sample, err := live.GetPosition(r.Context(), icao24)
		if err != nil {
			if providers.IsUnavailable(err) {
				common.RespondError(w, initTime, err, "No live position available", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Live position lookup failed", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Live position", sample)
	}
}
