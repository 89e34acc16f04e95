package api

import (
	"context"
	"net/http"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
	"github.com/abheesh-03/Flight-Tracker/internal/services"
	"github.com/abheesh-03/Flight-Tracker/internal/tracking"
)

// TrackUpdate is one frame on the tracking stream.
type TrackUpdate struct {
	State           string                `json:"state"`
	Resolved        *dtos.ResolvedState   `json:"resolved"`
	Trail           []dtos.TrailPoint     `json:"trail"`
	AltitudeHistory []dtos.AltitudeSample `json:"altitude_history"`
}

// TrackFlightHandler handles GET /api/v1/flights/track?flight_number= as a
// WebSocket. It resolves the flight, starts a tracking session, and pushes
// a frame for every resolver tick until the client disconnects. The
// session and its scheduler are torn down with the socket.
func TrackFlightHandler(search *services.SearchService, ctrl *tracking.Controller, reg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNumber := r.URL.Query().Get("flight_number")
		if flightNumber == "" {
			http.Error(w, "Missing flight_number parameter", http.StatusBadRequest)
			return
		}

		result, err := search.Search(r.Context(), r.Header.Get("X-Client-Id"), flightNumber)
		if err != nil {
			status := http.StatusBadGateway
			switch {
			case providers.IsNotFound(err):
				status = http.StatusNotFound
			case providers.IsConfigError(err):
				status = http.StatusInternalServerError
			}
			http.Error(w, err.Error(), status)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			logging.Warn("WebSocket accept failed", "error", err.Error())
			return
		}
		defer conn.Close(websocket.StatusInternalError, "tracking ended")

		log := logging.WithFlight(result.Flight.FlightCode)
		log.Infow("Tracking stream opened")

		session, scheduler := ctrl.StartTracking(result.Flight)
		defer ctrl.StopTracking(scheduler)

		// No inbound frames are expected; CloseRead cancels the context
		// when the client goes away.
		ctx := conn.CloseRead(r.Context())

		// The single-shot and no-data modes never tick, so push the
		// current state once before waiting on updates. A nil snapshot
		// still produces a frame: the client must be able to tell
		// "no position data" apart from a dead stream.
		if err := writeFrame(ctx, conn, session, session.Resolved(), reg); err != nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				log.Infow("Tracking stream closed")
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case rs := <-session.Updates():
				if err := writeFrame(ctx, conn, session, rs, reg); err != nil {
					log.Infow("Tracking stream write failed", "error", err.Error())
					return
				}
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, session *tracking.Session, rs *dtos.ResolvedState, reg *metrics.MetricsRegistry) error {
	state := tracking.StateOf(rs)
	if reg != nil {
		reg.ResolverTicksTotal.WithLabelValues(string(state)).Inc()
	}
	return wsjson.Write(ctx, conn, TrackUpdate{
		State:           string(state),
		Resolved:        rs,
		Trail:           session.Trail(),
		AltitudeHistory: session.AltitudeHistory(),
	})
}
