package routes

import (
	"github.com/abheesh-03/Flight-Tracker/internal/api"
	"github.com/abheesh-03/Flight-Tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {
		// Every route here fans out to metered upstream APIs; the limiter
		// protects their quotas from a single hot client.
		v1.Use(middleware.RateLimitMiddleware)

		v1.Get("/flights/search", api.SearchFlightHandler(svcs.Search))
		v1.Get("/flights/location", api.FlightLocationHandler(svcs.Live))
		v1.Get("/flights/track", api.TrackFlightHandler(svcs.Search, svcs.Tracking, deps.Metrics))

		v1.Get("/weather", api.WeatherHandler(svcs.Weather))
		v1.Get("/aircraft/image", api.AircraftImageHandler(svcs.Images))

		v1.Get("/searches/recent", api.RecentSearchesHandler(svcs.Searches))
	})
}
