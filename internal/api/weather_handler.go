package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
)

// WeatherHandler handles GET /api/v1/weather?lat=&lon=
func WeatherHandler(weather *providers.WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			common.RespondError(w, initTime, nil, "Missing or invalid lat/lon parameters", http.StatusBadRequest)
			return
		}

		snapshot, err := weather.GetCurrent(r.Context(), lat, lon)
		if err != nil {
			common.RespondError(w, initTime, err, "Weather lookup failed", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Current conditions", snapshot)
	}
}
