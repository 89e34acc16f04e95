package api

import (
	"net/http"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
)

// AircraftImageHandler handles GET /api/v1/aircraft/image?registration=
//
// A registration without a photo is a success with a null URL, matching
// how clients distinguish "no photo" from "lookup broke".
func AircraftImageHandler(images *providers.AircraftImageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		registration := r.URL.Query().Get("registration")
		if registration == "" {
			common.RespondError(w, initTime, nil, "Missing registration parameter", http.StatusBadRequest)
			return
		}

		url, err := images.GetImageURL(r.Context(), registration)
		if err != nil {
			common.RespondError(w, initTime, err, "Aircraft image lookup failed", http.StatusInternalServerError)
			return
		}

		var data any
		if url != "" {
			data = map[string]string{"url": url}
		}
		common.RespondSuccess(w, initTime, "Aircraft image", data)
	}
}
