package api

import (
	"net/http"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/history"
)

// RecentSearchesHandler handles GET /api/v1/searches/recent. The caller
// identifies itself with the X-Client-Id header; no header means no list.
func RecentSearchesHandler(searches *history.RecentSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		clientID := r.Header.Get("X-Client-Id")
		if clientID == "" {
			common.RespondError(w, initTime, nil, "Missing X-Client-Id header", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Recent searches", searches.Get(clientID))
	}
}
