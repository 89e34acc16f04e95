package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/db/repositories"
)

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(gdb *gorm.DB, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]ServiceStatus)

		dbStatus := "ok"
		dbDetails := "SQLite connected"
		if gdb == nil {
			dbStatus = "down"
			dbDetails = "not initialized"
		} else if sqlDB, err := gdb.DB(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		} else {
			repo := repositories.NewAirportRepository(gdb)
			if n, err := repo.Count(r.Context()); err == nil {
				dbDetails = fmt.Sprintf("SQLite connected, %d airports stored", n)
			}
		}
		services["sqlite"] = ServiceStatus{Status: dbStatus, Details: dbDetails}

		cacheStatus := "ok"
		cacheDetails := "Cache responding"
		probeKey := "HEALTH_probe"
		cache.Set(probeKey, "ok", 10*time.Second)
		if _, found := cache.Get(probeKey); !found {
			cacheStatus = "down"
			cacheDetails = "Cache write/read probe failed"
		}
		cache.Delete(probeKey)
		services["cache"] = ServiceStatus{Status: cacheStatus, Details: cacheDetails}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := HealthCheckResponse{
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
