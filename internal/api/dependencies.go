package api

import (
	"os"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/db"
	"github.com/abheesh-03/Flight-Tracker/internal/db/repositories"
	"github.com/abheesh-03/Flight-Tracker/internal/history"
	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/providers"
	"github.com/abheesh-03/Flight-Tracker/internal/services"
	"github.com/abheesh-03/Flight-Tracker/internal/tracking"
)

type Repositories struct {
	Airports *repositories.AirportRepository
}

type Services struct {
	Cache    common.CacheInterface
	Schedule *providers.ScheduleProvider
	Live     *providers.LivePositionProvider
	Airports *providers.AirportProvider
	Weather  *providers.WeatherProvider
	Images   *providers.AircraftImageProvider
	Search   *services.SearchService
	Searches *history.RecentSearchService
	Tracking *tracking.Controller
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(reg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Airports: repositories.NewAirportRepository(db.DB),
	}

	cacheSvc := newCacheBackend()

	scheduleSvc := providers.NewScheduleProvider(cacheSvc, reg)
	liveSvc := providers.NewLivePositionProvider(reg)
	airportSvc := providers.NewAirportProvider(cacheSvc, repos.Airports, reg)
	weatherSvc := providers.NewWeatherProvider(cacheSvc, reg)
	imageSvc := providers.NewAircraftImageProvider(cacheSvc, reg)

	searchesSvc := history.NewRecentSearchService(cacheSvc)

	svcs := &Services{
		Cache:    cacheSvc,
		Schedule: scheduleSvc,
		Live:     liveSvc,
		Airports: airportSvc,
		Weather:  weatherSvc,
		Images:   imageSvc,
		Search:   services.NewSearchService(scheduleSvc, airportSvc, weatherSvc, imageSvc, searchesSvc, reg),
		Searches: searchesSvc,
		Tracking: tracking.NewController(liveSvc, reg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  reg,
	}, nil
}

// newCacheBackend picks the cache implementation from CACHE_BACKEND:
// "redis" connects to Redis, anything else uses the in-process store.
func newCacheBackend() common.CacheInterface {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		if redisSvc, err := common.NewRedisCacheService(); err == nil {
			logging.Info("Using Redis cache backend")
			return redisSvc
		} else {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
		}
	}
	return common.NewCacheService(10*time.Minute, 10*time.Minute)
}
