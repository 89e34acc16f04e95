package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/db/repositories"
	"github.com/abheesh-03/Flight-Tracker/internal/logging"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
	gormModels "github.com/abheesh-03/Flight-Tracker/internal/models/gorm"
)

const airportCacheTTL = 24 * time.Hour

// AirportProvider resolves an IATA airport code to coordinates and a
// timezone, used to backfill schedule legs that arrive without them.
// Lookup order: process cache, local sqlite store, AeroDataBox. Upstream
// hits are written back to the local store so the provider is only
// consulted once per airport.
type AirportProvider struct {
	BaseURL string
	Host    string
	APIKey  string
	Client  *http.Client

	cache   common.CacheInterface
	repo    *repositories.AirportRepository
	metrics *metrics.MetricsRegistry
}

// NewAirportProvider creates a new instance, reading config from environment variables
func NewAirportProvider(cache common.CacheInterface, repo *repositories.AirportRepository, reg *metrics.MetricsRegistry) *AirportProvider {
	host := os.Getenv("AERODATABOX_HOST")
	baseURL := ""
	if host != "" {
		baseURL = "https://" + host
	}
	return &AirportProvider{
		BaseURL: baseURL,
		Host:    host,
		APIKey:  os.Getenv("AERODATABOX_KEY"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		repo:    repo,
		metrics: reg,
	}
}

// GetAirport returns airport details or (nil, nil) when the airport cannot
// be resolved; absence never fails a search.
func (svc *AirportProvider) GetAirport(ctx context.Context, iata string) (*dtos.AirportDetail, error) {
	code := strings.ToUpper(strings.TrimSpace(iata))
	if code == "" {
		return nil, nil
	}

	cacheKey := string(constants.CachePrefixAirport) + code
	if svc.cache != nil {
		if cached, found := svc.cache.Get(cacheKey); found {
			if detail, ok := cached.(*dtos.AirportDetail); ok {
				countCache(svc.metrics, constants.CachePrefixAirport, true)
				return detail, nil
			}
		}
		countCache(svc.metrics, constants.CachePrefixAirport, false)
	}

	if svc.repo != nil {
		stored, err := svc.repo.FindByIATA(ctx, code)
		if err != nil {
			logging.Warn("Airport store lookup failed", "iata", code, "error", err.Error())
		} else if stored != nil {
			detail := &dtos.AirportDetail{
				IATA:      stored.IATA,
				Name:      stored.Name,
				Latitude:  stored.Latitude,
				Longitude: stored.Longitude,
				Timezone:  stored.Timezone,
			}
			svc.cacheDetail(cacheKey, detail)
			return detail, nil
		}
	}

	detail, err := svc.fetchUpstream(ctx, code)
	if err != nil || detail == nil {
		return detail, err
	}

	svc.cacheDetail(cacheKey, detail)
	if svc.repo != nil {
		record := &gormModels.Airport{
			IATA:      detail.IATA,
			Name:      detail.Name,
			Latitude:  detail.Latitude,
			Longitude: detail.Longitude,
			Timezone:  detail.Timezone,
		}
		if err := svc.repo.Upsert(ctx, record); err != nil {
			logging.Warn("Airport store write-back failed", "iata", code, "error", err.Error())
		}
	}

	return detail, nil
}

func (svc *AirportProvider) fetchUpstream(ctx context.Context, code string) (*dtos.AirportDetail, error) {
	if svc.APIKey == "" || svc.BaseURL == "" {
		return nil, NewProviderError(constants.ErrCodeConfigError, nil)
	}

	endpoint := fmt.Sprintf("%s/airports/iata/%s", svc.BaseURL, code)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	req.Header.Set("x-rapidapi-key", svc.APIKey)
	req.Header.Set("x-rapidapi-host", svc.Host)

	start := time.Now()
	resp, err := svc.Client.Do(req)
	observeProviderDuration(svc.metrics, "airport", start)
	if err != nil {
		svc.countOutcome("network_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		svc.countOutcome("not_found")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		svc.countOutcome("http_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var raw dtos.AeroDataBoxAirport
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		svc.countOutcome("decode_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	if raw.Location == nil {
		svc.countOutcome("not_found")
		return nil, nil
	}

	svc.countOutcome("ok")
	name := raw.FullName
	if name == "" {
		name = raw.ShortName
	}
	return &dtos.AirportDetail{
		IATA:      code,
		Name:      name,
		Latitude:  raw.Location.Lat,
		Longitude: raw.Location.Lon,
		Timezone:  raw.TimeZone,
	}, nil
}

func (svc *AirportProvider) cacheDetail(key string, detail *dtos.AirportDetail) {
	if svc.cache != nil {
		svc.cache.Set(key, detail, airportCacheTTL)
	}
}

func (svc *AirportProvider) countOutcome(outcome string) {
	if svc.metrics != nil {
		svc.metrics.ProviderRequestsTotal.WithLabelValues("airport", outcome).Inc()
	}
}
