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
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

const imageCacheTTL = 6 * time.Hour

// AircraftImageProvider fetches a photo URL for an airframe registration
// from AeroDataBox. A missing photo is normalized to an empty URL, not an
// error.
type AircraftImageProvider struct {
	BaseURL string
	Host    string
	APIKey  string
	Client  *http.Client

	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

// NewAircraftImageProvider creates a new instance, reading config from environment variables
func NewAircraftImageProvider(cache common.CacheInterface, reg *metrics.MetricsRegistry) *AircraftImageProvider {
	host := os.Getenv("AERODATABOX_HOST")
	baseURL := ""
	if host != "" {
		baseURL = "https://" + host
	}
	return &AircraftImageProvider{
		BaseURL: baseURL,
		Host:    host,
		APIKey:  os.Getenv("AERODATABOX_KEY"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		metrics: reg,
	}
}

// GetImageURL returns a photo URL for the registration, or "" when no photo
// exists.
func (svc *AircraftImageProvider) GetImageURL(ctx context.Context, registration string) (string, error) {
	reg := strings.ToUpper(strings.TrimSpace(registration))
	if reg == "" {
		return "", NewProviderError(constants.ErrCodeInputError, nil)
	}
	if svc.APIKey == "" || svc.BaseURL == "" {
		return "", NewProviderError(constants.ErrCodeConfigError, nil)
	}

	cacheKey := string(constants.CachePrefixAircraftImage) + reg
	if svc.cache != nil {
		if cached, found := svc.cache.Get(cacheKey); found {
			if url, ok := cached.(string); ok {
				countCache(svc.metrics, constants.CachePrefixAircraftImage, true)
				return url, nil
			}
		}
		countCache(svc.metrics, constants.CachePrefixAircraftImage, false)
	}

	endpoint := fmt.Sprintf("%s/aircrafts/reg/%s/image/beta", svc.BaseURL, reg)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	req.Header.Set("x-rapidapi-key", svc.APIKey)
	req.Header.Set("x-rapidapi-host", svc.Host)

	start := time.Now()
	resp, err := svc.Client.Do(req)
	observeProviderDuration(svc.metrics, "aircraft_image", start)
	if err != nil {
		svc.countOutcome("network_error")
		return "", NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		svc.countOutcome("not_found")
		if svc.cache != nil {
			svc.cache.Set(cacheKey, "", imageCacheTTL)
		}
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		svc.countOutcome("http_error")
		return "", NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var raw dtos.AeroDataBoxImage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		svc.countOutcome("decode_error")
		return "", NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	if svc.cache != nil {
		svc.cache.Set(cacheKey, raw.URL, imageCacheTTL)
	}
	svc.countOutcome("ok")
	return raw.URL, nil
}

func (svc *AircraftImageProvider) countOutcome(outcome string) {
	if svc.metrics != nil {
		svc.metrics.ProviderRequestsTotal.WithLabelValues("aircraft_image", outcome).Inc()
	}
}
