package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/common"
	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
	"github.com/abheesh-03/Flight-Tracker/internal/models/dtos"
)

const weatherCacheTTL = 10 * time.Minute

// WeatherProvider fetches current conditions from OpenWeatherMap. Every
// failure is non-fatal to the session; callers omit weather on error.
type WeatherProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

// NewWeatherProvider creates a new instance, reading config from environment variables
func NewWeatherProvider(cache common.CacheInterface, reg *metrics.MetricsRegistry) *WeatherProvider {
	baseURL := os.Getenv("OPENWEATHER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	return &WeatherProvider{
		BaseURL: baseURL,
		APIKey:  os.Getenv("OPENWEATHER_KEY"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		metrics: reg,
	}
}

// GetCurrent returns current conditions at a coordinate.
func (svc *WeatherProvider) GetCurrent(ctx context.Context, lat, lon float64) (*dtos.WeatherSnapshot, error) {
	if svc.APIKey == "" {
		return nil, NewProviderError(constants.ErrCodeConfigError, nil)
	}

	cacheKey := fmt.Sprintf("%s%.2f_%.2f", constants.CachePrefixWeather, lat, lon)
	if svc.cache != nil {
		if cached, found := svc.cache.Get(cacheKey); found {
			if wx, ok := cached.(*dtos.WeatherSnapshot); ok {
				countCache(svc.metrics, constants.CachePrefixWeather, true)
				return wx, nil
			}
		}
		countCache(svc.metrics, constants.CachePrefixWeather, false)
	}

	q := url.Values{}
	q.Set("appid", svc.APIKey)
	q.Set("units", "metric")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	req, err := http.NewRequestWithContext(ctx, "GET", svc.BaseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	start := time.Now()
	resp, err := svc.Client.Do(req)
	observeProviderDuration(svc.metrics, "weather", start)
	if err != nil {
		svc.countOutcome("network_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		svc.countOutcome("http_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var raw dtos.OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		svc.countOutcome("decode_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	wx := &dtos.WeatherSnapshot{
		TempC:       raw.Main.Temp,
		FeelsLikeC:  raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeedMS: raw.Wind.Speed,
		WindDeg:     raw.Wind.Deg,
		VisibilityM: raw.Visibility,
		Station:     raw.Name,
	}
	if len(raw.Weather) > 0 {
		wx.Description = raw.Weather[0].Description
		wx.Icon = raw.Weather[0].Icon
	}

	if svc.cache != nil {
		svc.cache.Set(cacheKey, wx, weatherCacheTTL)
	}
	svc.countOutcome("ok")
	return wx, nil
}

func (svc *WeatherProvider) countOutcome(outcome string) {
	if svc.metrics != nil {
		svc.metrics.ProviderRequestsTotal.WithLabelValues("weather", outcome).Inc()
	}
}
