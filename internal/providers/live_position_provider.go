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

// LivePositionProvider fetches live state vectors from the OpenSky network.
// Unavailability (aircraft on the ground, out of coverage) is a frequent,
// non-exceptional outcome and is reported as an Unavailable tagged error.
type LivePositionProvider struct {
	BaseURL string
	Client  *http.Client

	metrics *metrics.MetricsRegistry
}

// NewLivePositionProvider creates a new instance, reading config from environment variables
func NewLivePositionProvider(reg *metrics.MetricsRegistry) *LivePositionProvider {
	baseURL := os.Getenv("OPENSKY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://opensky-network.org/api"
	}
	return &LivePositionProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		metrics: reg,
	}
}

// GetPosition returns the current state vector for a transponder hex.
func (svc *LivePositionProvider) GetPosition(ctx context.Context, icao24 string) (*dtos.PositionSample, error) {
	hex := common.NormalizeICAO24(icao24)
	if hex == "" {
		return nil, NewProviderError(constants.ErrCodeInputError, nil)
	}

	q := url.Values{}
	q.Set("icao24", hex)

	req, err := http.NewRequestWithContext(ctx, "GET", svc.BaseURL+"/states/all?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	start := time.Now()
	resp, err := svc.Client.Do(req)
	observeProviderDuration(svc.metrics, "live_position", start)
	if err != nil {
		svc.countOutcome("network_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		svc.countOutcome("http_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var raw dtos.OpenSkyStatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		svc.countOutcome("decode_error")
		return nil, NewProviderError(constants.ErrCodeUpstreamError, err)
	}

	if len(raw.States) == 0 {
		svc.countOutcome("unavailable")
		return nil, NewProviderError(constants.ErrCodeUnavailable, nil)
	}

	sample := normalizeState(&raw.States[0])
	if sample == nil {
		// A vector without coordinates is as good as no vector.
		svc.countOutcome("unavailable")
		return nil, NewProviderError(constants.ErrCodeUnavailable, nil)
	}

	svc.countOutcome("ok")
	return sample, nil
}

// normalizeState maps a decoded state vector onto a PositionSample,
// preferring geometric altitude over barometric just like the upstream docs
// recommend for display.
func normalizeState(state *dtos.OpenSkyState) *dtos.PositionSample {
	if state.Latitude == nil || state.Longitude == nil {
		return nil
	}

	sample := &dtos.PositionSample{
		Latitude:  *state.Latitude,
		Longitude: *state.Longitude,
		OnGround:  state.OnGround,
	}

	if state.GeoAltitude != nil {
		sample.AltitudeM = *state.GeoAltitude
	} else if state.BaroAltitude != nil {
		sample.AltitudeM = *state.BaroAltitude
	}
	if state.Velocity != nil {
		sample.GroundSpeed = *state.Velocity
	}
	if state.TrueTrack != nil {
		sample.Heading = *state.TrueTrack
	}
	if state.LastContact > 0 {
		ts := time.Unix(state.LastContact, 0).UTC()
		sample.Timestamp = &ts
	}

	return sample
}

func (svc *LivePositionProvider) countOutcome(outcome string) {
	if svc.metrics != nil {
		svc.metrics.ProviderRequestsTotal.WithLabelValues("live_position", outcome).Inc()
	}
}
