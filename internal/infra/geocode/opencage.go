// Package geocode proxies free-text place lookups to OpenCage.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
)

const (
	defaultEndpoint = "https://api.opencagedata.com/geocode/v1/json"
	requestTimeout  = 10 * time.Second
)

type openCageGeocoder struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewOpenCageGeocoder is the constructor for the OpenCage-backed geocoder.
func NewOpenCageGeocoder(cfg *config.Config) service.Geocoder {
	apiKey := ""
	endpoint := defaultEndpoint
	if cfg.Geocoding != nil {
		apiKey = cfg.Geocoding.APIKey
		if cfg.Geocoding.Endpoint != "" {
			endpoint = cfg.Geocoding.Endpoint
		}
	}

	return &openCageGeocoder{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the provider's best match for the query.
func (g *openCageGeocoder) Geocode(ctx context.Context, query string) (orb.Point, error) {
	if g.apiKey == "" {
		return orb.Point{}, errors.New("geocoding api key not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", g.apiKey)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to build geocode request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geocode request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geocode provider returned status %d", resp.StatusCode)
	}

	var payload openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to decode geocode response")
	}

	if len(payload.Results) == 0 {
		return orb.Point{}, fmt.Errorf("%q: %w", query, service.ErrNoGeocodeResult)
	}

	best := payload.Results[0].Geometry

	return orb.Point{best.Lng, best.Lat}, nil
}
