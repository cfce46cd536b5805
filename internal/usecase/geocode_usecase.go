package usecase

import "context"

// GeocodeOutput mirrors the provider's geometry object.
type GeocodeOutput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeUsecase proxies place queries to the external geocoding
// provider for authenticated frontend use.
type GeocodeUsecase interface {
	Geocode(ctx context.Context, query string) (*GeocodeOutput, error)
}
