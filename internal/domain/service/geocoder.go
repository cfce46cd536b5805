package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// ErrNoGeocodeResult is returned when the provider has no match for the
// query.
var ErrNoGeocodeResult = errors.New("no geocoding result")

// Geocoder turns a free-text place query into coordinates. Backed by an
// external provider; only the narrow lookup is exposed.
type Geocoder interface {
	// Geocode returns the best-match point for the query, or
	// ErrNoGeocodeResult.
	Geocode(ctx context.Context, query string) (orb.Point, error)
}
