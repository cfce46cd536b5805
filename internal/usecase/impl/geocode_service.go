package impl

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.Geocoder
}

// GeocodeServiceParams holds dependencies for geocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	return &geocodeService{geocoder: params.Geocoder}
}

// Geocode proxies the query to the external provider.
func (srv *geocodeService) Geocode(ctx context.Context, query string) (*usecase.GeocodeOutput, error) {
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("query must not be empty")
	}

	point, err := srv.geocoder.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, service.ErrNoGeocodeResult) {
			return nil, domainerrors.ErrGeocodeNotFound
		}

		return nil, err
	}

	return &usecase.GeocodeOutput{
		Lat: point.Lat(),
		Lng: point.Lon(),
	}, nil
}
