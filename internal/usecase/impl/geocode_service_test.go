package impl

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	mockSvc "github.com/lreale4125-ux/taplinknfc/internal/mocks/service"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

func newGeocodeService(t *testing.T) (usecase.GeocodeUsecase, *mockSvc.MockGeocoder) {
	geocoder := mockSvc.NewMockGeocoder(t)
	return NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder}), geocoder
}

func TestGeocodeService_Geocode(t *testing.T) {
	svc, geocoder := newGeocodeService(t)
	ctx := context.Background()

	geocoder.EXPECT().
		Geocode(ctx, "Rome, Italy").
		Return(orb.Point{12.4964, 41.9028}, nil)

	output, err := svc.Geocode(ctx, "Rome, Italy")
	require.NoError(t, err)
	assert.InDelta(t, 41.9028, output.Lat, 0.0001)
	assert.InDelta(t, 12.4964, output.Lng, 0.0001)
}

func TestGeocodeService_Geocode_EmptyQuery(t *testing.T) {
	svc, _ := newGeocodeService(t)

	output, err := svc.Geocode(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGeocodeService_Geocode_NoResult(t *testing.T) {
	svc, geocoder := newGeocodeService(t)
	ctx := context.Background()

	geocoder.EXPECT().
		Geocode(ctx, "Nowhere At All").
		Return(orb.Point{}, service.ErrNoGeocodeResult)

	output, err := svc.Geocode(ctx, "Nowhere At All")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeNotFound)
}
