package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// GeocodeHandler proxies place lookups for authenticated frontend use.
type GeocodeHandler struct {
	uc usecase.GeocodeUsecase
}

// NewGeocodeHandler is the constructor for GeocodeHandler, injected by Fx.
func NewGeocodeHandler(uc usecase.GeocodeUsecase) *GeocodeHandler {
	return &GeocodeHandler{uc: uc}
}

// Geocode handles GET /api/geocode?q=.
func (h *GeocodeHandler) Geocode(c echo.Context) error {
	output, err := h.uc.Geocode(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
