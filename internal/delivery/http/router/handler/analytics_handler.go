package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/middleware"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

const dateLayout = "2006-01-02"

// AnalyticsHandler serves the company-scoped analytics dashboard.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// CompanyLinks handles GET /api/user/links.
func (h *AnalyticsHandler) CompanyLinks(c echo.Context) error {
	companyID, err := requireCompany(c)
	if err != nil {
		return errors.WithStack(err)
	}

	summaries, err := h.uc.CompanyLinks(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "")
}

// LinkStats handles GET /api/user/analytics/:linkId.
func (h *AnalyticsHandler) LinkStats(c echo.Context) error {
	companyID, linkID, err := requireCompanyAndLink(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LinkStats(c.Request().Context(), companyID, linkID, statsRange(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Heatmap handles GET /api/user/heatmap/:linkId.
func (h *AnalyticsHandler) Heatmap(c echo.Context) error {
	companyID, linkID, err := requireCompanyAndLink(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cells, err := h.uc.Heatmap(c.Request().Context(), companyID, linkID, statsRange(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cells, "")
}

// GeoStats handles GET /api/user/geostats/:linkId.
func (h *AnalyticsHandler) GeoStats(c echo.Context) error {
	companyID, linkID, err := requireCompanyAndLink(c)
	if err != nil {
		return errors.WithStack(err)
	}

	points, err := h.uc.GeoStats(c.Request().Context(), companyID, linkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// requireCompany resolves the caller's company from the token.
func requireCompany(c echo.Context) (uuid.UUID, error) {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims.CompanyID == nil {
		return uuid.Nil, domainerrors.ErrNoCompany
	}

	return *claims.CompanyID, nil
}

func requireCompanyAndLink(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	companyID, err := requireCompany(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	linkID, err := uuid.Parse(c.Param("linkId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrLinkNotFound
	}

	return companyID, linkID, nil
}

// statsRange parses the optional window query parameters. Unparseable
// dates fall back to the default window rather than failing the request.
func statsRange(c echo.Context) usecase.StatsRange {
	window := usecase.StatsRange{
		GroupBy: repository.ParseTimeBucket(c.QueryParam("groupBy")),
	}

	if start, err := time.Parse(dateLayout, c.QueryParam("startDate")); err == nil {
		window.Start = start
	}
	if end, err := time.Parse(dateLayout, c.QueryParam("endDate")); err == nil {
		window.End = end
	}

	return window
}
