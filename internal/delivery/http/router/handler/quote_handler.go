package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// QuoteHandler serves the public motivational quote endpoint.
type QuoteHandler struct {
	uc usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// RandomQuote handles GET /api/quote?category=.
func (h *QuoteHandler) RandomQuote(c echo.Context) error {
	phrase, err := h.uc.RandomQuote(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, phrase, "")
}
