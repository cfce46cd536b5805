package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// RedirectHandler serves the public redirect endpoints. These are the
// hottest paths in the service; everything that can be deferred is.
type RedirectHandler struct {
	uc usecase.RedirectUsecase
}

// NewRedirectHandler is the constructor for RedirectHandler, injected by Fx.
func NewRedirectHandler(uc usecase.RedirectUsecase) *RedirectHandler {
	return &RedirectHandler{uc: uc}
}

// ResolveLink handles GET /r/:linkId.
func (h *RedirectHandler) ResolveLink(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("linkId"))
	if err != nil {
		return response.NotFound(c, "LINK_NOT_FOUND", "link or selector not found")
	}

	destination, err := h.uc.ResolveLink(c.Request().Context(), linkID, requestMeta(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, destination)
}

// ResolveKeychain handles GET /k/:keychainIdentifier.
func (h *RedirectHandler) ResolveKeychain(c echo.Context) error {
	identifier := c.Param("keychainIdentifier")
	if identifier == "" {
		return response.NotFound(c, "KEYCHAIN_NOT_FOUND", "keychain not found")
	}

	destination, err := h.uc.ResolveKeychain(c.Request().Context(), identifier, requestMeta(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, destination)
}

// requestMeta captures what click recording needs from the request.
// c.RealIP resolves X-Forwarded-For, so counters key on the visitor rather
// than the reverse proxy.
func requestMeta(c echo.Context) usecase.RequestMeta {
	return usecase.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Referrer:  c.Request().Referer(),
	}
}
