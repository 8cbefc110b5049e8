package http

import (
	"personal-timeline/internal/identity"
	pkgErrors "personal-timeline/pkg/errors"
)

// mapError translates identity errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case identity.ErrInvalidCode:
		return pkgErrors.NewHTTPError(400, "invalid authorization code")
	case identity.ErrInvalidToken:
		return pkgErrors.NewHTTPError(401, "invalid or expired token")
	case identity.ErrProviderUnavailable:
		return pkgErrors.NewHTTPError(502, "identity provider unavailable")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
