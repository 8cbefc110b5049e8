package http

import (
	"errors"

	"personal-timeline/internal/timeline"
	pkgErrors "personal-timeline/pkg/errors"
)

// mapError translates timeline errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "timeline session not found")
	case errors.Is(err, timeline.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found in timeline")
	case errors.Is(err, timeline.ErrUnknownView):
		return pkgErrors.NewHTTPError(400, "unknown timeline view")
	case errors.Is(err, timeline.ErrTimelineUnavailable):
		return pkgErrors.NewHTTPError(502, "timeline could not be loaded")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
