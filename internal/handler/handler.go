package handler

import (
	"errors"
	"net/http"

	"procurement/internal/apperr"
)

// TransitionDTO is the body of every status transition endpoint.
type TransitionDTO struct {
	Status string `json:"status" binding:"required"`
}

// httpStatus maps the business error taxonomy onto HTTP codes. Everything in
// the taxonomy is a user-correctable rejection; only unexpected errors
// surface as 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrInvalidTransition),
		errors.Is(err, apperr.ErrPrecursorNotApproved),
		errors.Is(err, apperr.ErrUnknownOrder),
		errors.Is(err, apperr.ErrAmountExceedsBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
