package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/internal/domain"
)

// fail maps a domain error to its HTTP status and renders the same-screen
// message shape the client displays directly.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrSeatUnavailable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoSuchAccount),
		errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSelectionFull):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
