package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/repository"
	"tripmate/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidTripName),
		errors.Is(err, service.ErrInvalidMemberID),
		errors.Is(err, service.ErrInvalidDisplayName),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidInviteCode),
		errors.Is(err, service.ErrInvalidEntryID),
		errors.Is(err, service.ErrInvalidDay),
		errors.Is(err, service.ErrEntryHasNoLocation):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrMemberNotOnTrip),
		errors.Is(err, service.ErrBookingNotOnTrip),
		errors.Is(err, service.ErrInviteAlreadyRedeemed),
		errors.Is(err, service.ErrInviteExpired),
		errors.Is(err, service.ErrInviteBusy):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
