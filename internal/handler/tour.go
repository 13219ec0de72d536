package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// TourHandler handles HTTP requests for tours and activities.
type TourHandler struct {
	bookingService *service.BookingService
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(bookingService *service.BookingService) *TourHandler {
	return &TourHandler{bookingService: bookingService}
}

// TourRequest is the HTTP request body for creating or updating a tour.
type TourRequest struct {
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Cost        float64   `json:"cost,omitempty"`
	PayerIDs    []string  `json:"payer_ids,omitempty"`
}

// TourResponse is the HTTP response for tour operations.
type TourResponse struct {
	ID          string   `json:"id"`
	TripID      string   `json:"trip_id"`
	Name        string   `json:"name"`
	Location    string   `json:"location,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
	Cost        float64  `json:"cost"`
	PayerIDs    []string `json:"payer_ids,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

func toTourResponse(t *domain.Tour) TourResponse {
	resp := TourResponse{
		ID:        t.ID,
		TripID:    t.TripID,
		Name:      t.Name,
		Location:  t.Location,
		Cost:      t.Cost,
		PayerIDs:  t.PayerIDs,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !t.ScheduledAt.IsZero() {
		resp.ScheduledAt = t.ScheduledAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// Create handles POST /v1/trips/:id/tours
func (h *TourHandler) Create(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tour := &domain.Tour{
		TripID:      c.Param("id"),
		Name:        req.Name,
		Location:    req.Location,
		ScheduledAt: req.ScheduledAt,
		Cost:        req.Cost,
		PayerIDs:    req.PayerIDs,
	}

	if err := h.bookingService.AddTour(c.Request.Context(), tour); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTourResponse(tour))
}

// List handles GET /v1/trips/:id/tours
func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.bookingService.ListTours(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []TourResponse
	for _, t := range tours {
		response = append(response, toTourResponse(t))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/trips/:id/tours/:bookingId
func (h *TourHandler) Update(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tour := &domain.Tour{
		ID:          c.Param("bookingId"),
		TripID:      c.Param("id"),
		Name:        req.Name,
		Location:    req.Location,
		ScheduledAt: req.ScheduledAt,
		Cost:        req.Cost,
		PayerIDs:    req.PayerIDs,
	}

	if err := h.bookingService.UpdateTour(c.Request.Context(), tour); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTourResponse(tour))
}

// Delete handles DELETE /v1/trips/:id/tours/:bookingId
func (h *TourHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteTour(c.Request.Context(), c.Param("id"), c.Param("bookingId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
