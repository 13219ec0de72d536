package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// RentalHandler handles HTTP requests for rental car bookings.
type RentalHandler struct {
	bookingService *service.BookingService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(bookingService *service.BookingService) *RentalHandler {
	return &RentalHandler{bookingService: bookingService}
}

// RentalRequest is the HTTP request body for creating or updating a rental.
type RentalRequest struct {
	Company   string    `json:"company"`
	CarType   string    `json:"car_type,omitempty"`
	PickupAt  time.Time `json:"pickup_at"`
	DropoffAt time.Time `json:"dropoff_at"`
	Cost      float64   `json:"cost,omitempty"`
	PayerIDs  []string  `json:"payer_ids,omitempty"`
}

// RentalResponse is the HTTP response for rental operations.
type RentalResponse struct {
	ID        string   `json:"id"`
	TripID    string   `json:"trip_id"`
	Company   string   `json:"company"`
	CarType   string   `json:"car_type,omitempty"`
	PickupAt  string   `json:"pickup_at,omitempty"`
	DropoffAt string   `json:"dropoff_at,omitempty"`
	Cost      float64  `json:"cost"`
	PayerIDs  []string `json:"payer_ids,omitempty"`
	CreatedAt string   `json:"created_at"`
}

func toRentalResponse(r *domain.Rental) RentalResponse {
	resp := RentalResponse{
		ID:        r.ID,
		TripID:    r.TripID,
		Company:   r.Company,
		CarType:   r.CarType,
		Cost:      r.Cost,
		PayerIDs:  r.PayerIDs,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !r.PickupAt.IsZero() {
		resp.PickupAt = r.PickupAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if !r.DropoffAt.IsZero() {
		resp.DropoffAt = r.DropoffAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// Create handles POST /v1/trips/:id/rentals
func (h *RentalHandler) Create(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental := &domain.Rental{
		TripID:    c.Param("id"),
		Company:   req.Company,
		CarType:   req.CarType,
		PickupAt:  req.PickupAt,
		DropoffAt: req.DropoffAt,
		Cost:      req.Cost,
		PayerIDs:  req.PayerIDs,
	}

	if err := h.bookingService.AddRental(c.Request.Context(), rental); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRentalResponse(rental))
}

// List handles GET /v1/trips/:id/rentals
func (h *RentalHandler) List(c *gin.Context) {
	rentals, err := h.bookingService.ListRentals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []RentalResponse
	for _, r := range rentals {
		response = append(response, toRentalResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/trips/:id/rentals/:bookingId
func (h *RentalHandler) Update(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental := &domain.Rental{
		ID:        c.Param("bookingId"),
		TripID:    c.Param("id"),
		Company:   req.Company,
		CarType:   req.CarType,
		PickupAt:  req.PickupAt,
		DropoffAt: req.DropoffAt,
		Cost:      req.Cost,
		PayerIDs:  req.PayerIDs,
	}

	if err := h.bookingService.UpdateRental(c.Request.Context(), rental); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// Delete handles DELETE /v1/trips/:id/rentals/:bookingId
func (h *RentalHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteRental(c.Request.Context(), c.Param("id"), c.Param("bookingId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
