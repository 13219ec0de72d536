package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// LodgingHandler handles HTTP requests for lodging reservations.
type LodgingHandler struct {
	bookingService *service.BookingService
}

// NewLodgingHandler creates a new LodgingHandler.
func NewLodgingHandler(bookingService *service.BookingService) *LodgingHandler {
	return &LodgingHandler{bookingService: bookingService}
}

// LodgingRequest is the HTTP request body for creating or updating a lodging.
type LodgingRequest struct {
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Cost     float64   `json:"cost,omitempty"`
	PayerIDs []string  `json:"payer_ids,omitempty"`
}

// LodgingResponse is the HTTP response for lodging operations.
type LodgingResponse struct {
	ID        string   `json:"id"`
	TripID    string   `json:"trip_id"`
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	CheckIn   string   `json:"check_in,omitempty"`
	CheckOut  string   `json:"check_out,omitempty"`
	Cost      float64  `json:"cost"`
	PayerIDs  []string `json:"payer_ids,omitempty"`
	CreatedAt string   `json:"created_at"`
}

func toLodgingResponse(l *domain.Lodging) LodgingResponse {
	resp := LodgingResponse{
		ID:        l.ID,
		TripID:    l.TripID,
		Name:      l.Name,
		Address:   l.Address,
		Cost:      l.Cost,
		PayerIDs:  l.PayerIDs,
		CreatedAt: l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !l.CheckIn.IsZero() {
		resp.CheckIn = l.CheckIn.Format("2006-01-02")
	}
	if !l.CheckOut.IsZero() {
		resp.CheckOut = l.CheckOut.Format("2006-01-02")
	}
	return resp
}

// Create handles POST /v1/trips/:id/lodgings
func (h *LodgingHandler) Create(c *gin.Context) {
	var req LodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	lodging := &domain.Lodging{
		TripID:   c.Param("id"),
		Name:     req.Name,
		Address:  req.Address,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Cost:     req.Cost,
		PayerIDs: req.PayerIDs,
	}

	if err := h.bookingService.AddLodging(c.Request.Context(), lodging); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toLodgingResponse(lodging))
}

// List handles GET /v1/trips/:id/lodgings
func (h *LodgingHandler) List(c *gin.Context) {
	lodgings, err := h.bookingService.ListLodgings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []LodgingResponse
	for _, l := range lodgings {
		response = append(response, toLodgingResponse(l))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/trips/:id/lodgings/:bookingId
func (h *LodgingHandler) Update(c *gin.Context) {
	var req LodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	lodging := &domain.Lodging{
		ID:       c.Param("bookingId"),
		TripID:   c.Param("id"),
		Name:     req.Name,
		Address:  req.Address,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Cost:     req.Cost,
		PayerIDs: req.PayerIDs,
	}

	if err := h.bookingService.UpdateLodging(c.Request.Context(), lodging); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toLodgingResponse(lodging))
}

// Delete handles DELETE /v1/trips/:id/lodgings/:bookingId
func (h *LodgingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteLodging(c.Request.Context(), c.Param("id"), c.Param("bookingId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
