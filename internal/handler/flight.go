package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/parse"
	"tripmate/internal/service"
)

// FlightHandler handles HTTP requests for flight bookings.
type FlightHandler struct {
	bookingService *service.BookingService
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(bookingService *service.BookingService) *FlightHandler {
	return &FlightHandler{bookingService: bookingService}
}

// FlightRequest is the HTTP request body for creating or updating a flight.
type FlightRequest struct {
	Airline       string    `json:"airline,omitempty"`
	FlightNumber  string    `json:"flight_number,omitempty"`
	DepartAirport string    `json:"depart_airport,omitempty"`
	ArriveAirport string    `json:"arrive_airport,omitempty"`
	DepartAt      time.Time `json:"depart_at"`
	ArriveAt      time.Time `json:"arrive_at"`
	Cost          float64   `json:"cost,omitempty"`
	PayerIDs      []string  `json:"payer_ids,omitempty"`
	Confirmation  string    `json:"confirmation,omitempty"`
}

// FlightResponse is the HTTP response for flight operations.
type FlightResponse struct {
	ID            string   `json:"id"`
	TripID        string   `json:"trip_id"`
	Airline       string   `json:"airline,omitempty"`
	FlightNumber  string   `json:"flight_number,omitempty"`
	DepartAirport string   `json:"depart_airport,omitempty"`
	ArriveAirport string   `json:"arrive_airport,omitempty"`
	DepartAt      string   `json:"depart_at,omitempty"`
	ArriveAt      string   `json:"arrive_at,omitempty"`
	Cost          float64  `json:"cost"`
	PayerIDs      []string `json:"payer_ids,omitempty"`
	Confirmation  string   `json:"confirmation,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// ParseConfirmationRequest is the HTTP request body for the text parser.
type ParseConfirmationRequest struct {
	Text string `json:"text"`
}

// ParseConfirmationResponse is the draft extracted from confirmation text.
type ParseConfirmationResponse struct {
	Airline       string   `json:"airline,omitempty"`
	FlightNumber  string   `json:"flight_number,omitempty"`
	DepartAirport string   `json:"depart_airport,omitempty"`
	ArriveAirport string   `json:"arrive_airport,omitempty"`
	DepartureTime string   `json:"departure_time,omitempty"`
	ArrivalTime   string   `json:"arrival_time,omitempty"`
	Cost          float64  `json:"cost,omitempty"`
	MatchedFields []string `json:"matched_fields"`
}

func toFlightResponse(f *domain.Flight) FlightResponse {
	resp := FlightResponse{
		ID:            f.ID,
		TripID:        f.TripID,
		Airline:       f.Airline,
		FlightNumber:  f.FlightNumber,
		DepartAirport: f.DepartAirport,
		ArriveAirport: f.ArriveAirport,
		Cost:          f.Cost,
		PayerIDs:      f.PayerIDs,
		Confirmation:  f.Confirmation,
		CreatedAt:     f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !f.DepartAt.IsZero() {
		resp.DepartAt = f.DepartAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if !f.ArriveAt.IsZero() {
		resp.ArriveAt = f.ArriveAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// Create handles POST /v1/trips/:id/flights
func (h *FlightHandler) Create(c *gin.Context) {
	var req FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flight := &domain.Flight{
		TripID:        c.Param("id"),
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		DepartAirport: req.DepartAirport,
		ArriveAirport: req.ArriveAirport,
		DepartAt:      req.DepartAt,
		ArriveAt:      req.ArriveAt,
		Cost:          req.Cost,
		PayerIDs:      req.PayerIDs,
		Confirmation:  req.Confirmation,
	}

	if err := h.bookingService.AddFlight(c.Request.Context(), flight); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toFlightResponse(flight))
}

// List handles GET /v1/trips/:id/flights
func (h *FlightHandler) List(c *gin.Context) {
	flights, err := h.bookingService.ListFlights(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []FlightResponse
	for _, f := range flights {
		response = append(response, toFlightResponse(f))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/trips/:id/flights/:bookingId
func (h *FlightHandler) Update(c *gin.Context) {
	var req FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	flight := &domain.Flight{
		ID:            c.Param("bookingId"),
		TripID:        c.Param("id"),
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		DepartAirport: req.DepartAirport,
		ArriveAirport: req.ArriveAirport,
		DepartAt:      req.DepartAt,
		ArriveAt:      req.ArriveAt,
		Cost:          req.Cost,
		PayerIDs:      req.PayerIDs,
		Confirmation:  req.Confirmation,
	}

	if err := h.bookingService.UpdateFlight(c.Request.Context(), flight); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toFlightResponse(flight))
}

// Delete handles DELETE /v1/trips/:id/flights/:bookingId
func (h *FlightHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteFlight(c.Request.Context(), c.Param("id"), c.Param("bookingId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ParseConfirmation handles POST /v1/trips/:id/flights/parse
func (h *FlightHandler) ParseConfirmation(c *gin.Context) {
	var req ParseConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	draft := parse.Confirmation(req.Text)

	respondJSON(c, http.StatusOK, ParseConfirmationResponse{
		Airline:       draft.Airline,
		FlightNumber:  draft.FlightNumber,
		DepartAirport: draft.FromAirport,
		ArriveAirport: draft.ToAirport,
		DepartureTime: draft.DepartureTime,
		ArrivalTime:   draft.ArrivalTime,
		Cost:          draft.Cost,
		MatchedFields: draft.MatchedFields,
	})
}
