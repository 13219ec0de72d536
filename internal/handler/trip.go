package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// TripHandler handles HTTP requests for trips and their rosters.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest is the HTTP request body for creating a trip.
type CreateTripRequest struct {
	Name          string    `json:"name"`
	Destination   string    `json:"destination,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CreatorName   string    `json:"creator_name"`
	CreatorUserID string    `json:"creator_user_id,omitempty"`
}

// UpdateTripRequest is the HTTP request body for updating a trip.
type UpdateTripRequest struct {
	Name            string    `json:"name"`
	Destination     string    `json:"destination,omitempty"`
	Status          string    `json:"status,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	FallbackOnEmpty bool      `json:"fallback_on_empty,omitempty"`
}

// AddMemberRequest is the HTTP request body for adding a roster member.
type AddMemberRequest struct {
	DisplayName string `json:"display_name"`
	UserID      string `json:"user_id,omitempty"`
	Kind        string `json:"kind,omitempty"` // ACCOUNT, INVITEE, GUEST
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Destination     string          `json:"destination,omitempty"`
	Status          string          `json:"status"`
	StartDate       string          `json:"start_date,omitempty"`
	EndDate         string          `json:"end_date,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	FallbackOnEmpty bool            `json:"fallback_on_empty"`
	CreatedAt       string          `json:"created_at"`
	Creator         *MemberResponse `json:"creator,omitempty"`
}

// MemberResponse is the HTTP response for roster members.
type MemberResponse struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	UserID      string `json:"user_id,omitempty"`
	DisplayName string `json:"display_name"`
	Kind        string `json:"kind"`
	JoinedAt    string `json:"joined_at"`
}

func toTripResponse(trip *domain.Trip) TripResponse {
	resp := TripResponse{
		ID:              trip.ID,
		Name:            trip.Name,
		Destination:     trip.Destination,
		Status:          string(trip.Status),
		CreatedBy:       trip.CreatedBy,
		FallbackOnEmpty: trip.FallbackOnEmpty,
		CreatedAt:       trip.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !trip.StartDate.IsZero() {
		resp.StartDate = trip.StartDate.Format("2006-01-02")
	}
	if !trip.EndDate.IsZero() {
		resp.EndDate = trip.EndDate.Format("2006-01-02")
	}
	return resp
}

func toMemberResponse(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:          member.ID,
		TripID:      member.TripID,
		UserID:      member.UserID,
		DisplayName: member.DisplayName,
		Kind:        string(member.Kind),
		JoinedAt:    member.JoinedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.tripService.CreateTrip(c.Request.Context(), service.CreateTripRequest{
		Name:          req.Name,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatorName:   req.CreatorName,
		CreatorUserID: req.CreatorUserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := toTripResponse(result.Trip)
	creator := toMemberResponse(result.Creator)
	response.Creator = &creator

	respondJSON(c, http.StatusCreated, response)
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.tripService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var response []TripResponse
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTrip handles PUT /v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), service.UpdateTripRequest{
		TripID:          c.Param("id"),
		Name:            req.Name,
		Destination:     req.Destination,
		Status:          domain.TripStatus(req.Status),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		FallbackOnEmpty: req.FallbackOnEmpty,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// ListMembers handles GET /v1/trips/:id/members
func (h *TripHandler) ListMembers(c *gin.Context) {
	members, err := h.tripService.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []MemberResponse
	for _, member := range members {
		response = append(response, toMemberResponse(member))
	}

	c.JSON(http.StatusOK, response)
}

// AddMember handles POST /v1/trips/:id/members
func (h *TripHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	member, err := h.tripService.AddMember(c.Request.Context(), service.AddMemberRequest{
		TripID:      c.Param("id"),
		DisplayName: req.DisplayName,
		UserID:      req.UserID,
		Kind:        domain.MemberKind(req.Kind),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toMemberResponse(member))
}

// RemoveMember handles DELETE /v1/trips/:id/members/:memberId
func (h *TripHandler) RemoveMember(c *gin.Context) {
	err := h.tripService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("memberId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
