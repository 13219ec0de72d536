package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// InviteHandler handles HTTP requests for trip invites.
type InviteHandler struct {
	inviteService *service.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteService *service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// CreateInviteRequest is the HTTP request body for issuing an invite.
type CreateInviteRequest struct {
	CreatedBy string `json:"created_by,omitempty"`
}

// RedeemInviteRequest is the HTTP request body for redeeming an invite.
type RedeemInviteRequest struct {
	DisplayName string `json:"display_name"`
	UserID      string `json:"user_id,omitempty"`
}

// InviteResponse is the HTTP response for invite operations.
type InviteResponse struct {
	Code       string `json:"code"`
	TripID     string `json:"trip_id"`
	CreatedBy  string `json:"created_by,omitempty"`
	ExpiresAt  string `json:"expires_at"`
	RedeemedBy string `json:"redeemed_by,omitempty"`
	RedeemedAt string `json:"redeemed_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func toInviteResponse(invite *domain.Invite) InviteResponse {
	resp := InviteResponse{
		Code:       invite.Code,
		TripID:     invite.TripID,
		CreatedBy:  invite.CreatedBy,
		ExpiresAt:  invite.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		RedeemedBy: invite.RedeemedBy,
		CreatedAt:  invite.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !invite.RedeemedAt.IsZero() {
		resp.RedeemedAt = invite.RedeemedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// Create handles POST /v1/trips/:id/invites
func (h *InviteHandler) Create(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	invite, err := h.inviteService.CreateInvite(c.Request.Context(), c.Param("id"), req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toInviteResponse(invite))
}

// Get handles GET /v1/invites/:code
func (h *InviteHandler) Get(c *gin.Context) {
	invite, err := h.inviteService.LookupInvite(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toInviteResponse(invite))
}

// Redeem handles POST /v1/invites/:code/redeem
func (h *InviteHandler) Redeem(c *gin.Context) {
	var req RedeemInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	member, err := h.inviteService.RedeemInvite(c.Request.Context(), service.RedeemInviteRequest{
		Code:        c.Param("code"),
		DisplayName: req.DisplayName,
		UserID:      req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toMemberResponse(member))
}
