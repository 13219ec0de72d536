package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// ItineraryHandler handles HTTP requests for itinerary entries.
type ItineraryHandler struct {
	itineraryService *service.ItineraryService
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(itineraryService *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// ItineraryEntryRequest is the HTTP request body for creating or updating an entry.
type ItineraryEntryRequest struct {
	Day      int       `json:"day"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes,omitempty"`
	Lat      float64   `json:"lat,omitempty"`
	Lng      float64   `json:"lng,omitempty"`
	StartsAt time.Time `json:"starts_at"`
}

// ItineraryEntryResponse is the HTTP response for itinerary operations.
type ItineraryEntryResponse struct {
	ID        string  `json:"id"`
	TripID    string  `json:"trip_id"`
	Day       int     `json:"day"`
	Title     string  `json:"title"`
	Notes     string  `json:"notes,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	StartsAt  string  `json:"starts_at,omitempty"`
	MapLink   string  `json:"map_link,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// NearbyStopResponse is one itinerary stop near another.
type NearbyStopResponse struct {
	EntryID string  `json:"entry_id"`
	Title   string  `json:"title"`
	Day     int     `json:"day"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	MapLink string  `json:"map_link,omitempty"`
}

func toItineraryEntryResponse(e *domain.ItineraryEntry) ItineraryEntryResponse {
	resp := ItineraryEntryResponse{
		ID:        e.ID,
		TripID:    e.TripID,
		Day:       e.Day,
		Title:     e.Title,
		Notes:     e.Notes,
		Lat:       e.Lat,
		Lng:       e.Lng,
		MapLink:   e.MapLink(),
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !e.StartsAt.IsZero() {
		resp.StartsAt = e.StartsAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// Create handles POST /v1/trips/:id/itinerary
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req ItineraryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	entry := &domain.ItineraryEntry{
		TripID:   c.Param("id"),
		Day:      req.Day,
		Title:    req.Title,
		Notes:    req.Notes,
		Lat:      req.Lat,
		Lng:      req.Lng,
		StartsAt: req.StartsAt,
	}

	if err := h.itineraryService.AddEntry(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toItineraryEntryResponse(entry))
}

// List handles GET /v1/trips/:id/itinerary
func (h *ItineraryHandler) List(c *gin.Context) {
	entries, err := h.itineraryService.ListEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var response []ItineraryEntryResponse
	for _, e := range entries {
		response = append(response, toItineraryEntryResponse(e))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/trips/:id/itinerary/:entryId
func (h *ItineraryHandler) Update(c *gin.Context) {
	var req ItineraryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	entry := &domain.ItineraryEntry{
		ID:       c.Param("entryId"),
		TripID:   c.Param("id"),
		Day:      req.Day,
		Title:    req.Title,
		Notes:    req.Notes,
		Lat:      req.Lat,
		Lng:      req.Lng,
		StartsAt: req.StartsAt,
	}

	if err := h.itineraryService.UpdateEntry(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toItineraryEntryResponse(entry))
}

// Delete handles DELETE /v1/trips/:id/itinerary/:entryId
func (h *ItineraryHandler) Delete(c *gin.Context) {
	if err := h.itineraryService.DeleteEntry(c.Request.Context(), c.Param("id"), c.Param("entryId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Nearby handles GET /v1/trips/:id/itinerary/:entryId/nearby?radius_km=2
func (h *ItineraryHandler) Nearby(c *gin.Context) {
	radiusKm, _ := strconv.ParseFloat(c.Query("radius_km"), 64)

	stops, err := h.itineraryService.NearbyStops(c.Request.Context(), c.Param("id"), c.Param("entryId"), radiusKm)
	if err != nil {
		respondError(c, err)
		return
	}

	var response []NearbyStopResponse
	for _, s := range stops {
		response = append(response, NearbyStopResponse{
			EntryID: s.Entry.ID,
			Title:   s.Entry.Title,
			Day:     s.Entry.Day,
			Lat:     s.Lat,
			Lng:     s.Lng,
			MapLink: s.Entry.MapLink(),
		})
	}

	c.JSON(http.StatusOK, response)
}
