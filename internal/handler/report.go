package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// ReportHandler handles HTTP requests for trip cost reports.
type ReportHandler struct {
	costReportService *service.CostReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(costReportService *service.CostReportService) *ReportHandler {
	return &ReportHandler{costReportService: costReportService}
}

// CategoryReportResponse is one category's balanced breakdown.
type CategoryReportResponse struct {
	Total     float64            `json:"total"`
	PerMember map[string]float64 `json:"per_member"`
}

// CostReportResponse is the HTTP response for the cost report.
type CostReportResponse struct {
	TripID     string                            `json:"trip_id"`
	Categories map[string]CategoryReportResponse `json:"categories"`
	Overall    map[string]float64                `json:"overall"`
	Total      float64                           `json:"total"`
}

// Get handles GET /v1/trips/:id/report?refresh=1
func (h *ReportHandler) Get(c *gin.Context) {
	refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"

	report, err := h.costReportService.BuildReport(c.Request.Context(), c.Param("id"), refresh)
	if err != nil {
		respondError(c, err)
		return
	}

	response := CostReportResponse{
		TripID:     report.TripID,
		Categories: make(map[string]CategoryReportResponse, len(report.Categories)),
		Overall:    report.Overall,
		Total:      report.Total,
	}
	for _, category := range domain.Categories {
		cr := report.Categories[category]
		response.Categories[string(category)] = CategoryReportResponse{
			Total:     cr.Total,
			PerMember: cr.PerMember,
		}
	}

	respondJSON(c, http.StatusOK, response)
}
