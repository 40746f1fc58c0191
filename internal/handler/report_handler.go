package handler

import (
	"github.com/gin-gonic/gin"

	"nuamx/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	report, err := h.reportService.Summary(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
