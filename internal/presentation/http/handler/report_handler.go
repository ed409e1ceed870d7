package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailySummary handles the per-day sales rollup
func (h *ReportHandler) DailySummary(c *gin.Context) {
	rows, err := h.reportService.DailySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", rows)
}

// WeeklySummary handles the per-ISO-week sales rollup
func (h *ReportHandler) WeeklySummary(c *gin.Context) {
	rows, err := h.reportService.WeeklySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Weekly sales retrieved successfully", rows)
}

// MonthlySummary handles the per-month sales rollup
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	rows, err := h.reportService.MonthlySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly sales retrieved successfully", rows)
}

// TopItems handles the most-sold item ranking
func (h *ReportHandler) TopItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, err := h.reportService.TopItems(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top items retrieved successfully", rows)
}
