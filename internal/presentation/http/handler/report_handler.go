package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// ReportHandler serves read-only rollups and their downloads
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns totals grouped by payment method, service type and supplier
// @Summary Report summary
// @Tags reports
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	from, err := requiredDate(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := requiredDate(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	summary, err := h.reportService.Summary(c.Request.Context(), actor, shopID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report generated successfully", summary)
}

// Export downloads a report as csv, or every report as an xlsx workbook
// @Summary Export report
// @Tags reports
// @Produce octet-stream
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Param report query string false "payment-methods, service-types, suppliers or closings"
// @Param format query string false "csv or xlsx"
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	from, err := requiredDate(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := requiredDate(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	file, err := h.reportService.Export(c.Request.Context(), actor, shopID, from, to,
		c.DefaultQuery("report", service.ReportClosings), c.DefaultQuery("format", service.FormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
