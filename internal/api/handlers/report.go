package handlers

import (
	"net/http"

	"gestman-backend/internal/logger"
	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles section exports and retention
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// BulkDeleteRequest lists the records to remove
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// Export handles GET /reports/:section/export
// @Summary Export a section as a workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param section path string true "alerts, occurrences, history, inventory or submissions"
// @Param format query string false "Export format" default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unknown section or unsupported format"
// @Router /reports/{section}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	result, err := h.reportService.Export(c.Param("section"), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer result.File.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := result.File.Write(c.Writer); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("section", c.Param("section")).
			Error("Failed to write workbook")
	}
}

// BulkDelete handles POST /reports/:section/bulk-delete
// @Summary Delete records of a section by id
// @Tags reports
// @Accept json
// @Produce json
// @Param section path string true "alerts, occurrences or submissions"
// @Param ids body BulkDeleteRequest true "Record ids"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse "Invalid request or unknown section"
// @Router /reports/{section}/bulk-delete [post]
func (h *ReportHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, err := h.reportService.BulkDelete(c.Param("section"), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Cleanup handles POST /reports/:section/cleanup
// @Summary Remove old records of a section
// @Description alerts: closed only; occurrences: completed only; submissions: all
// @Tags reports
// @Produce json
// @Param section path string true "alerts, occurrences or submissions"
// @Param days query int false "Age in days (default from configuration)"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse "Unknown section"
// @Router /reports/{section}/cleanup [post]
func (h *ReportHandler) Cleanup(c *gin.Context) {
	days, ok := intQuery(c, "days", 0)
	if !ok {
		return
	}
	count, err := h.reportService.Cleanup(c.Param("section"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}
