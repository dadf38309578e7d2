package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AlertHandler handles HTTP requests for alerts and tickets
type AlertHandler struct {
	alertService service.AlertServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService service.AlertServiceInterface) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// CreateAlert handles POST /alerts
// @Summary Create alert
// @Description Create an alert or ticket. Tickets without a title get one derived from asset and location, and are sent to the matching chat channels.
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body service.CreateAlertRequest true "Alert data"
// @Success 201 {object} service.AlertResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req service.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert, err := h.alertService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// GetAlert handles GET /alerts/:id
// @Summary Get alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} service.AlertResponse
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id} [get]
func (h *AlertHandler) GetAlert(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	alert, err := h.alertService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ListAlerts handles GET /alerts
// @Summary List alerts
// @Description Open and in-progress alerts plus those closed recently
// @Tags alerts
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} service.AlertResponse
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.alertService.List(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// TakeCharge handles POST /alerts/:id/take-charge
// @Summary Take charge of a ticket
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param body body service.TakeChargeRequest true "Operator taking charge"
// @Success 200 {object} service.AlertResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Router /alerts/{id}/take-charge [post]
func (h *AlertHandler) TakeCharge(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.TakeChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert, err := h.alertService.TakeCharge(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// CloseAlert handles POST /alerts/:id/close
// @Summary Close alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param body body service.CloseAlertRequest false "Closing notes"
// @Success 200 {object} service.AlertResponse
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 409 {object} ErrorResponse "Alert already closed"
// @Router /alerts/{id}/close [post]
func (h *AlertHandler) CloseAlert(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CloseAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	alert, err := h.alertService.Close(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// DeleteAlert handles DELETE /alerts/:id
// @Summary Delete alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.alertService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "alert deleted"})
}
