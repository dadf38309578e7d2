package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultUpcomingDays = 30

// MaintenanceHandler handles the checklist catalog, scheduled occurrences and the alert scan
type MaintenanceHandler struct {
	catalogService  service.CatalogServiceInterface
	scheduleService service.ScheduleServiceInterface
	scanService     service.AlertScanServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(
	catalogService service.CatalogServiceInterface,
	scheduleService service.ScheduleServiceInterface,
	scanService service.AlertScanServiceInterface,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		catalogService:  catalogService,
		scheduleService: scheduleService,
		scanService:     scanService,
	}
}

// ListMaintenanceTypes handles GET /maintenance/types
// @Summary List legacy maintenance types
// @Tags maintenance
// @Produce json
// @Param asset_type query string false "Filter by asset type"
// @Success 200 {array} models.MaintenanceType
// @Router /maintenance/types [get]
func (h *MaintenanceHandler) ListMaintenanceTypes(c *gin.Context) {
	types, err := h.catalogService.ListMaintenanceTypes(c.Query("asset_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateMaintenanceType handles POST /maintenance/types
// @Summary Create legacy maintenance type
// @Tags maintenance
// @Accept json
// @Produce json
// @Param type body service.CreateMaintenanceTypeRequest true "Maintenance type"
// @Success 201 {object} models.MaintenanceType
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Maintenance type already exists"
// @Router /maintenance/types [post]
func (h *MaintenanceHandler) CreateMaintenanceType(c *gin.Context) {
	var req service.CreateMaintenanceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mt, err := h.catalogService.CreateMaintenanceType(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mt)
}

// DeleteMaintenanceType handles DELETE /maintenance/types/:id
// @Summary Delete legacy maintenance type
// @Tags maintenance
// @Produce json
// @Param id path string true "Maintenance type ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Maintenance type not found"
// @Failure 409 {object} ErrorResponse "Referenced by scheduled occurrences"
// @Router /maintenance/types/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenanceType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteMaintenanceType(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "maintenance type deleted"})
}

// ListChecklistItems handles GET /maintenance/checklist-items
// @Summary List checklist items of an asset type
// @Tags maintenance
// @Produce json
// @Param asset_type query string true "Asset type"
// @Success 200 {array} models.ChecklistItem
// @Failure 400 {object} ErrorResponse "asset_type is required"
// @Router /maintenance/checklist-items [get]
func (h *MaintenanceHandler) ListChecklistItems(c *gin.Context) {
	assetType := c.Query("asset_type")
	if assetType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset_type is required"})
		return
	}
	items, err := h.catalogService.ListChecklistItems(assetType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateChecklistItem handles POST /maintenance/checklist-items
// @Summary Create checklist item
// @Tags maintenance
// @Accept json
// @Produce json
// @Param item body service.CreateChecklistItemRequest true "Checklist item"
// @Success 201 {object} models.ChecklistItem
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Router /maintenance/checklist-items [post]
func (h *MaintenanceHandler) CreateChecklistItem(c *gin.Context) {
	var req service.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.catalogService.CreateChecklistItem(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateChecklistItem handles PUT /maintenance/checklist-items/:id
// @Summary Update checklist item
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Checklist item ID"
// @Param item body service.UpdateChecklistItemRequest true "Fields to update"
// @Success 200 {object} models.ChecklistItem
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Checklist item not found"
// @Router /maintenance/checklist-items/{id} [put]
func (h *MaintenanceHandler) UpdateChecklistItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.catalogService.UpdateChecklistItem(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteChecklistItem handles DELETE /maintenance/checklist-items/:id
// @Summary Deactivate checklist item
// @Tags maintenance
// @Produce json
// @Param id path string true "Checklist item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Checklist item not found"
// @Router /maintenance/checklist-items/{id} [delete]
func (h *MaintenanceHandler) DeleteChecklistItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteChecklistItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "checklist item deactivated"})
}

// ScheduleOccurrence handles POST /maintenance/occurrences
// @Summary Schedule a maintenance occurrence
// @Description Create a scheduled occurrence of a checklist item (or a legacy maintenance type) for an asset
// @Tags maintenance
// @Accept json
// @Produce json
// @Param occurrence body service.ScheduleRequest true "Occurrence"
// @Success 201 {object} service.OccurrenceResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Checklist item or maintenance type not found"
// @Router /maintenance/occurrences [post]
func (h *MaintenanceHandler) ScheduleOccurrence(c *gin.Context) {
	var req service.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	occ, err := h.scheduleService.Schedule(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, occ)
}

// ListOccurrences handles GET /maintenance/occurrences
// @Summary List occurrences
// @Tags maintenance
// @Produce json
// @Param location_number query string false "Filter by location"
// @Param asset_id query string false "Filter by asset"
// @Param state query string false "scheduled or completed"
// @Param from query string false "Due date from (YYYY-MM-DD)"
// @Param to query string false "Due date to (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OccurrenceListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /maintenance/occurrences [get]
func (h *MaintenanceHandler) ListOccurrences(c *gin.Context) {
	var query service.OccurrenceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := pagination(c)
	resp, err := h.scheduleService.ListOccurrences(&query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListGroups handles GET /maintenance/occurrences/groups
// @Summary List scheduled occurrences grouped by location, asset and due date
// @Tags maintenance
// @Produce json
// @Param location_number query string false "Filter by location"
// @Param asset_id query string false "Filter by asset"
// @Param to query string false "Due date up to (YYYY-MM-DD)"
// @Success 200 {array} schedule.Group
// @Router /maintenance/occurrences/groups [get]
func (h *MaintenanceHandler) ListGroups(c *gin.Context) {
	var query service.OccurrenceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	groups, err := h.scheduleService.ListGroups(&query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetOccurrence handles GET /maintenance/occurrences/:id
// @Summary Get occurrence
// @Tags maintenance
// @Produce json
// @Param id path string true "Occurrence ID"
// @Success 200 {object} service.OccurrenceResponse
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Router /maintenance/occurrences/{id} [get]
func (h *MaintenanceHandler) GetOccurrence(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	occ, err := h.scheduleService.GetOccurrence(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

// OccurrenceForm handles GET /maintenance/occurrences/:id/form
// @Summary Completion form of an occurrence
// @Description The occurrence with the active checklist of its asset type
// @Tags maintenance
// @Produce json
// @Param id path string true "Occurrence ID"
// @Success 200 {object} service.OccurrenceFormResponse
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Router /maintenance/occurrences/{id}/form [get]
func (h *MaintenanceHandler) OccurrenceForm(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	form, err := h.scheduleService.OccurrenceForm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// CompleteOccurrence handles POST /maintenance/occurrences/:id/complete
// @Summary Complete an occurrence
// @Description Mark the occurrence completed, record history and schedule its successor from its own recurrence.
// @Description Non-empty notes raise a non-conformity alert.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID"
// @Param completion body service.CompleteRequest true "Completion"
// @Success 200 {object} service.CompletionResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 409 {object} ErrorResponse "Occurrence already completed"
// @Router /maintenance/occurrences/{id}/complete [post]
func (h *MaintenanceHandler) CompleteOccurrence(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.scheduleService.Complete(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteOccurrence handles DELETE /maintenance/occurrences/:id
// @Summary Delete occurrence
// @Tags maintenance
// @Produce json
// @Param id path string true "Occurrence ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Router /maintenance/occurrences/{id} [delete]
func (h *MaintenanceHandler) DeleteOccurrence(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.scheduleService.DeleteOccurrence(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "occurrence deleted"})
}

// GroupForm handles GET /maintenance/groups/form
// @Summary Completion form of a group
// @Tags maintenance
// @Produce json
// @Param location_number query string true "Location"
// @Param asset_id query string true "Asset"
// @Param due_date query string true "Due date (YYYY-MM-DD)"
// @Success 200 {object} service.GroupFormResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /maintenance/groups/form [get]
func (h *MaintenanceHandler) GroupForm(c *gin.Context) {
	location, asset, due := c.Query("location_number"), c.Query("asset_id"), c.Query("due_date")
	if location == "" || asset == "" || due == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_number, asset_id and due_date are required"})
		return
	}
	form, err := h.scheduleService.GroupForm(location, asset, due)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// CompleteGroup handles POST /maintenance/groups/complete
// @Summary Complete a group of occurrences
// @Description Each member is completed independently and rescheduled with its own recurrence
// @Tags maintenance
// @Accept json
// @Produce json
// @Param completion body service.CompleteGroupRequest true "Group completion"
// @Success 200 {object} service.GroupCompletionResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Occurrence already completed"
// @Router /maintenance/groups/complete [post]
func (h *MaintenanceHandler) CompleteGroup(c *gin.Context) {
	var req service.CompleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.scheduleService.CompleteGroup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upcoming handles GET /maintenance/upcoming
// @Summary Upcoming occurrences
// @Tags maintenance
// @Produce json
// @Param days query int false "Horizon in days" default(30)
// @Success 200 {object} service.UpcomingResponse
// @Failure 400 {object} ErrorResponse "Invalid days"
// @Router /maintenance/upcoming [get]
func (h *MaintenanceHandler) Upcoming(c *gin.Context) {
	days, ok := intQuery(c, "days", defaultUpcomingDays)
	if !ok {
		return
	}
	resp, err := h.scheduleService.Upcoming(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History handles GET /maintenance/history
// @Summary Execution history
// @Tags maintenance
// @Produce json
// @Param location_number query string false "Filter by location"
// @Param asset_id query string false "Filter by asset"
// @Param from query string false "Executed from (YYYY-MM-DD)"
// @Param to query string false "Executed to (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.HistoryListResponse
// @Router /maintenance/history [get]
func (h *MaintenanceHandler) History(c *gin.Context) {
	var query service.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := pagination(c)
	resp, err := h.scheduleService.History(&query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ScanAlerts handles POST /maintenance/alerts/scan
// @Summary Run the schedule-due alert scan
// @Description Classify scheduled occurrences against today and raise de-duplicated alerts, fanning each out
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.ScanResult
// @Failure 500 {object} ErrorResponse "Scan failed"
// @Router /maintenance/alerts/scan [post]
func (h *MaintenanceHandler) ScanAlerts(c *gin.Context) {
	result, err := h.scanService.Scan(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
