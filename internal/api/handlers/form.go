package handlers

import (
	"net/http"
	"strconv"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FormHandler handles dynamic form templates, fields and submissions
type FormHandler struct {
	formService service.FormServiceInterface
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService service.FormServiceInterface) *FormHandler {
	return &FormHandler{formService: formService}
}

// CreateTemplate handles POST /forms/templates
// @Summary Create form template
// @Description The intervention date and operator fields are added automatically
// @Tags forms
// @Accept json
// @Produce json
// @Param template body service.CreateFormTemplateRequest true "Template"
// @Success 201 {object} models.FormTemplate
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Template already exists"
// @Router /forms/templates [post]
func (h *FormHandler) CreateTemplate(c *gin.Context) {
	var req service.CreateFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tmpl, err := h.formService.CreateTemplate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

// ListTemplates handles GET /forms/templates
// @Summary List form templates
// @Tags forms
// @Produce json
// @Param active query bool false "Only active templates" default(true)
// @Success 200 {array} models.FormTemplate
// @Router /forms/templates [get]
func (h *FormHandler) ListTemplates(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
		return
	}
	templates, err := h.formService.ListTemplates(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplate handles GET /forms/templates/:id
// @Summary Get form template with its fields
// @Tags forms
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.FormTemplate
// @Failure 404 {object} ErrorResponse "Template not found"
// @Router /forms/templates/{id} [get]
func (h *FormHandler) GetTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	tmpl, err := h.formService.GetTemplate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// UpdateTemplate handles PUT /forms/templates/:id
// @Summary Update form template
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body service.UpdateFormTemplateRequest true "Fields to update"
// @Success 200 {object} models.FormTemplate
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 409 {object} ErrorResponse "Template name taken"
// @Router /forms/templates/{id} [put]
func (h *FormHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tmpl, err := h.formService.UpdateTemplate(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// DeleteTemplate handles DELETE /forms/templates/:id
// @Summary Delete form template
// @Tags forms
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Template not found"
// @Router /forms/templates/{id} [delete]
func (h *FormHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.formService.DeleteTemplate(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "form template deleted"})
}

// AddField handles POST /forms/templates/:id/fields
// @Summary Add a field to a template
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param field body service.FormFieldRequest true "Field"
// @Success 201 {object} models.FormField
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 409 {object} ErrorResponse "Field key already used"
// @Router /forms/templates/{id}/fields [post]
func (h *FormHandler) AddField(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.FormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	field, err := h.formService.AddField(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// UpdateField handles PUT /forms/fields/:id
// @Summary Update a template field
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param field body service.FormFieldRequest true "Field"
// @Success 200 {object} models.FormField
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Router /forms/fields/{id} [put]
func (h *FormHandler) UpdateField(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.FormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	field, err := h.formService.UpdateField(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// DeleteField handles DELETE /forms/fields/:id
// @Summary Delete a template field
// @Description Standard fields cannot be deleted
// @Tags forms
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Standard field"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Router /forms/fields/{id} [delete]
func (h *FormHandler) DeleteField(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.formService.DeleteField(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "form field deleted"})
}

// Submit handles POST /forms/submissions
// @Summary Submit a filled form
// @Description Non-conforming answers raise one non-conformity alert which is sent to the matching chat channels
// @Tags forms
// @Accept json
// @Produce json
// @Param submission body service.SubmitFormRequest true "Submission"
// @Success 201 {object} service.SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid request or missing required fields"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Router /forms/submissions [post]
func (h *FormHandler) Submit(c *gin.Context) {
	var req service.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.formService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSubmissions handles GET /forms/submissions
// @Summary List submissions
// @Tags forms
// @Produce json
// @Param template_id query string false "Filter by template"
// @Param location_number query string false "Filter by location"
// @Param asset_id query string false "Filter by asset"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SubmissionListResponse
// @Router /forms/submissions [get]
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	var query service.SubmissionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := pagination(c)
	resp, err := h.formService.ListSubmissions(&query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
