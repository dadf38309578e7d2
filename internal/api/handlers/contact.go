package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for the address book
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateCategory handles POST /contacts/categories
// @Summary Create contact category
// @Tags contacts
// @Accept json
// @Produce json
// @Param category body service.CreateContactCategoryRequest true "Category data"
// @Success 201 {object} models.ContactCategory
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Router /contacts/categories [post]
func (h *ContactHandler) CreateCategory(c *gin.Context) {
	var req service.CreateContactCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.contactService.CreateCategory(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /contacts/categories
// @Summary List contact categories
// @Tags contacts
// @Produce json
// @Success 200 {array} models.ContactCategory
// @Router /contacts/categories [get]
func (h *ContactHandler) ListCategories(c *gin.Context) {
	categories, err := h.contactService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateContact handles POST /contacts
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.ContactRequest true "Contact data"
// @Success 201 {object} models.Contact
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact, err := h.contactService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// GetContact handles GET /contacts/:id
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	contact, err := h.contactService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// ListContacts handles GET /contacts
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param category_id query string false "Filter by category"
// @Param q query string false "Search name, company or role"
// @Success 200 {array} models.Contact
// @Failure 400 {object} ErrorResponse "Invalid category_id"
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		categoryID = &id
	}
	contacts, err := h.contactService.List(categoryID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /contacts/:id
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body service.ContactRequest true "Contact data"
// @Success 200 {object} models.Contact
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Contact or category not found"
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact, err := h.contactService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/:id
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.contactService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "contact deleted"})
}
