package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for locations
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// CreateLocation handles POST /locations
// @Summary Create location
// @Description Register a numbered site
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} models.Location
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Location already exists"
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /locations/:number
// @Summary Get location
// @Tags locations
// @Produce json
// @Param number path string true "Location number"
// @Success 200 {object} models.Location
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /locations/{number} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.locationService.GetByNumber(c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// ListLocations handles GET /locations
// @Summary List locations
// @Description List locations, optionally only those holding assets of a type
// @Tags locations
// @Produce json
// @Param asset_type query string false "Only locations with assets of this type"
// @Success 200 {array} models.Location
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.List(c.Query("asset_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// UpdateLocation handles PUT /locations/:number
// @Summary Update location
// @Tags locations
// @Accept json
// @Produce json
// @Param number path string true "Location number"
// @Param location body service.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} models.Location
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /locations/{number} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Update(c.Param("number"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:number
// @Summary Delete location
// @Description Delete a location together with the assets placed there
// @Tags locations
// @Produce json
// @Param number path string true "Location number"
// @Success 200 {object} service.DeleteLocationResponse
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /locations/{number} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	resp, err := h.locationService.Delete(c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
