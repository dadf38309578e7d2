package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for assets and asset types
type AssetHandler struct {
	assetService     service.AssetServiceInterface
	assetTypeService service.AssetTypeServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface, assetTypeService service.AssetTypeServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService:     assetService,
		assetTypeService: assetTypeService,
	}
}

// CreateAsset handles POST /assets
// @Summary Create asset
// @Description Register an asset at a location. The asset type must exist and be active.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} models.Asset
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Location or asset type not found"
// @Failure 409 {object} ErrorResponse "Asset already exists"
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// GetAsset handles GET /assets/:company_id
// @Summary Get asset
// @Tags assets
// @Produce json
// @Param company_id path string true "Company-assigned asset id"
// @Success 200 {object} models.Asset
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Router /assets/{company_id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetByCompanyID(c.Param("company_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// ListAssets handles GET /assets
// @Summary List assets
// @Tags assets
// @Produce json
// @Param location_number query string false "Filter by location"
// @Param type query string false "Filter by asset type"
// @Success 200 {array} models.Asset
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.List(c.Query("location_number"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// UpdateAsset handles PUT /assets/:company_id
// @Summary Update asset
// @Tags assets
// @Accept json
// @Produce json
// @Param company_id path string true "Company-assigned asset id"
// @Param asset body service.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} models.Asset
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Router /assets/{company_id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Update(c.Param("company_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// DeleteAsset handles DELETE /assets/:company_id
// @Summary Delete asset
// @Tags assets
// @Produce json
// @Param company_id path string true "Company-assigned asset id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Router /assets/{company_id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	if err := h.assetService.Delete(c.Param("company_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "asset deleted"})
}

// DeleteOrphans handles DELETE /assets/orphans
// @Summary Delete orphan assets
// @Description Remove assets whose location no longer exists
// @Tags assets
// @Produce json
// @Success 200 {object} CountResponse
// @Router /assets/orphans [delete]
func (h *AssetHandler) DeleteOrphans(c *gin.Context) {
	count, err := h.assetService.DeleteOrphans()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// CreateAssetType handles POST /asset-types
// @Summary Create asset type
// @Description Create an asset type with its field template. A deactivated type with the same name is reactivated.
// @Tags asset-types
// @Accept json
// @Produce json
// @Param asset_type body service.CreateAssetTypeRequest true "Asset type data"
// @Success 201 {object} service.AssetTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Asset type already exists"
// @Router /asset-types [post]
func (h *AssetHandler) CreateAssetType(c *gin.Context) {
	var req service.CreateAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assetType, err := h.assetTypeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assetType)
}

// GetAssetType handles GET /asset-types/:id
// @Summary Get asset type
// @Tags asset-types
// @Produce json
// @Param id path string true "Asset type ID"
// @Success 200 {object} service.AssetTypeResponse
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Router /asset-types/{id} [get]
func (h *AssetHandler) GetAssetType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	assetType, err := h.assetTypeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assetType)
}

// ListAssetTypes handles GET /asset-types
// @Summary List active asset types
// @Tags asset-types
// @Produce json
// @Success 200 {array} service.AssetTypeResponse
// @Router /asset-types [get]
func (h *AssetHandler) ListAssetTypes(c *gin.Context) {
	types, err := h.assetTypeService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// UpdateAssetType handles PUT /asset-types/:id
// @Summary Update asset type
// @Description Replace the field template. Fields dropped from the template are removed from every asset of the type.
// @Tags asset-types
// @Accept json
// @Produce json
// @Param id path string true "Asset type ID"
// @Param asset_type body service.UpdateAssetTypeRequest true "Fields to update"
// @Success 200 {object} service.AssetTypeUpdateResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Router /asset-types/{id} [put]
func (h *AssetHandler) UpdateAssetType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.assetTypeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAssetType handles DELETE /asset-types/:id
// @Summary Deactivate asset type
// @Tags asset-types
// @Produce json
// @Param id path string true "Asset type ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Failure 409 {object} ErrorResponse "Asset type in use"
// @Router /asset-types/{id} [delete]
func (h *AssetHandler) DeleteAssetType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.assetTypeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "asset type deactivated"})
}
