package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for spare-part stock
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ValidatePartCodesRequest lists part codes referenced in free text
type ValidatePartCodesRequest struct {
	Codes []string `json:"codes" binding:"required"`
}

// CreateItem handles POST /inventory
// @Summary Create inventory item
// @Description A positive initial quantity is recorded as an initial load movement
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body service.CreateInventoryItemRequest true "Inventory item"
// @Success 201 {object} service.InventoryItemResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Part code already exists for the asset type"
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req service.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.inventoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItem handles GET /inventory/:id
// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory item ID"
// @Success 200 {object} service.InventoryItemResponse
// @Failure 404 {object} ErrorResponse "Inventory item not found"
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.inventoryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /inventory
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param asset_type query string false "Filter by asset type"
// @Param below_threshold query bool false "Only items below their minimum quantity"
// @Param q query string false "Search part code, manufacturer or model"
// @Success 200 {array} service.InventoryItemResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var query service.InventoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.inventoryService.List(&query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateItem handles PUT /inventory/:id
// @Summary Update inventory item
// @Description Updates descriptive fields; quantities change only through movements
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory item ID"
// @Param item body service.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} service.InventoryItemResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Inventory item not found"
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.inventoryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ChangeQuantity handles POST /inventory/:id/quantity
// @Summary Load, unload or correct stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory item ID"
// @Param change body service.QuantityChangeRequest true "Quantity change"
// @Success 200 {object} service.QuantityChangeResponse
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient stock"
// @Failure 404 {object} ErrorResponse "Inventory item not found"
// @Router /inventory/{id}/quantity [post]
func (h *InventoryHandler) ChangeQuantity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.QuantityChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.inventoryService.ChangeQuantity(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMovements handles GET /inventory/:id/movements
// @Summary Stock movements of an item
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory item ID"
// @Success 200 {array} models.StockMovement
// @Failure 404 {object} ErrorResponse "Inventory item not found"
// @Router /inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	movements, err := h.inventoryService.ListMovements(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// DeleteItem handles DELETE /inventory/:id
// @Summary Delete inventory item and its movements
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Inventory item not found"
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "inventory item deleted"})
}

// Statistics handles GET /inventory/statistics
// @Summary Inventory statistics
// @Tags inventory
// @Produce json
// @Success 200 {object} service.InventoryStatistics
// @Router /inventory/statistics [get]
func (h *InventoryHandler) Statistics(c *gin.Context) {
	stats, err := h.inventoryService.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPartCodes handles GET /inventory/part-codes
// @Summary Known part codes
// @Tags inventory
// @Produce json
// @Success 200 {array} string
// @Router /inventory/part-codes [get]
func (h *InventoryHandler) ListPartCodes(c *gin.Context) {
	codes, err := h.inventoryService.ListPartCodes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// ValidatePartCodes handles POST /inventory/part-codes/validate
// @Summary Resolve part codes
// @Description Returns stock info keyed by part code for the codes that exist
// @Tags inventory
// @Accept json
// @Produce json
// @Param codes body ValidatePartCodesRequest true "Part codes"
// @Success 200 {object} map[string]service.PartCodeStatus
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /inventory/part-codes/validate [post]
func (h *InventoryHandler) ValidatePartCodes(c *gin.Context) {
	var req ValidatePartCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, err := h.inventoryService.ValidatePartCodes(req.Codes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// AssetTypes handles GET /inventory/asset-types
// @Summary Asset types available for stock
// @Tags inventory
// @Produce json
// @Success 200 {array} string
// @Router /inventory/asset-types [get]
func (h *InventoryHandler) AssetTypes(c *gin.Context) {
	types, err := h.inventoryService.AssetTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
