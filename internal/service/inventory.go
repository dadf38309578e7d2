package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// initialLoadOperator is recorded on the movement created with a new item
const initialLoadOperator = "SYSTEM"

// InventoryService handles business logic for spare parts and stock movements
type InventoryService struct {
	repo      repository.InventoryRepositoryInterface
	assets    repository.AssetRepositoryInterface
	validator *validator.Validate
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo repository.InventoryRepositoryInterface, assets repository.AssetRepositoryInterface, validator *validator.Validate) *InventoryService {
	return &InventoryService{
		repo:      repo,
		assets:    assets,
		validator: validator,
	}
}

// Ensure InventoryService implements InventoryServiceInterface
var _ InventoryServiceInterface = (*InventoryService)(nil)

// CreateInventoryItemRequest represents the request to create a spare part
type CreateInventoryItemRequest struct {
	AssetType        string          `json:"asset_type" validate:"required,max=100"`
	PartCode         string          `json:"part_code" validate:"required,max=100"`
	Manufacturer     string          `json:"manufacturer,omitempty" validate:"max=200"`
	Model            string          `json:"model,omitempty" validate:"max=200"`
	ManufacturerCode string          `json:"manufacturer_code,omitempty" validate:"max=100"`
	Supplier         string          `json:"supplier,omitempty" validate:"max=200"`
	Unit             string          `json:"unit,omitempty" validate:"max=20"`
	QuantityOnHand   int             `json:"quantity_on_hand" validate:"min=0"`
	MinimumQuantity  int             `json:"minimum_quantity" validate:"min=0"`
	UnitPrice        decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	Notes            string          `json:"notes,omitempty"`
}

// UpdateInventoryItemRequest updates descriptive fields; quantities change through movements
type UpdateInventoryItemRequest struct {
	Manufacturer     *string          `json:"manufacturer,omitempty" validate:"omitempty,max=200"`
	Model            *string          `json:"model,omitempty" validate:"omitempty,max=200"`
	ManufacturerCode *string          `json:"manufacturer_code,omitempty" validate:"omitempty,max=100"`
	Supplier         *string          `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Unit             *string          `json:"unit,omitempty" validate:"omitempty,min=1,max=20"`
	MinimumQuantity  *int             `json:"minimum_quantity,omitempty" validate:"omitempty,min=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string"`
	Notes            *string          `json:"notes,omitempty"`
}

// QuantityChangeRequest loads, unloads or corrects the quantity on hand.
// For a correction Quantity is the new absolute quantity.
type QuantityChangeRequest struct {
	Operation string `json:"operation" validate:"required,oneof=load unload correction"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Operator  string `json:"operator" validate:"required,max=100"`
	Reason    string `json:"reason,omitempty"`
}

// InventoryQuery narrows inventory listings
type InventoryQuery struct {
	AssetType      string `form:"asset_type"`
	BelowThreshold bool   `form:"below_threshold"`
	Search         string `form:"q"`
}

// InventoryItemResponse represents a spare part with its derived values
type InventoryItemResponse struct {
	models.InventoryItem
	BelowThreshold bool            `json:"below_threshold"`
	StockValue     decimal.Decimal `json:"stock_value" swaggertype:"string"`
}

// QuantityChangeResponse reports a stock movement
type QuantityChangeResponse struct {
	Item             InventoryItemResponse `json:"item"`
	Movement         models.StockMovement  `json:"movement"`
	PreviousQuantity int                   `json:"previous_quantity"`
	CurrentQuantity  int                   `json:"current_quantity"`
}

// AssetTypeStock aggregates the stock of one asset type
type AssetTypeStock struct {
	AssetType     string          `json:"asset_type"`
	Items         int             `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Value         decimal.Decimal `json:"value" swaggertype:"string"`
}

// InventoryStatistics summarizes the warehouse
type InventoryStatistics struct {
	TotalItems     int              `json:"total_items"`
	BelowThreshold int              `json:"below_threshold"`
	TotalValue     decimal.Decimal  `json:"total_value" swaggertype:"string"`
	ByAssetType    []AssetTypeStock `json:"by_asset_type"`
}

// PartCodeStatus is the tooltip info of a part code referenced in free text
type PartCodeStatus struct {
	AssetType       string          `json:"asset_type"`
	Manufacturer    string          `json:"manufacturer"`
	Supplier        string          `json:"supplier"`
	QuantityOnHand  int             `json:"quantity_on_hand"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price" swaggertype:"string"`
	BelowThreshold  bool            `json:"below_threshold"`
}

// Create adds a spare part; a positive initial quantity is recorded as an initial load
func (s *InventoryService) Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationError("unit_price", "unit_price must not be negative")
	}

	existing, err := s.repo.GetByPartCode(req.AssetType, req.PartCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing item: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInventoryItemExists
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = "pz"
	}
	item := &models.InventoryItem{
		AssetType:        strings.TrimSpace(req.AssetType),
		PartCode:         strings.TrimSpace(req.PartCode),
		Manufacturer:     req.Manufacturer,
		Model:            req.Model,
		ManufacturerCode: req.ManufacturerCode,
		Supplier:         req.Supplier,
		Unit:             unit,
		QuantityOnHand:   req.QuantityOnHand,
		MinimumQuantity:  req.MinimumQuantity,
		UnitPrice:        req.UnitPrice.Round(2),
		Notes:            req.Notes,
		IsActive:         true,
	}

	var initial *models.StockMovement
	if req.QuantityOnHand > 0 {
		initial = &models.StockMovement{
			Kind:              models.MovementInitialLoad,
			Quantity:          req.QuantityOnHand,
			PreviousQuantity:  0,
			ResultingQuantity: req.QuantityOnHand,
			Operator:          initialLoadOperator,
			Reason:            "Initial load",
		}
	}
	if err := s.repo.Create(item, initial); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	resp := toInventoryItemResponse(item)
	return &resp, nil
}

// GetByID retrieves a spare part by ID
func (s *InventoryService) GetByID(id uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}
	resp := toInventoryItemResponse(item)
	return &resp, nil
}

// List returns the active spare parts matching the query
func (s *InventoryService) List(query *InventoryQuery) ([]InventoryItemResponse, error) {
	if query == nil {
		query = &InventoryQuery{}
	}
	items, err := s.repo.List(repository.InventoryFilter{
		AssetType:      strings.TrimSpace(query.AssetType),
		BelowThreshold: query.BelowThreshold,
		Search:         strings.TrimSpace(query.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	responses := make([]InventoryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toInventoryItemResponse(&items[i]))
	}
	return responses, nil
}

// Update changes descriptive fields of a spare part
func (s *InventoryService) Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}

	changed := false
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	set(&item.Manufacturer, req.Manufacturer)
	set(&item.Model, req.Model)
	set(&item.ManufacturerCode, req.ManufacturerCode)
	set(&item.Supplier, req.Supplier)
	set(&item.Unit, req.Unit)
	set(&item.Notes, req.Notes)
	if req.MinimumQuantity != nil {
		item.MinimumQuantity = *req.MinimumQuantity
		changed = true
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, apperrors.NewValidationError("unit_price", "unit_price must not be negative")
		}
		item.UnitPrice = req.UnitPrice.Round(2)
		changed = true
	}
	if !changed {
		return nil, apperrors.ErrNothingToUpdate
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	resp := toInventoryItemResponse(item)
	return &resp, nil
}

// ChangeQuantity applies a load, unload or correction and records it in the ledger
func (s *InventoryService) ChangeQuantity(id uuid.UUID, req *QuantityChangeRequest) (*QuantityChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if err := requireOperator(req.Operator); err != nil {
		return nil, err
	}

	item, movement, err := s.repo.ApplyMovement(id, func(item *models.InventoryItem) (*models.StockMovement, error) {
		return planMovement(item, req)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) || errors.Is(err, apperrors.ErrInvalidStockOperation) {
			return nil, err
		}
		return nil, lookupError(err, apperrors.ErrInventoryItemNotFound, "change quantity")
	}

	return &QuantityChangeResponse{
		Item:             toInventoryItemResponse(item),
		Movement:         *movement,
		PreviousQuantity: movement.PreviousQuantity,
		CurrentQuantity:  movement.ResultingQuantity,
	}, nil
}

// planMovement mutates the locked item and returns its ledger entry.
// A correction sets the absolute quantity and records the delta.
func planMovement(item *models.InventoryItem, req *QuantityChangeRequest) (*models.StockMovement, error) {
	previous := item.QuantityOnHand
	m := &models.StockMovement{
		ItemID:           item.ID,
		PreviousQuantity: previous,
		Operator:         strings.TrimSpace(req.Operator),
		Reason:           req.Reason,
	}
	switch req.Operation {
	case "load":
		m.Kind = models.MovementLoad
		m.Quantity = req.Quantity
		item.QuantityOnHand = previous + req.Quantity
	case "unload":
		if req.Quantity > previous {
			return nil, apperrors.ErrInsufficientStock
		}
		m.Kind = models.MovementUnload
		m.Quantity = req.Quantity
		item.QuantityOnHand = previous - req.Quantity
	case "correction":
		m.Kind = models.MovementCorrection
		m.Quantity = req.Quantity - previous
		item.QuantityOnHand = req.Quantity
	default:
		return nil, apperrors.ErrInvalidStockOperation
	}
	m.ResultingQuantity = item.QuantityOnHand
	return m, nil
}

// ListMovements returns the ledger of a spare part
func (s *InventoryService) ListMovements(id uuid.UUID) ([]models.StockMovement, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookupError(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}
	movements, err := s.repo.ListMovements(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

// Delete removes a spare part and its ledger
func (s *InventoryService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupError(err, apperrors.ErrInventoryItemNotFound, "delete inventory item")
	}
	return nil
}

// Statistics aggregates counts and stock value over the active spare parts
func (s *InventoryService) Statistics() (*InventoryStatistics, error) {
	items, err := s.repo.List(repository.InventoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	stats := &InventoryStatistics{TotalValue: decimal.Zero, ByAssetType: []AssetTypeStock{}}
	perType := make(map[string]*AssetTypeStock)
	for i := range items {
		item := &items[i]
		value := item.StockValue()
		stats.TotalItems++
		if item.BelowThreshold() {
			stats.BelowThreshold++
		}
		stats.TotalValue = stats.TotalValue.Add(value)

		agg, ok := perType[item.AssetType]
		if !ok {
			agg = &AssetTypeStock{AssetType: item.AssetType, Value: decimal.Zero}
			perType[item.AssetType] = agg
		}
		agg.Items++
		agg.TotalQuantity += item.QuantityOnHand
		agg.Value = agg.Value.Add(value)
	}

	for _, agg := range perType {
		agg.Value = agg.Value.Round(2)
		stats.ByAssetType = append(stats.ByAssetType, *agg)
	}
	sort.Slice(stats.ByAssetType, func(i, j int) bool {
		return stats.ByAssetType[i].AssetType < stats.ByAssetType[j].AssetType
	})
	stats.TotalValue = stats.TotalValue.Round(2)
	return stats, nil
}

// ValidatePartCodes returns info for the known part codes among codes
func (s *InventoryService) ValidatePartCodes(codes []string) (map[string]PartCodeStatus, error) {
	cleaned := trimAll(codes)
	out := make(map[string]PartCodeStatus, len(cleaned))
	if len(cleaned) == 0 {
		return out, nil
	}
	items, err := s.repo.ListByPartCodes(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to validate part codes: %w", err)
	}
	for i := range items {
		item := &items[i]
		out[item.PartCode] = PartCodeStatus{
			AssetType:       item.AssetType,
			Manufacturer:    item.Manufacturer,
			Supplier:        item.Supplier,
			QuantityOnHand:  item.QuantityOnHand,
			MinimumQuantity: item.MinimumQuantity,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			BelowThreshold:  item.BelowThreshold(),
		}
	}
	return out, nil
}

// ListPartCodes returns every active part code
func (s *InventoryService) ListPartCodes() ([]string, error) {
	codes, err := s.repo.ListPartCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list part codes: %w", err)
	}
	return codes, nil
}

// AssetTypes returns the asset types in use in the reference database
func (s *InventoryService) AssetTypes() ([]string, error) {
	types, err := s.assets.DistinctTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	return types, nil
}

func toInventoryItemResponse(item *models.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		InventoryItem:  *item,
		BelowThreshold: item.BelowThreshold(),
		StockValue:     item.StockValue().Round(2),
	}
}
