package service_test

import (
	"testing"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockInventoryRepositoryInterface
	assets  *mocks.MockAssetRepositoryInterface
	service *service.InventoryService
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockInventoryRepositoryInterface(suite.ctrl)
	suite.assets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.service = service.NewInventoryService(suite.repo, suite.assets, validator.New())
}

func (suite *InventoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func stockItem(qty, min int, price string) *models.InventoryItem {
	return &models.InventoryItem{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AssetType:       "Estintore",
		PartCode:        "VAL-01",
		Unit:            "pz",
		QuantityOnHand:  qty,
		MinimumQuantity: min,
		UnitPrice:       decimal.RequireFromString(price),
		IsActive:        true,
	}
}

// expectMovement runs the planned movement against item like the repository would
func (suite *InventoryServiceTestSuite) expectMovement(item *models.InventoryItem) {
	suite.repo.EXPECT().ApplyMovement(item.ID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, apply repository.MovementFunc) (*models.InventoryItem, *models.StockMovement, error) {
			m, err := apply(item)
			if err != nil {
				return nil, nil, err
			}
			return item, m, nil
		})
}

func (suite *InventoryServiceTestSuite) TestCreateRecordsInitialLoad() {
	suite.repo.EXPECT().GetByPartCode("Estintore", "VAL-01").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(item *models.InventoryItem, initial *models.StockMovement) error {
		suite.Require().NotNil(initial)
		assert.Equal(suite.T(), models.MovementInitialLoad, initial.Kind)
		assert.Equal(suite.T(), 10, initial.ResultingQuantity)
		assert.Equal(suite.T(), "SYSTEM", initial.Operator)
		return nil
	})

	resp, err := suite.service.Create(&service.CreateInventoryItemRequest{
		AssetType:       "Estintore",
		PartCode:        "VAL-01",
		QuantityOnHand:  10,
		MinimumQuantity: 3,
		UnitPrice:       decimal.RequireFromString("12.505"),
	})

	suite.Require().NoError(err)
	suite.Equal("pz", resp.Unit)
	suite.True(decimal.RequireFromString("12.51").Equal(resp.UnitPrice))
	suite.False(resp.BelowThreshold)
}

func (suite *InventoryServiceTestSuite) TestCreateWithoutStockSkipsInitialLoad() {
	suite.repo.EXPECT().GetByPartCode(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any(), nil).Return(nil)

	_, err := suite.service.Create(&service.CreateInventoryItemRequest{AssetType: "Idrante", PartCode: "LAN-20"})

	suite.NoError(err)
}

func (suite *InventoryServiceTestSuite) TestCreateDuplicatePartCode() {
	suite.repo.EXPECT().GetByPartCode("Estintore", "VAL-01").Return(stockItem(1, 0, "1"), nil)

	_, err := suite.service.Create(&service.CreateInventoryItemRequest{AssetType: "Estintore", PartCode: "VAL-01"})

	suite.ErrorIs(err, apperrors.ErrInventoryItemExists)
}

func (suite *InventoryServiceTestSuite) TestUnloadBeyondStockIsRejected() {
	item := stockItem(4, 2, "10")
	suite.expectMovement(item)

	_, err := suite.service.ChangeQuantity(item.ID, &service.QuantityChangeRequest{Operation: "unload", Quantity: 5, Operator: "mrossi"})

	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Equal(4, item.QuantityOnHand)
}

func (suite *InventoryServiceTestSuite) TestUnloadCrossesThreshold() {
	item := stockItem(4, 2, "10")
	suite.expectMovement(item)

	resp, err := suite.service.ChangeQuantity(item.ID, &service.QuantityChangeRequest{Operation: "unload", Quantity: 3, Operator: "mrossi"})

	suite.Require().NoError(err)
	suite.Equal(4, resp.PreviousQuantity)
	suite.Equal(1, resp.CurrentQuantity)
	suite.Equal(models.MovementUnload, resp.Movement.Kind)
	suite.True(resp.Item.BelowThreshold)
}

func (suite *InventoryServiceTestSuite) TestCorrectionRecordsDelta() {
	item := stockItem(8, 2, "10")
	suite.expectMovement(item)

	resp, err := suite.service.ChangeQuantity(item.ID, &service.QuantityChangeRequest{Operation: "correction", Quantity: 5, Operator: "mrossi", Reason: "inventario"})

	suite.Require().NoError(err)
	suite.Equal(-3, resp.Movement.Quantity)
	suite.Equal(5, resp.CurrentQuantity)
}

func (suite *InventoryServiceTestSuite) TestChangeQuantityValidation() {
	_, err := suite.service.ChangeQuantity(uuid.New(), &service.QuantityChangeRequest{Operation: "steal", Quantity: 1, Operator: "mrossi"})
	suite.Error(err)

	_, err = suite.service.ChangeQuantity(uuid.New(), &service.QuantityChangeRequest{Operation: "load", Quantity: 0, Operator: "mrossi"})
	suite.Error(err)
}

func (suite *InventoryServiceTestSuite) TestStatisticsAggregatesValue() {
	a := *stockItem(2, 5, "10.00")
	b := *stockItem(10, 1, "1.25")
	c := *stockItem(3, 3, "4.10")
	c.AssetType = "Idrante"
	suite.repo.EXPECT().List(repository.InventoryFilter{}).Return([]models.InventoryItem{a, b, c}, nil)

	stats, err := suite.service.Statistics()

	suite.Require().NoError(err)
	suite.Equal(3, stats.TotalItems)
	suite.Equal(1, stats.BelowThreshold)
	suite.Equal("44.8", stats.TotalValue.String())
	suite.Require().Len(stats.ByAssetType, 2)
	suite.Equal("Estintore", stats.ByAssetType[0].AssetType)
	suite.Equal(12, stats.ByAssetType[0].TotalQuantity)
}

func (suite *InventoryServiceTestSuite) TestValidatePartCodesIgnoresBlank() {
	suite.repo.EXPECT().ListByPartCodes([]string{"VAL-01", "NOPE"}).Return([]models.InventoryItem{*stockItem(1, 2, "3")}, nil)

	out, err := suite.service.ValidatePartCodes([]string{" VAL-01 ", "", "NOPE"})

	suite.Require().NoError(err)
	suite.Len(out, 1)
	suite.True(out["VAL-01"].BelowThreshold)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
