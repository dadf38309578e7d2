package service_test

import (
	"testing"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	checklist   *mocks.MockChecklistItemRepositoryInterface
	maintenance *mocks.MockMaintenanceTypeRepositoryInterface
	occurrences *mocks.MockOccurrenceRepositoryInterface
	assetTypes  *mocks.MockAssetTypeRepositoryInterface
	assets      *mocks.MockAssetRepositoryInterface
	service     *service.CatalogService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.checklist = mocks.NewMockChecklistItemRepositoryInterface(suite.ctrl)
	suite.maintenance = mocks.NewMockMaintenanceTypeRepositoryInterface(suite.ctrl)
	suite.occurrences = mocks.NewMockOccurrenceRepositoryInterface(suite.ctrl)
	suite.assetTypes = mocks.NewMockAssetTypeRepositoryInterface(suite.ctrl)
	suite.assets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.service = service.NewCatalogService(
		suite.checklist, suite.maintenance, suite.occurrences, suite.assetTypes, suite.assets, validator.New(),
	)
}

func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogServiceTestSuite) TestCreateChecklistItemAppendsToOrder() {
	suite.assetTypes.EXPECT().GetByName("Estintore").Return(&models.AssetType{Name: "Estintore", IsActive: true}, nil)
	suite.checklist.EXPECT().MaxDisplayOrder("Estintore").Return(3, nil)
	suite.checklist.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.ChecklistItem) error {
		assert.Equal(suite.T(), 4, item.DisplayOrder)
		assert.True(suite.T(), item.IsActive)
		return nil
	})

	item, err := suite.service.CreateChecklistItem(&service.CreateChecklistItemRequest{AssetType: "Estintore", Name: " Controllo pressione "})

	suite.Require().NoError(err)
	suite.Equal("Controllo pressione", item.Name)
}

func (suite *CatalogServiceTestSuite) TestCreateChecklistItemAcceptsTypeUsedByAssets() {
	suite.assetTypes.EXPECT().GetByName("Porta").Return(nil, gorm.ErrRecordNotFound)
	suite.assets.EXPECT().CountByType("Porta").Return(int64(2), nil)
	suite.checklist.EXPECT().MaxDisplayOrder("Porta").Return(0, nil)
	suite.checklist.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.service.CreateChecklistItem(&service.CreateChecklistItemRequest{AssetType: "Porta", Name: "Maniglione"})

	suite.NoError(err)
}

func (suite *CatalogServiceTestSuite) TestCreateChecklistItemUnknownType() {
	suite.assetTypes.EXPECT().GetByName("Ascensore").Return(&models.AssetType{Name: "Ascensore", IsActive: false}, nil)
	suite.assets.EXPECT().CountByType("Ascensore").Return(int64(0), nil)

	_, err := suite.service.CreateChecklistItem(&service.CreateChecklistItemRequest{AssetType: "Ascensore", Name: "Funi"})

	suite.ErrorIs(err, apperrors.ErrAssetTypeNotFound)
}

func (suite *CatalogServiceTestSuite) TestUpdateChecklistItem() {
	id := uuid.New()
	name := "Controllo manometro"
	suite.checklist.EXPECT().Updates(id, map[string]interface{}{"name": name}).Return(nil)
	suite.checklist.EXPECT().GetByID(id).Return(&models.ChecklistItem{BaseModel: models.BaseModel{ID: id}, Name: name}, nil)

	item, err := suite.service.UpdateChecklistItem(id, &service.UpdateChecklistItemRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal(name, item.Name)

	_, err = suite.service.UpdateChecklistItem(id, &service.UpdateChecklistItemRequest{})
	suite.ErrorIs(err, apperrors.ErrNothingToUpdate)
}

func (suite *CatalogServiceTestSuite) TestDeleteChecklistItemNotFound() {
	id := uuid.New()
	suite.checklist.EXPECT().Deactivate(id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.DeleteChecklistItem(id), apperrors.ErrChecklistItemNotFound)
}

func (suite *CatalogServiceTestSuite) TestCreateMaintenanceTypeDuplicate() {
	suite.maintenance.EXPECT().GetByName("Estintore", "Revisione").Return(&models.MaintenanceType{Name: "Revisione"}, nil)

	_, err := suite.service.CreateMaintenanceType(&service.CreateMaintenanceTypeRequest{
		AssetType: "Estintore", Name: "Revisione", FrequencyMonths: 6,
	})

	suite.ErrorIs(err, apperrors.ErrMaintenanceTypeExists)
}

func (suite *CatalogServiceTestSuite) TestDeleteMaintenanceTypeInUse() {
	id := uuid.New()
	suite.maintenance.EXPECT().GetByID(id).Return(&models.MaintenanceType{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.occurrences.EXPECT().CountScheduledByMaintenanceType(id).Return(int64(1), nil)

	suite.ErrorIs(suite.service.DeleteMaintenanceType(id), apperrors.ErrMaintenanceTypeInUse)
}

func (suite *CatalogServiceTestSuite) TestListChecklistItemsRequiresAssetType() {
	_, err := suite.service.ListChecklistItems("  ")

	suite.True(apperrors.IsValidation(err))
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
