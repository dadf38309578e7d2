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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssetTypeServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockAssetTypeRepositoryInterface
	assets  *mocks.MockAssetRepositoryInterface
	service *service.AssetTypeService
}

func (suite *AssetTypeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockAssetTypeRepositoryInterface(suite.ctrl)
	suite.assets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.service = service.NewAssetTypeService(suite.repo, suite.assets, validator.New())
}

func (suite *AssetTypeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssetTypeServiceTestSuite) TestCreateOrdersFieldsWithCompanyIDFirst() {
	suite.repo.EXPECT().GetByName("Estintore").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateAssetTypeRequest{
		Name: "Estintore",
		Fields: []service.FieldDefinition{
			{Name: "peso", Type: "number"},
			{Name: "company_id"},
			{Name: "classe", Options: []string{"A", "B"}},
			{Name: "peso"},
		},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"company_id", "peso", "classe"}, resp.FieldsOrder)
	suite.Len(resp.FieldsTemplate, 3)
	suite.False(resp.Reactivated)
}

func (suite *AssetTypeServiceTestSuite) TestCreateFromTemplateSortsByName() {
	suite.repo.EXPECT().GetByName("Idrante").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateAssetTypeRequest{
		Name:           "Idrante",
		FieldsTemplate: map[string]interface{}{"pressione": "number", "diametro": "text"},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"company_id", "diametro", "pressione"}, resp.FieldsOrder)
}

func (suite *AssetTypeServiceTestSuite) TestCreateReactivatesDeactivatedType() {
	existing := &models.AssetType{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Estintore", IsActive: false}
	suite.repo.EXPECT().GetByName("Estintore").Return(existing, nil)
	suite.repo.EXPECT().Update(existing).Return(nil)

	resp, err := suite.service.Create(&service.CreateAssetTypeRequest{Name: "Estintore", Description: "Portatile"})

	suite.Require().NoError(err)
	suite.True(resp.Reactivated)
	suite.True(resp.IsActive)
	suite.Equal(existing.ID, resp.ID)
}

func (suite *AssetTypeServiceTestSuite) TestCreateActiveDuplicate() {
	suite.repo.EXPECT().GetByName("Estintore").Return(&models.AssetType{Name: "Estintore", IsActive: true}, nil)

	_, err := suite.service.Create(&service.CreateAssetTypeRequest{Name: "Estintore"})

	suite.ErrorIs(err, apperrors.ErrAssetTypeExists)
}

func (suite *AssetTypeServiceTestSuite) TestUpdateCascadesRemovedFields() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(&models.AssetType{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Estintore",
		FieldsTemplate: datatypes.JSONMap{
			"company_id": map[string]interface{}{"type": "text"},
			"peso":       "number",
			"classe":     "text",
			"colore":     "text",
		},
		IsActive: true,
	}, nil)
	suite.repo.EXPECT().UpdateWithFieldRemoval(gomock.Any(), []string{"classe", "colore"}).Return(int64(4), nil)

	resp, err := suite.service.Update(id, &service.UpdateAssetTypeRequest{
		Fields: []service.FieldDefinition{{Name: "peso", Type: "number"}, {Name: "scadenza", Type: "date"}},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"classe", "colore"}, resp.RemovedFields)
	suite.Equal(int64(4), resp.AssetsUpdated)
	assert.Equal(suite.T(), []string{"company_id", "peso", "scadenza"}, resp.AssetType.FieldsOrder)
}

func (suite *AssetTypeServiceTestSuite) TestUpdateDescriptionOnly() {
	id := uuid.New()
	desc := "Carrellato"
	suite.repo.EXPECT().GetByID(id).Return(&models.AssetType{BaseModel: models.BaseModel{ID: id}, Name: "Estintore"}, nil)
	suite.repo.EXPECT().UpdateWithFieldRemoval(gomock.Any(), nil).Return(int64(0), nil)

	resp, err := suite.service.Update(id, &service.UpdateAssetTypeRequest{Description: &desc})

	suite.Require().NoError(err)
	suite.Empty(resp.RemovedFields)
	suite.Equal("Carrellato", resp.AssetType.Description)
}

func (suite *AssetTypeServiceTestSuite) TestUpdateNothing() {
	_, err := suite.service.Update(uuid.New(), &service.UpdateAssetTypeRequest{})

	suite.ErrorIs(err, apperrors.ErrNothingToUpdate)
}

func (suite *AssetTypeServiceTestSuite) TestDeleteRefusedWhileInUse() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(&models.AssetType{BaseModel: models.BaseModel{ID: id}, Name: "Estintore"}, nil)
	suite.assets.EXPECT().CountByType("Estintore").Return(int64(3), nil)

	suite.ErrorIs(suite.service.Delete(id), apperrors.ErrAssetTypeInUse)
}

func (suite *AssetTypeServiceTestSuite) TestDeleteDeactivates() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(&models.AssetType{BaseModel: models.BaseModel{ID: id}, Name: "Porta"}, nil)
	suite.assets.EXPECT().CountByType("Porta").Return(int64(0), nil)
	suite.repo.EXPECT().SetActive(id, false).Return(nil)

	suite.NoError(suite.service.Delete(id))
}

func TestAssetTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTypeServiceTestSuite))
}
