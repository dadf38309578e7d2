//go:build integration
// +build integration

package repository

import (
	"testing"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReferenceRepositoryTestSuite covers locations, assets and asset types on the reference database
type ReferenceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	locations     *LocationRepository
	assets        *AssetRepository
	assetTypes    *AssetTypeRepository
	factories     *testutils.FactorySet
}

func (suite *ReferenceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.RefDB
	suite.locations = NewLocationRepository(db)
	suite.assets = NewAssetRepository(db)
	suite.assetTypes = NewAssetTypeRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ReferenceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ReferenceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ReferenceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ReferenceRepositoryTestSuite) seedLocation(number string, assets int) {
	suite.Require().NoError(suite.locations.Create(suite.factories.Location.WithNumber(number)))
	for i := 0; i < assets; i++ {
		suite.Require().NoError(suite.assets.Create(suite.factories.Asset.At(number)))
	}
}

func (suite *ReferenceRepositoryTestSuite) TestLocationDeleteCascadesAssets() {
	suite.seedLocation("12", 3)
	suite.seedLocation("14", 1)

	removed, err := suite.locations.Delete("12")
	suite.Require().NoError(err)
	suite.Equal(int64(3), removed)

	remaining, err := suite.assets.List(AssetFilter{})
	suite.Require().NoError(err)
	suite.Len(remaining, 1)

	_, err = suite.locations.Delete("12")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ReferenceRepositoryTestSuite) TestLocationListFiltersByAsset() {
	suite.seedLocation("12", 0)
	suite.seedLocation("14", 0)
	asset := suite.factories.Asset.At("14")
	asset.CompanyID = "EST-099"
	suite.Require().NoError(suite.assets.Create(asset))

	locations, err := suite.locations.List("est-09")

	suite.Require().NoError(err)
	suite.Require().Len(locations, 1)
	suite.Equal("14", locations[0].Number)
}

func (suite *ReferenceRepositoryTestSuite) TestDeleteOrphans() {
	suite.seedLocation("12", 1)
	suite.Require().NoError(suite.assets.Create(suite.factories.Asset.At("404")))
	suite.Require().NoError(suite.assets.Create(suite.factories.Asset.At("405")))

	removed, err := suite.assets.DeleteOrphans()

	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)
}

func (suite *ReferenceRepositoryTestSuite) TestAssetTypeFieldRemovalStripsAssetData() {
	assetType := suite.factories.AssetType.Create()
	suite.Require().NoError(suite.assetTypes.Create(assetType))
	suite.seedLocation("12", 2)
	bare := suite.factories.Asset.At("12")
	delete(bare.Data, "brand")
	suite.Require().NoError(suite.assets.Create(bare))

	delete(assetType.FieldsTemplate, "brand")
	assetType.FieldsOrder = []string{models.CompanyIDField}
	updated, err := suite.assetTypes.UpdateWithFieldRemoval(assetType, []string{"brand"})

	suite.Require().NoError(err)
	suite.Equal(int64(2), updated)

	assets, err := suite.assets.ListByType("mill")
	suite.Require().NoError(err)
	for _, a := range assets {
		suite.NotContains(a.Data, "brand")
		suite.Contains(a.Data, models.CompanyIDField)
	}
}

func (suite *ReferenceRepositoryTestSuite) TestAssetTypeDeactivation() {
	assetType := suite.factories.AssetType.Create()
	suite.Require().NoError(suite.assetTypes.Create(assetType))

	suite.Require().NoError(suite.assetTypes.SetActive(assetType.ID, false))

	active, err := suite.assetTypes.ListActive()
	suite.Require().NoError(err)
	suite.Empty(active)

	stored, err := suite.assetTypes.GetByName("mill")
	suite.Require().NoError(err)
	suite.False(stored.IsActive)
}

func TestReferenceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceRepositoryTestSuite))
}
