package handlers_test

import (
	"net/http"
	"testing"

	"gestman-backend/internal/api/handlers"
	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/service"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockInventoryServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *InventoryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockInventoryServiceInterface(suite.ctrl)

	handler := handlers.NewInventoryHandler(suite.service)
	suite.http = testutils.SetupHTTPTest()
	inventory := suite.http.Router.Group("/api/v1/inventory")
	inventory.POST("", handler.CreateItem)
	inventory.GET("/statistics", handler.Statistics)
	inventory.POST("/part-codes/validate", handler.ValidatePartCodes)
	inventory.POST("/:id/quantity", handler.ChangeQuantity)
}

func (suite *InventoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InventoryHandlerTestSuite) TestCreateItemParsesDecimalPrice() {
	suite.service.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateInventoryItemRequest) (*service.InventoryItemResponse, error) {
			assert.True(suite.T(), decimal.RequireFromString("12.50").Equal(req.UnitPrice))
			return &service.InventoryItemResponse{
				InventoryItem: models.InventoryItem{
					BaseModel:      models.BaseModel{ID: uuid.New()},
					AssetType:      req.AssetType,
					PartCode:       req.PartCode,
					QuantityOnHand: req.QuantityOnHand,
					UnitPrice:      req.UnitPrice,
				},
				StockValue: req.UnitPrice.Mul(decimal.NewFromInt(int64(req.QuantityOnHand))),
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/inventory", map[string]interface{}{
		"asset_type":       "Estintore",
		"part_code":        "VAL-01",
		"quantity_on_hand": 4,
		"unit_price":       "12.50",
	})

	var resp service.InventoryItemResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("VAL-01", resp.PartCode)
	suite.Equal("50", resp.StockValue.String())
}

func (suite *InventoryHandlerTestSuite) TestCreateItemDuplicate() {
	suite.service.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrInventoryItemExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/inventory", map[string]interface{}{
		"asset_type": "Estintore",
		"part_code":  "VAL-01",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *InventoryHandlerTestSuite) TestChangeQuantity() {
	id := uuid.New()

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "unload",
			Method: http.MethodPost,
			URL:    "/api/v1/inventory/" + id.String() + "/quantity",
			Body:   map[string]interface{}{"operation": "unload", "quantity": 2, "operator": "mrossi"},
			Setup: func() {
				suite.service.EXPECT().ChangeQuantity(id, gomock.Any()).Return(&service.QuantityChangeResponse{
					PreviousQuantity: 5,
					CurrentQuantity:  3,
				}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "insufficient stock",
			Method: http.MethodPost,
			URL:    "/api/v1/inventory/" + id.String() + "/quantity",
			Body:   map[string]interface{}{"operation": "unload", "quantity": 9, "operator": "mrossi"},
			Setup: func() {
				suite.service.EXPECT().ChangeQuantity(id, gomock.Any()).Return(nil, apperrors.ErrInsufficientStock)
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "insufficient stock",
		},
		{
			Name:           "invalid id",
			Method:         http.MethodPost,
			URL:            "/api/v1/inventory/42/quantity",
			Body:           map[string]interface{}{"operation": "load", "quantity": 1, "operator": "mrossi"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "invalid id",
		},
	})
}

func (suite *InventoryHandlerTestSuite) TestStatistics() {
	suite.service.EXPECT().Statistics().Return(&service.InventoryStatistics{
		TotalItems:     3,
		BelowThreshold: 1,
		TotalValue:     decimal.RequireFromString("44.80"),
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/inventory/statistics", nil)

	var resp service.InventoryStatistics
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(3, resp.TotalItems)
	suite.True(decimal.RequireFromString("44.8").Equal(resp.TotalValue))
}

func (suite *InventoryHandlerTestSuite) TestValidatePartCodes() {
	suite.service.EXPECT().ValidatePartCodes([]string{"VAL-01", "XX"}).Return(map[string]service.PartCodeStatus{
		"VAL-01": {AssetType: "Estintore", QuantityOnHand: 1, MinimumQuantity: 2, BelowThreshold: true},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/inventory/part-codes/validate",
		handlers.ValidatePartCodesRequest{Codes: []string{"VAL-01", "XX"}})

	var resp map[string]service.PartCodeStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp, 1)
	suite.True(resp["VAL-01"].BelowThreshold)
}

func TestInventoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}
