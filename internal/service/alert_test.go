package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AlertServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockAlertRepositoryInterface
	occurrences *mocks.MockOccurrenceRepositoryInterface
	assets      *mocks.MockAssetRepositoryInterface
	notifier    *mocks.MockAlertNotifier
	now         time.Time
	service     *service.AlertService
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockAlertRepositoryInterface(suite.ctrl)
	suite.occurrences = mocks.NewMockOccurrenceRepositoryInterface(suite.ctrl)
	suite.assets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockAlertNotifier(suite.ctrl)
	suite.now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	suite.service = service.NewAlertService(
		suite.repo, suite.occurrences, suite.assets, suite.notifier,
		schedule.FixedClock{T: suite.now}, validator.New(), 30,
	)
}

func (suite *AlertServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AlertServiceTestSuite) TestTicketTitles() {
	testCases := []struct {
		name     string
		location string
		asset    string
		expected string
	}{
		{name: "asset and location", location: "001", asset: "EST-001", expected: "Ticket for asset EST-001 (location 001)"},
		{name: "location only", location: "002", expected: "Ticket for location 002"},
		{name: "asset only", asset: "IDR-004", expected: "Ticket for asset IDR-004"},
		{name: "neither", expected: "General ticket"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
			if tc.asset != "" {
				suite.assets.EXPECT().GetByCompanyID(tc.asset).Return(nil, gorm.ErrRecordNotFound)
			}
			suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{})

			resp, err := suite.service.Create(context.Background(), &service.CreateAlertRequest{
				Category:       models.AlertCategoryTicket,
				Title:          "ignored for tickets",
				Message:        "Porta bloccata",
				LocationNumber: tc.location,
				AssetID:        tc.asset,
			})

			suite.Require().NoError(err)
			suite.Equal(tc.expected, resp.Title)
			suite.Equal("Porta bloccata", resp.Description)
			suite.Equal(models.AlertOpen, resp.State)
		})
	}
}

func (suite *AlertServiceTestSuite) TestTicketFanOutCarriesAssetType() {
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.assets.EXPECT().GetByCompanyID("EST-001").Return(&models.Asset{Type: "Estintore"}, nil)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) *service.FanOutResult {
			assert.Equal(suite.T(), "Estintore", msg.AssetType)
			assert.Equal(suite.T(), models.AlertCategoryTicket, msg.Category)
			return &service.FanOutResult{Delivered: 2}
		})

	_, err := suite.service.Create(context.Background(), &service.CreateAlertRequest{
		Category:    models.AlertCategoryTicket,
		Description: "Sigillo mancante",
		AssetID:     "EST-001",
	})

	suite.NoError(err)
}

func (suite *AlertServiceTestSuite) TestNonConformityIsNotFannedOut() {
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), &service.CreateAlertRequest{
		Category:    models.AlertCategoryNonConformity,
		Description: "Cartello mancante",
	})

	suite.Require().NoError(err)
	suite.Equal("Non-conformity", resp.Title)
}

func (suite *AlertServiceTestSuite) TestCreateValidation() {
	_, err := suite.service.Create(context.Background(), &service.CreateAlertRequest{Category: "Tickets", Description: "x"})
	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("category", vErr.Field)

	_, err = suite.service.Create(context.Background(), &service.CreateAlertRequest{Category: models.AlertCategoryTicket})
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("description", vErr.Field)
}

func (suite *AlertServiceTestSuite) TestTakeChargeOnlyOpenTickets() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(&models.Alert{
		BaseModel: models.BaseModel{ID: id},
		Category:  models.AlertCategoryNonConformity,
		State:     models.AlertOpen,
	}, nil)

	_, err := suite.service.TakeCharge(id, &service.TakeChargeRequest{Operator: "mrossi"})

	suite.ErrorIs(err, apperrors.ErrAlertNotTicket)
}

func (suite *AlertServiceTestSuite) TestTakeChargeAppendsNotes() {
	id := uuid.New()
	alert := &models.Alert{
		BaseModel: models.BaseModel{ID: id},
		Category:  models.AlertCategoryTicket,
		State:     models.AlertOpen,
		Notes:     "aperto da portineria",
	}
	suite.repo.EXPECT().GetByID(id).Return(alert, nil)
	suite.repo.EXPECT().Update(alert).Return(nil)

	resp, err := suite.service.TakeCharge(id, &service.TakeChargeRequest{Operator: " mrossi ", Notes: "in arrivo"})

	suite.Require().NoError(err)
	suite.Equal(models.AlertInProgress, resp.State)
	suite.Equal("mrossi", resp.Operator)
	suite.Equal("aperto da portineria\nin arrivo", resp.Notes)
}

func (suite *AlertServiceTestSuite) TestCloseSetsTimestamp() {
	id := uuid.New()
	alert := &models.Alert{BaseModel: models.BaseModel{ID: id}, Category: models.AlertCategoryScheduleDue, State: models.AlertOpen, Operator: "system"}
	suite.repo.EXPECT().GetByID(id).Return(alert, nil)
	suite.repo.EXPECT().Update(alert).Return(nil)

	resp, err := suite.service.Close(id, nil)

	suite.Require().NoError(err)
	suite.Equal(models.AlertClosed, resp.State)
	suite.Require().NotNil(resp.ClosedAt)
	suite.Equal("system", resp.Operator)
}

func (suite *AlertServiceTestSuite) TestCloseAlreadyClosedKeepsTimestamp() {
	id := uuid.New()
	closedAt := suite.now.AddDate(0, 0, -3)
	alert := &models.Alert{BaseModel: models.BaseModel{ID: id}, Category: models.AlertCategoryTicket, State: models.AlertClosed, ClosedAt: &closedAt}
	suite.repo.EXPECT().GetByID(id).Return(alert, nil)
	suite.repo.EXPECT().Update(gomock.Any()).Times(0)

	resp, err := suite.service.Close(id, &service.CloseAlertRequest{Notes: "ricontrollato"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAlertAlreadyClosed)
	suite.Equal(closedAt, *alert.ClosedAt)
	suite.Empty(alert.Notes)
}

func (suite *AlertServiceTestSuite) TestListAttachesNextDueDate() {
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.repo.EXPECT().ListVisible("", suite.now.AddDate(0, 0, -30)).Return([]models.Alert{
		{Category: models.AlertCategoryScheduleDue, LocationNumber: "001", AssetID: "EST-001"},
		{Category: models.AlertCategoryScheduleDue, LocationNumber: "001", AssetID: "EST-001"},
		{Category: models.AlertCategoryTicket, LocationNumber: "001", AssetID: "EST-001"},
	}, nil)
	suite.occurrences.EXPECT().LatestScheduledDueDate("001", "EST-001").Return(&due, nil).Times(1)

	alerts, err := suite.service.List("")

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 3)
	suite.Equal("2025-04-01", *alerts[0].NextDueDate)
	suite.Equal("2025-04-01", *alerts[1].NextDueDate)
	suite.Nil(alerts[2].NextDueDate)
}

func (suite *AlertServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.Delete(id), apperrors.ErrAlertNotFound)
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
