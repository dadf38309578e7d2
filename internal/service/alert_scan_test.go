package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AlertScanServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	occurrences *mocks.MockOccurrenceRepositoryInterface
	checklist   *mocks.MockChecklistItemRepositoryInterface
	maintenance *mocks.MockMaintenanceTypeRepositoryInterface
	alerts      *mocks.MockAlertRepositoryInterface
	notifier    *mocks.MockAlertNotifier
	now         time.Time
	service     *service.AlertScanService
	pressure    models.ChecklistItem
	seal        models.ChecklistItem
}

func (suite *AlertScanServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.occurrences = mocks.NewMockOccurrenceRepositoryInterface(suite.ctrl)
	suite.checklist = mocks.NewMockChecklistItemRepositoryInterface(suite.ctrl)
	suite.maintenance = mocks.NewMockMaintenanceTypeRepositoryInterface(suite.ctrl)
	suite.alerts = mocks.NewMockAlertRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockAlertNotifier(suite.ctrl)
	suite.now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	suite.pressure = models.ChecklistItem{BaseModel: models.BaseModel{ID: uuid.New()}, AssetType: "Estintore", Name: "Verifica pressione"}
	suite.seal = models.ChecklistItem{BaseModel: models.BaseModel{ID: uuid.New()}, AssetType: "Estintore", Name: "Controllo sigillo"}

	dedup := schedule.NewDedupPolicy(schedule.FixedClock{T: suite.now}, 0)
	suite.service = service.NewAlertScanService(suite.occurrences, suite.checklist, suite.maintenance, suite.alerts, suite.notifier, dedup)
}

func (suite *AlertScanServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AlertScanServiceTestSuite) occurrence(item models.ChecklistItem, asset, due string) models.Occurrence {
	d, _ := schedule.ParseDate(due)
	occ := models.Occurrence{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		LocationNumber: "001",
		AssetID:        asset,
		AssetType:      item.AssetType,
		DueDate:        d,
		State:          models.OccurrenceScheduled,
		LeadTimeDays:   7,
		Recurrence:     schedule.Monthly,
	}
	occ.SetRef(models.ChecklistItemRef(item.ID))
	return occ
}

func (suite *AlertScanServiceTestSuite) expectCatalog() {
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.pressure, suite.seal}, nil)
}

func (suite *AlertScanServiceTestSuite) TestScanRaisesOneAlertPerGroup() {
	occs := []models.Occurrence{
		suite.occurrence(suite.pressure, "EST-001", "2025-03-05"), // overdue
		suite.occurrence(suite.pressure, "EST-002", "2025-03-10"), // due today, same group as next
		suite.occurrence(suite.seal, "EST-002", "2025-03-10"),
		suite.occurrence(suite.seal, "EST-003", "2025-05-01"), // not due
	}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(models.AlertCategoryScheduleDue, gomock.Any()).Return(nil, nil)

	var created []*models.Alert
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		a.ID = uuid.New()
		created = append(created, a)
		return nil
	}).Times(2)

	var messages []notify.Message
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) *service.FanOutResult {
			messages = append(messages, msg)
			return &service.FanOutResult{}
		}).Times(2)

	result, err := suite.service.Scan(context.Background())

	suite.Require().NoError(err)
	suite.Equal(4, result.Evaluated)
	suite.Equal(2, result.Created)
	suite.Equal(1, result.Skipped)
	suite.Len(result.AlertIDs, 2)

	suite.Equal("EST-001", created[0].AssetID)
	suite.Equal(models.AlertCategoryScheduleDue, created[0].Category)
	suite.Equal("system", created[0].Operator)
	suite.Contains(created[1].Notes, "Verifica pressione")
	suite.Contains(created[1].Notes, "Controllo sigillo")

	suite.Require().Len(messages, 2)
	suite.Equal(string(schedule.Overdue), messages[0].Classification)
	suite.Equal(-5, *messages[0].DaysRemaining)
	suite.Equal(string(schedule.DueToday), messages[1].Classification)
}

func (suite *AlertScanServiceTestSuite) TestScanIsIdempotentWithinWindow() {
	occs := []models.Occurrence{suite.occurrence(suite.pressure, "EST-001", "2025-03-12")}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(models.AlertCategoryScheduleDue, gomock.Any()).Return([]models.Alert{
		{
			LocationNumber: "001",
			AssetID:        "EST-001",
			Title:          "Maintenance Estintore scheduled",
			Notes:          "Verifica pressione",
			BaseModel:      models.BaseModel{CreatedAt: suite.now.Add(-30 * time.Minute)},
		},
	}, nil)

	result, err := suite.service.Scan(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, result.Evaluated)
	suite.Equal(0, result.Created)
	suite.Equal(1, result.Skipped)
}

func (suite *AlertScanServiceTestSuite) TestScanIgnoresAlertsOfOtherAssets() {
	occs := []models.Occurrence{suite.occurrence(suite.pressure, "EST-001", "2025-03-12")}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(gomock.Any(), gomock.Any()).Return([]models.Alert{
		{
			LocationNumber: "001",
			AssetID:        "EST-009",
			Notes:          "Verifica pressione",
			BaseModel:      models.BaseModel{CreatedAt: suite.now.Add(-time.Minute)},
		},
	}, nil)
	suite.alerts.EXPECT().Create(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{})

	result, err := suite.service.Scan(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
}

func (suite *AlertScanServiceTestSuite) scanAt(at time.Time) *service.ScanResult {
	scanner := service.NewAlertScanService(suite.occurrences, suite.checklist, suite.maintenance, suite.alerts, suite.notifier,
		schedule.NewDedupPolicy(schedule.FixedClock{T: at}, 2*time.Hour))
	result, err := scanner.Scan(context.Background())
	suite.Require().NoError(err)
	return result
}

func (suite *AlertScanServiceTestSuite) TestScanRealertsOnceWindowAndDayHavePassed() {
	occs := []models.Occurrence{suite.occurrence(suite.pressure, "EST-001", "2025-03-12")}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil).Times(3)
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.pressure}, nil).Times(3)

	// stored alerts, filtered the way the repository filters them
	var stored []models.Alert
	suite.alerts.EXPECT().ListOpenByCategorySince(models.AlertCategoryScheduleDue, gomock.Any()).DoAndReturn(
		func(_ models.AlertCategory, since time.Time) ([]models.Alert, error) {
			var open []models.Alert
			for _, a := range stored {
				if !a.CreatedAt.Before(since) {
					open = append(open, a)
				}
			}
			return open, nil
		}).Times(3)

	var scanTime time.Time
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		a.ID = uuid.New()
		a.CreatedAt = scanTime
		stored = append(stored, *a)
		return nil
	}).Times(2)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{}).Times(2)

	scanTime = suite.now
	first := suite.scanAt(scanTime)
	suite.Equal(1, first.Created)

	scanTime = suite.now.Add(90 * time.Minute)
	again := suite.scanAt(scanTime)
	suite.Equal(0, again.Created)
	suite.Equal(1, again.Skipped)

	scanTime = suite.now.Add(24 * time.Hour)
	nextDay := suite.scanAt(scanTime)
	suite.Equal(1, nextDay.Created)
	suite.Equal(0, nextDay.Skipped)
	suite.Len(stored, 2)
}

func (suite *AlertScanServiceTestSuite) TestScanSkipsOccurrencesBeyondLeadTime() {
	// lead time 7 days from 2025-03-10: the 17th is the last alerting day
	occs := []models.Occurrence{
		suite.occurrence(suite.pressure, "EST-001", "2025-03-18"),
		suite.occurrence(suite.pressure, "EST-002", "2025-03-17"),
	}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		suite.Equal("EST-002", a.AssetID)
		return nil
	}).Times(1)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{}).Times(1)

	result, err := suite.service.Scan(context.Background())

	suite.Require().NoError(err)
	suite.Equal(2, result.Evaluated)
	suite.Equal(1, result.Created)
	suite.Equal(0, result.Skipped)
}

func (suite *AlertScanServiceTestSuite) TestScanWithOnlyFutureItemsCreatesNothing() {
	occs := []models.Occurrence{suite.occurrence(suite.seal, "EST-001", "2025-03-18")}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.alerts.EXPECT().Create(gomock.Any()).Times(0)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.service.Scan(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, result.Evaluated)
	suite.Equal(0, result.Created)
	suite.Empty(result.AlertIDs)
}

func (suite *AlertScanServiceTestSuite) TestScanStopsOnCreateFailure() {
	occs := []models.Occurrence{suite.occurrence(suite.pressure, "EST-001", "2025-03-01")}
	suite.occurrences.EXPECT().ListScheduled(nil).Return(occs, nil)
	suite.expectCatalog()
	suite.alerts.EXPECT().ListOpenByCategorySince(gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.alerts.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	result, err := suite.service.Scan(context.Background())

	suite.Error(err)
	suite.Equal(0, result.Created)
}

func TestAlertScanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertScanServiceTestSuite))
}
