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
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	store         *mocks.MockScheduleStoreInterface
	occurrences   *mocks.MockOccurrenceRepositoryInterface
	history       *mocks.MockExecutionHistoryRepositoryInterface
	results       *mocks.MockChecklistResultRepositoryInterface
	checklist     *mocks.MockChecklistItemRepositoryInterface
	maintenance   *mocks.MockMaintenanceTypeRepositoryInterface
	alerts        *mocks.MockAlertRepositoryInterface
	notifier      *mocks.MockAlertNotifier
	clock         schedule.FixedClock
	service       *service.ScheduleService
	checklistItem models.ChecklistItem
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockScheduleStoreInterface(suite.ctrl)
	suite.occurrences = mocks.NewMockOccurrenceRepositoryInterface(suite.ctrl)
	suite.history = mocks.NewMockExecutionHistoryRepositoryInterface(suite.ctrl)
	suite.results = mocks.NewMockChecklistResultRepositoryInterface(suite.ctrl)
	suite.checklist = mocks.NewMockChecklistItemRepositoryInterface(suite.ctrl)
	suite.maintenance = mocks.NewMockMaintenanceTypeRepositoryInterface(suite.ctrl)
	suite.alerts = mocks.NewMockAlertRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockAlertNotifier(suite.ctrl)
	suite.clock = schedule.FixedClock{T: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)}

	suite.store.EXPECT().Occurrences().Return(suite.occurrences).AnyTimes()
	suite.store.EXPECT().History().Return(suite.history).AnyTimes()
	suite.store.EXPECT().Results().Return(suite.results).AnyTimes()
	suite.store.EXPECT().Transaction(gomock.Any()).DoAndReturn(
		func(fn func(repository.ScheduleStoreInterface) error) error {
			return fn(suite.store)
		}).AnyTimes()

	suite.checklistItem = models.ChecklistItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		AssetType: "Estintore",
		Name:      "Verifica pressione",
		IsActive:  true,
	}

	suite.service = service.NewScheduleService(
		suite.store,
		suite.checklist,
		suite.maintenance,
		suite.alerts,
		suite.notifier,
		suite.clock,
		validator.New(),
		service.ScheduleSettings{DefaultLeadDays: 15, UrgentDays: 7},
	)
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) scheduledOccurrence(due string, rec schedule.Recurrence) *models.Occurrence {
	d, err := schedule.ParseDate(due)
	suite.Require().NoError(err)
	occ := &models.Occurrence{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		LocationNumber: "001",
		AssetID:        "EST-001",
		AssetType:      "Estintore",
		DueDate:        d,
		State:          models.OccurrenceScheduled,
		LeadTimeDays:   15,
		Recurrence:     rec,
	}
	occ.SetRef(models.ChecklistItemRef(suite.checklistItem.ID))
	return occ
}

func (suite *ScheduleServiceTestSuite) expectCompletion(occ *models.Occurrence, next **models.Occurrence) {
	suite.occurrences.EXPECT().GetForUpdate(occ.ID).Return(occ, nil)
	suite.checklist.EXPECT().GetByIDs([]uuid.UUID{suite.checklistItem.ID}).Return([]models.ChecklistItem{suite.checklistItem}, nil)
	suite.occurrences.EXPECT().Update(occ).Return(nil)
	suite.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(r *models.ExecutionRecord) error {
		assert.Equal(suite.T(), occ.ID, r.OccurrenceID)
		assert.Equal(suite.T(), occ.DueDate, r.OriginalDueDate)
		assert.Equal(suite.T(), suite.checklistItem.Name, r.ItemName)
		return nil
	})
	suite.occurrences.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.Occurrence) error {
		o.ID = uuid.New()
		*next = o
		return nil
	})
}

func (suite *ScheduleServiceTestSuite) TestCompleteAnchorsNextOnDueDate() {
	// completed two weeks late; the successor still follows the original due date
	occ := suite.scheduledOccurrence("2025-01-15", schedule.Monthly)
	var next *models.Occurrence
	suite.expectCompletion(occ, &next)

	resp, err := suite.service.Complete(context.Background(), occ.ID, &service.CompleteRequest{Operator: "mrossi"})

	suite.Require().NoError(err)
	suite.Equal("2025-02-15", resp.Next.DueDate)
	suite.Equal(models.OccurrenceCompleted, resp.Completed.State)
	suite.Equal("mrossi", resp.Completed.CompletedBy)
	suite.Equal(models.OccurrenceScheduled, next.State)
	suite.Equal(occ.Ref(), next.Ref())
	suite.Equal(schedule.Monthly, next.Recurrence)
	suite.Nil(resp.AlertID)
}

func (suite *ScheduleServiceTestSuite) TestCompleteStoresChecklistResults() {
	occ := suite.scheduledOccurrence("2025-03-03", schedule.Weekly)
	var next *models.Occurrence
	suite.expectCompletion(occ, &next)
	suite.results.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rs []models.ChecklistResult) error {
		require.Len(suite.T(), rs, 2)
		assert.Equal(suite.T(), models.DefaultOutcome, rs[0].Outcome)
		assert.Equal(suite.T(), "ko", rs[1].Outcome)
		return nil
	})

	resp, err := suite.service.Complete(context.Background(), occ.ID, &service.CompleteRequest{
		Operator: "mrossi",
		Results: []service.ChecklistOutcome{
			{Code: "pressione"},
			{Code: "sigillo", Outcome: "ko"},
		},
	})

	suite.Require().NoError(err)
	suite.Equal("2025-03-10", resp.Next.DueDate)
}

func (suite *ScheduleServiceTestSuite) TestCompleteAlreadyCompleted() {
	occ := suite.scheduledOccurrence("2025-01-15", schedule.Monthly)
	occ.State = models.OccurrenceCompleted
	suite.occurrences.EXPECT().GetForUpdate(occ.ID).Return(occ, nil)

	resp, err := suite.service.Complete(context.Background(), occ.ID, &service.CompleteRequest{Operator: "mrossi"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrOccurrenceAlreadyCompleted)
}

func (suite *ScheduleServiceTestSuite) TestCompleteNotFound() {
	id := uuid.New()
	suite.occurrences.EXPECT().GetForUpdate(id).Return(nil, errors.New("record not found"))

	_, err := suite.service.Complete(context.Background(), id, &service.CompleteRequest{Operator: "mrossi"})

	suite.Error(err)
}

func (suite *ScheduleServiceTestSuite) TestCompleteRequiresOperator() {
	_, err := suite.service.Complete(context.Background(), uuid.New(), &service.CompleteRequest{Operator: "   "})

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr), "expected validation error, got %v", err)
	suite.Equal("operator", vErr.Field)
}

func (suite *ScheduleServiceTestSuite) TestCompleteWithNotesRaisesNonConformity() {
	occ := suite.scheduledOccurrence("2025-02-28", schedule.Quarterly)
	var next *models.Occurrence
	suite.expectCompletion(occ, &next)

	alertID := uuid.New()
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		assert.Equal(suite.T(), models.AlertCategoryNonConformity, a.Category)
		assert.Equal(suite.T(), "Maintenance notes: EST-001", a.Title)
		assert.Equal(suite.T(), "sigillo rotto", a.Notes)
		a.ID = alertID
		return nil
	})
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) *service.FanOutResult {
			assert.Equal(suite.T(), models.AlertCategoryNonConformity, msg.Category)
			assert.Equal(suite.T(), "001", msg.LocationNumber)
			return &service.FanOutResult{Delivered: 1}
		})

	resp, err := suite.service.Complete(context.Background(), occ.ID, &service.CompleteRequest{
		Operator: "mrossi",
		Notes:    "  sigillo rotto ",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.AlertID)
	suite.Equal(alertID, *resp.AlertID)
	suite.Equal("2025-05-28", resp.Next.DueDate)
}

func (suite *ScheduleServiceTestSuite) TestCompleteSucceedsWhenAlertFails() {
	occ := suite.scheduledOccurrence("2025-02-28", schedule.Monthly)
	var next *models.Occurrence
	suite.expectCompletion(occ, &next)
	suite.alerts.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))

	resp, err := suite.service.Complete(context.Background(), occ.ID, &service.CompleteRequest{
		Operator: "mrossi",
		Notes:    "manichetta usurata",
	})

	suite.Require().NoError(err)
	suite.Nil(resp.AlertID)
	suite.Equal("2025-03-28", resp.Next.DueDate)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupByKey() {
	weekly := suite.scheduledOccurrence("2025-03-10", schedule.Weekly)
	monthly := suite.scheduledOccurrence("2025-03-10", schedule.Monthly)
	due, _ := schedule.ParseDate("2025-03-10")

	suite.occurrences.EXPECT().ListGroup("001", "EST-001", due).Return([]models.Occurrence{*weekly, *monthly}, nil)
	for _, occ := range []*models.Occurrence{weekly, monthly} {
		o := occ
		suite.occurrences.EXPECT().GetForUpdate(o.ID).Return(o, nil)
		suite.occurrences.EXPECT().Update(o).Return(nil)
	}
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil).Times(2)
	suite.history.EXPECT().Append(gomock.Any()).Return(nil).Times(2)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	resp, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		LocationNumber: "001",
		AssetID:        "EST-001",
		DueDate:        "2025-03-10",
		Operator:       "mrossi",
	})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Next, 2)
	suite.Equal("2025-03-17", resp.Next[0].DueDate)
	suite.Equal("2025-04-10", resp.Next[1].DueDate)
	suite.Len(resp.Completed, 2)
	suite.Nil(resp.AlertID)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupNotFound() {
	due, _ := schedule.ParseDate("2025-03-10")
	suite.occurrences.EXPECT().ListGroup("001", "EST-404", due).Return(nil, nil)

	_, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		LocationNumber: "001",
		AssetID:        "EST-404",
		DueDate:        "2025-03-10",
		Operator:       "mrossi",
	})

	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupRequiresMembers() {
	_, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{Operator: "mrossi"})

	var vErr *apperrors.ValidationError
	suite.True(errors.As(err, &vErr))
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupRollsBackOnCompletedMember() {
	open := suite.scheduledOccurrence("2025-03-10", schedule.Weekly)
	done := suite.scheduledOccurrence("2025-03-10", schedule.Monthly)
	done.State = models.OccurrenceCompleted

	suite.occurrences.EXPECT().GetForUpdate(open.ID).Return(open, nil)
	suite.occurrences.EXPECT().Update(open).Return(nil)
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil)
	suite.history.EXPECT().Append(gomock.Any()).Return(nil)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil)
	suite.occurrences.EXPECT().GetForUpdate(done.ID).Return(done, nil)

	resp, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		OccurrenceIDs: []uuid.UUID{open.ID, done.ID, open.ID},
		Operator:      "mrossi",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrOccurrenceAlreadyCompleted)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupMemberNotesRaiseNonConformity() {
	seal := suite.scheduledOccurrence("2025-03-10", schedule.Monthly)
	hose := suite.scheduledOccurrence("2025-03-10", schedule.Quarterly)

	for _, occ := range []*models.Occurrence{seal, hose} {
		o := occ
		suite.occurrences.EXPECT().GetForUpdate(o.ID).Return(o, nil)
		suite.occurrences.EXPECT().Update(o).Return(nil)
	}
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil).Times(2)
	suite.results.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rs []models.ChecklistResult) error {
		require.Len(suite.T(), rs, 1)
		assert.Equal(suite.T(), "failed", rs[0].Outcome)
		return nil
	})
	suite.history.EXPECT().Append(gomock.Any()).Return(nil).Times(2)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	alertID := uuid.New()
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		assert.Equal(suite.T(), models.AlertCategoryNonConformity, a.Category)
		assert.Equal(suite.T(), "Verifica pressione: sigillo rotto", a.Notes)
		assert.Equal(suite.T(), "EST-001", a.AssetID)
		a.ID = alertID
		return nil
	})
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{Delivered: 1})

	resp, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		OccurrenceIDs: []uuid.UUID{seal.ID, hose.ID},
		Operator:      "mrossi",
		Items:         []service.GroupMemberOutcome{{OccurrenceID: seal.ID, Outcome: "failed", Notes: " sigillo rotto "}},
	})

	suite.Require().NoError(err)
	suite.Equal("sigillo rotto", seal.CompletionNotes)
	suite.Empty(hose.CompletionNotes)
	suite.Require().NotNil(resp.AlertID)
	suite.Equal(alertID, *resp.AlertID)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupJoinsGroupAndMemberNotes() {
	seal := suite.scheduledOccurrence("2025-03-10", schedule.Monthly)
	suite.occurrences.EXPECT().GetForUpdate(seal.ID).Return(seal, nil)
	suite.occurrences.EXPECT().Update(seal).Return(nil)
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil)
	suite.results.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	suite.history.EXPECT().Append(gomock.Any()).Return(nil)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil)
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		assert.Equal(suite.T(), "accesso difficile\nVerifica pressione: sigillo rotto", a.Notes)
		return nil
	})
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).Return(&service.FanOutResult{})

	_, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		OccurrenceIDs: []uuid.UUID{seal.ID},
		Operator:      "mrossi",
		Notes:         "accesso difficile",
		Items:         []service.GroupMemberOutcome{{OccurrenceID: seal.ID, Notes: "sigillo rotto"}},
	})

	suite.NoError(err)
}

func (suite *ScheduleServiceTestSuite) TestCompleteGroupRejectsMixedMembers() {
	first := suite.scheduledOccurrence("2025-03-10", schedule.Weekly)
	otherAsset := suite.scheduledOccurrence("2025-03-10", schedule.Weekly)
	otherAsset.AssetID = "EST-002"

	suite.occurrences.EXPECT().GetForUpdate(first.ID).Return(first, nil)
	suite.occurrences.EXPECT().Update(first).Return(nil)
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil)
	suite.history.EXPECT().Append(gomock.Any()).Return(nil)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil)
	suite.occurrences.EXPECT().GetForUpdate(otherAsset.ID).Return(otherAsset, nil)
	suite.occurrences.EXPECT().Update(otherAsset).Times(0)

	resp, err := suite.service.CompleteGroup(context.Background(), &service.CompleteGroupRequest{
		OccurrenceIDs: []uuid.UUID{first.ID, otherAsset.ID},
		Operator:      "mrossi",
	})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "must share location, asset and due date")
	suite.Equal(models.OccurrenceScheduled, otherAsset.State)
}

func (suite *ScheduleServiceTestSuite) TestScheduleChecklistItem() {
	suite.checklist.EXPECT().GetByID(suite.checklistItem.ID).Return(&suite.checklistItem, nil)
	suite.occurrences.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.Occurrence) error {
		assert.Equal(suite.T(), "Estintore", o.AssetType)
		assert.Equal(suite.T(), 15, o.LeadTimeDays)
		return nil
	})

	id := suite.checklistItem.ID
	resp, err := suite.service.Schedule(&service.ScheduleRequest{
		ChecklistItemID: &id,
		LocationNumber:  "001",
		AssetID:         "EST-001",
		DueDate:         "2025-03-31",
		Recurrence:      "mensile",
	})

	suite.Require().NoError(err)
	suite.Equal(schedule.Monthly, resp.Recurrence)
	suite.Equal(models.RefChecklistItem, resp.ItemKind)
	suite.Equal("2025-03-31", resp.DueDate)
}

func (suite *ScheduleServiceTestSuite) TestScheduleMaintenanceTypeUsesCatalogFrequency() {
	mt := &models.MaintenanceType{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AssetType:       "Idrante",
		Name:            "Revisione semestrale",
		FrequencyMonths: 6,
		LeadTimeDays:    30,
	}
	suite.maintenance.EXPECT().GetByID(mt.ID).Return(mt, nil)
	suite.occurrences.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Schedule(&service.ScheduleRequest{
		MaintenanceTypeID: &mt.ID,
		LocationNumber:    "002",
		AssetID:           "IDR-004",
		DueDate:           "2025-06-30",
	})

	suite.Require().NoError(err)
	suite.Equal(schedule.Semiannual, resp.Recurrence)
	suite.Equal(30, resp.LeadTimeDays)
	suite.Equal("Idrante", resp.AssetType)
}

func (suite *ScheduleServiceTestSuite) TestScheduleValidation() {
	id := suite.checklistItem.ID
	testCases := []struct {
		name  string
		req   *service.ScheduleRequest
		setup func()
		field string
	}{
		{
			name:  "both references",
			req:   &service.ScheduleRequest{ChecklistItemID: &id, MaintenanceTypeID: &id, LocationNumber: "001", AssetID: "A", DueDate: "2025-03-31"},
			field: "checklist_item_id",
		},
		{
			name:  "bad date",
			req:   &service.ScheduleRequest{ChecklistItemID: &id, LocationNumber: "001", AssetID: "A", DueDate: "31/03/2025"},
			field: "due_date",
		},
		{
			name: "unknown recurrence",
			req:  &service.ScheduleRequest{ChecklistItemID: &id, LocationNumber: "001", AssetID: "A", DueDate: "2025-03-31", Recurrence: "fortnightly-ish"},
			setup: func() {
				suite.checklist.EXPECT().GetByID(id).Return(&suite.checklistItem, nil)
			},
			field: "recurrence",
		},
		{
			name: "missing recurrence",
			req:  &service.ScheduleRequest{ChecklistItemID: &id, LocationNumber: "001", AssetID: "A", DueDate: "2025-03-31"},
			setup: func() {
				suite.checklist.EXPECT().GetByID(id).Return(&suite.checklistItem, nil)
			},
			field: "recurrence",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}
			_, err := suite.service.Schedule(tc.req)
			var vErr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &vErr), "got %v", err)
			suite.Equal(tc.field, vErr.Field)
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestUpcomingClassifiesUrgency() {
	overdue := suite.scheduledOccurrence("2025-02-20", schedule.Monthly)
	soon := suite.scheduledOccurrence("2025-03-05", schedule.Monthly)
	later := suite.scheduledOccurrence("2025-03-25", schedule.Monthly)
	suite.occurrences.EXPECT().ListScheduled(gomock.Any()).DoAndReturn(func(before *time.Time) ([]models.Occurrence, error) {
		assert.Equal(suite.T(), "2025-03-31", schedule.FormatDate(*before))
		return []models.Occurrence{*overdue, *soon, *later}, nil
	})
	suite.checklist.EXPECT().GetByIDs(gomock.Any()).Return([]models.ChecklistItem{suite.checklistItem}, nil)

	resp, err := suite.service.Upcoming(30)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Occurrences, 3)
	suite.Equal(1, resp.Overdue)
	suite.Equal(1, resp.Urgent)
	suite.Equal(-9, resp.Occurrences[0].DaysRemaining)
	suite.True(resp.Occurrences[0].Overdue)
	suite.Equal(4, resp.Occurrences[1].DaysRemaining)
	suite.True(resp.Occurrences[1].Urgent)
	suite.False(resp.Occurrences[2].Urgent)
}

func (suite *ScheduleServiceTestSuite) TestUpcomingRejectsNegativeDays() {
	_, err := suite.service.Upcoming(-1)

	var vErr *apperrors.ValidationError
	suite.True(errors.As(err, &vErr))
}

func (suite *ScheduleServiceTestSuite) TestDeleteOccurrence() {
	id := uuid.New()
	suite.occurrences.EXPECT().Delete(id).Return(int64(0), nil)

	suite.ErrorIs(suite.service.DeleteOccurrence(id), apperrors.ErrOccurrenceNotFound)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
