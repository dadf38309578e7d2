//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OccurrenceRepositoryTestSuite tests occurrences and the transactional schedule store
type OccurrenceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OccurrenceRepository
	store         *ScheduleStore
	factories     *testutils.FactorySet
}

func (suite *OccurrenceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOccurrenceRepository(suite.baseTestSuite.DB)
	suite.store = NewScheduleStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *OccurrenceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OccurrenceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OccurrenceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *OccurrenceRepositoryTestSuite) createOccurrence(due time.Time, state models.OccurrenceState) *models.Occurrence {
	o := suite.factories.Occurrence.Create()
	o.DueDate = due
	o.State = state
	if state == models.OccurrenceCompleted {
		completed := due.Add(10 * time.Hour)
		o.CompletedAt = &completed
		o.CompletedBy = "mario"
	}
	suite.Require().NoError(suite.repo.Create(o))
	return o
}

func (suite *OccurrenceRepositoryTestSuite) TestCreateRejectsMissingReference() {
	o := suite.factories.Occurrence.Create()
	o.ItemReference = models.ItemReference{}

	suite.Error(suite.repo.Create(o))
}

func (suite *OccurrenceRepositoryTestSuite) TestListScheduledOrdersByDueDate() {
	suite.createOccurrence(day(2025, 3, 20), models.OccurrenceScheduled)
	suite.createOccurrence(day(2025, 3, 5), models.OccurrenceScheduled)
	suite.createOccurrence(day(2025, 3, 1), models.OccurrenceCompleted)

	all, err := suite.repo.ListScheduled(nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].DueDate.Equal(day(2025, 3, 5)))

	cutoff := day(2025, 3, 10)
	due, err := suite.repo.ListScheduled(&cutoff)
	suite.Require().NoError(err)
	suite.Len(due, 1)
}

func (suite *OccurrenceRepositoryTestSuite) TestListGroupMatchesKey() {
	first := suite.factories.ChecklistItem.Named("Pressure check", 1)
	second := suite.factories.ChecklistItem.Named("Seal check", 2)
	a := suite.factories.Occurrence.For(first, day(2025, 3, 10), schedule.Weekly)
	b := suite.factories.Occurrence.For(second, day(2025, 3, 10), schedule.Monthly)
	other := suite.factories.Occurrence.For(second, day(2025, 3, 11), schedule.Monthly)
	for _, o := range []*models.Occurrence{a, b, other} {
		suite.Require().NoError(suite.repo.Create(o))
	}

	group, err := suite.repo.ListGroup(a.LocationNumber, a.AssetID, day(2025, 3, 10))

	suite.Require().NoError(err)
	suite.Len(group, 2)
}

func (suite *OccurrenceRepositoryTestSuite) TestLatestScheduledDueDate() {
	suite.createOccurrence(day(2025, 4, 1), models.OccurrenceScheduled)
	suite.createOccurrence(day(2025, 6, 1), models.OccurrenceScheduled)
	suite.createOccurrence(day(2025, 9, 1), models.OccurrenceCompleted)

	latest, err := suite.repo.LatestScheduledDueDate("12", "FR-01")
	suite.Require().NoError(err)
	suite.Require().NotNil(latest)
	suite.True(latest.Equal(day(2025, 6, 1)))

	none, err := suite.repo.LatestScheduledDueDate("99", "FR-01")
	suite.NoError(err)
	suite.Nil(none)
}

func (suite *OccurrenceRepositoryTestSuite) TestDeleteCompletedBefore() {
	suite.createOccurrence(day(2024, 1, 10), models.OccurrenceCompleted)
	suite.createOccurrence(day(2025, 2, 10), models.OccurrenceCompleted)
	suite.createOccurrence(day(2023, 1, 10), models.OccurrenceScheduled)

	deleted, err := suite.repo.DeleteCompletedBefore(day(2025, 1, 1))

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
}

func (suite *OccurrenceRepositoryTestSuite) TestDeleteMissingReportsZeroRows() {
	rows, err := suite.repo.Delete(uuid.New())

	suite.NoError(err)
	suite.Zero(rows)
}

func (suite *OccurrenceRepositoryTestSuite) TestTransactionCommitsCompletion() {
	o := suite.createOccurrence(day(2025, 1, 15), models.OccurrenceScheduled)

	err := suite.store.Transaction(func(store ScheduleStoreInterface) error {
		locked, err := store.Occurrences().GetForUpdate(o.ID)
		if err != nil {
			return err
		}
		now := day(2025, 1, 15).Add(9 * time.Hour)
		locked.State = models.OccurrenceCompleted
		locked.CompletedAt = &now
		locked.CompletedBy = "mario"
		if err := store.Occurrences().Update(locked); err != nil {
			return err
		}
		record := &models.ExecutionRecord{
			ItemReference:   locked.ItemReference,
			OccurrenceID:    locked.ID,
			LocationNumber:  locked.LocationNumber,
			AssetID:         locked.AssetID,
			OriginalDueDate: locked.DueDate,
			ExecutedAt:      now,
			Operator:        "mario",
		}
		if err := store.History().Append(record); err != nil {
			return err
		}
		next := suite.factories.Occurrence.Create()
		next.ItemReference = locked.ItemReference
		next.DueDate = day(2025, 2, 15)
		return store.Occurrences().Create(next)
	})
	suite.Require().NoError(err)

	stored, err := suite.repo.GetByID(o.ID)
	suite.Require().NoError(err)
	suite.Equal(models.OccurrenceCompleted, stored.State)

	count, err := NewExecutionHistoryRepository(suite.baseTestSuite.DB).CountByOccurrence(o.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	scheduled, err := suite.repo.ListScheduled(nil)
	suite.Require().NoError(err)
	suite.Len(scheduled, 1)
}

func (suite *OccurrenceRepositoryTestSuite) TestTransactionRollsBack() {
	o := suite.createOccurrence(day(2025, 1, 15), models.OccurrenceScheduled)
	boom := errors.New("second member already completed")

	err := suite.store.Transaction(func(store ScheduleStoreInterface) error {
		locked, err := store.Occurrences().GetForUpdate(o.ID)
		if err != nil {
			return err
		}
		locked.State = models.OccurrenceCompleted
		if err := store.Occurrences().Update(locked); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	stored, err := suite.repo.GetByID(o.ID)
	suite.Require().NoError(err)
	suite.Equal(models.OccurrenceScheduled, stored.State)
}

func (suite *OccurrenceRepositoryTestSuite) TestGetForUpdateNotFound() {
	err := suite.store.Transaction(func(store ScheduleStoreInterface) error {
		_, err := store.Occurrences().GetForUpdate(uuid.New())
		return err
	})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOccurrenceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OccurrenceRepositoryTestSuite))
}
