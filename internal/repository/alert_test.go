//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AlertRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AlertRepository
	factories     *testutils.FactorySet
}

func (suite *AlertRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAlertRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AlertRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AlertRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *AlertRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AlertRepositoryTestSuite) createAlert(category models.AlertCategory, state models.AlertState, createdAt time.Time) *models.Alert {
	a := suite.factories.Alert.Create()
	a.Category = category
	a.State = state
	a.CreatedAt = createdAt
	if state == models.AlertClosed {
		closed := createdAt.Add(time.Hour)
		a.ClosedAt = &closed
	}
	suite.Require().NoError(suite.repo.Create(a))
	return a
}

func (suite *AlertRepositoryTestSuite) TestClosedAtFollowsState() {
	a := suite.createAlert(models.AlertCategoryTicket, models.AlertClosed, time.Now())
	suite.NotNil(a.ClosedAt)

	a.State = models.AlertInProgress
	suite.Require().NoError(suite.repo.Update(a))

	stored, err := suite.repo.GetByID(a.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.ClosedAt)
}

func (suite *AlertRepositoryTestSuite) TestListVisibleHidesOldClosedAlerts() {
	now := time.Now()
	suite.createAlert(models.AlertCategoryTicket, models.AlertOpen, now.AddDate(0, 0, -90))
	suite.createAlert(models.AlertCategoryTicket, models.AlertClosed, now.AddDate(0, 0, -2))
	suite.createAlert(models.AlertCategoryTicket, models.AlertClosed, now.AddDate(0, 0, -60))
	suite.createAlert(models.AlertCategoryScheduleDue, models.AlertOpen, now)

	all, err := suite.repo.ListVisible("", now.AddDate(0, 0, -30))
	suite.Require().NoError(err)
	suite.Len(all, 3)
	suite.Equal(models.AlertCategoryScheduleDue, all[0].Category)

	tickets, err := suite.repo.ListVisible(string(models.AlertCategoryTicket), now.AddDate(0, 0, -30))
	suite.Require().NoError(err)
	suite.Len(tickets, 2)
}

func (suite *AlertRepositoryTestSuite) TestListOpenByCategorySince() {
	now := time.Now()
	recent := suite.createAlert(models.AlertCategoryScheduleDue, models.AlertOpen, now.Add(-30*time.Minute))
	suite.createAlert(models.AlertCategoryScheduleDue, models.AlertOpen, now.Add(-5*time.Hour))
	suite.createAlert(models.AlertCategoryScheduleDue, models.AlertClosed, now.Add(-10*time.Minute))

	alerts, err := suite.repo.ListOpenByCategorySince(models.AlertCategoryScheduleDue, now.Add(-2*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Equal(recent.ID, alerts[0].ID)
}

func (suite *AlertRepositoryTestSuite) TestRetention() {
	now := time.Now()
	old := suite.createAlert(models.AlertCategoryNonConformity, models.AlertClosed, now.AddDate(0, 0, -120))
	suite.createAlert(models.AlertCategoryNonConformity, models.AlertOpen, now.AddDate(0, 0, -120))
	suite.createAlert(models.AlertCategoryNonConformity, models.AlertClosed, now.AddDate(0, 0, -5))

	deleted, err := suite.repo.DeleteClosedBefore(now.AddDate(0, 0, -90))
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByID(old.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AlertRepositoryTestSuite) TestDeleteByIDsAndDelete() {
	a := suite.createAlert(models.AlertCategoryTicket, models.AlertOpen, time.Now())
	b := suite.createAlert(models.AlertCategoryTicket, models.AlertOpen, time.Now())

	deleted, err := suite.repo.DeleteByIDs([]uuid.UUID{a.ID, b.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)

	suite.ErrorIs(suite.repo.Delete(a.ID), gorm.ErrRecordNotFound)
}

func TestAlertRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AlertRepositoryTestSuite))
}
