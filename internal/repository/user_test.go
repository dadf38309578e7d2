//go:build integration
// +build integration

package repository

import (
	"testing"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	notes         *UserNoteRepository
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.RefDB)
	suite.notes = NewUserNoteRepository(suite.baseTestSuite.RefDB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func newUser(username string) *models.User {
	return &models.User{Username: username, FullName: "Test " + username, Role: models.UserRoleOperator, IsActive: true}
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := newUser("mrossi")

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateUsername tests the unique username constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.Require().NoError(suite.repo.Create(newUser("mrossi")))

	err := suite.repo.Create(newUser("mrossi"))

	suite.Error(err)
}

// TestGetByUsername tests lookup by username
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	suite.Require().NoError(suite.repo.Create(newUser("mrossi")))

	found, err := suite.repo.GetByUsername("mrossi")
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleOperator, found.Role)

	_, err = suite.repo.GetByUsername("nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllPaginates tests ordering and pagination
func (suite *UserRepositoryTestSuite) TestGetAllPaginates() {
	for _, name := range []string{"cverdi", "abianchi", "mrossi"} {
		suite.Require().NoError(suite.repo.Create(newUser(name)))
	}

	users, total, err := suite.repo.GetAll(2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(users, 2)
	suite.Equal("abianchi", users[0].Username)

	users, _, err = suite.repo.GetAll(2, 2)
	suite.Require().NoError(err)
	suite.Len(users, 1)
}

// TestUpdateAndDelete tests updating then deleting a user
func (suite *UserRepositoryTestSuite) TestUpdateAndDelete() {
	user := newUser("mrossi")
	suite.Require().NoError(suite.repo.Create(user))

	user.Role = models.UserRoleAdmin
	suite.Require().NoError(suite.repo.Update(user))
	stored, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleAdmin, stored.Role)

	suite.Require().NoError(suite.repo.Delete(user.ID))
	suite.ErrorIs(suite.repo.Delete(user.ID), gorm.ErrRecordNotFound)
}

// TestNoteUpsertKeepsOneRowPerUser tests that saving twice overwrites the text
func (suite *UserRepositoryTestSuite) TestNoteUpsertKeepsOneRowPerUser() {
	user := newUser("mrossi")
	suite.Require().NoError(suite.repo.Create(user))

	_, err := suite.notes.GetByUserID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.Require().NoError(suite.notes.Upsert(&models.UserNote{UserID: user.ID, Notes: "first"}))
	suite.Require().NoError(suite.notes.Upsert(&models.UserNote{UserID: user.ID, Notes: "second"}))

	stored, err := suite.notes.GetByUserID(user.ID)
	suite.Require().NoError(err)
	suite.Equal("second", stored.Notes)

	var rows int64
	suite.Require().NoError(suite.baseTestSuite.RefDB.Model(&models.UserNote{}).Where("user_id = ?", user.ID).Count(&rows).Error)
	suite.Equal(int64(1), rows)

	suite.Require().NoError(suite.notes.DeleteByUserID(user.ID))
	_, err = suite.notes.GetByUserID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
