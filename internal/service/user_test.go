package service_test

import (
	"errors"
	"strings"
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

func strPtr(s string) *string {
	return &s
}

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockNoteRepo *mocks.MockUserNoteRepositoryInterface
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockNoteRepo = mocks.NewMockUserNoteRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockNoteRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests creating a user with the default role
func (suite *UserServiceTestSuite) TestCreateUser() {
	req := &service.CreateUserRequest{
		Username: " mrossi ",
		FullName: "Mario Rossi",
		Email:    "mario.rossi@example.com",
	}

	suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(suite.T(), models.UserRoleOperator, u.Role)
		assert.True(suite.T(), u.IsActive)
		u.ID = uuid.New()
		return nil
	})

	resp, err := suite.userService.Create(req)

	suite.Require().NoError(err)
	suite.Equal("mrossi", resp.Username)
	suite.Equal("operator", resp.Role)
	suite.NotEqual(uuid.Nil, resp.ID)
}

// TestCreateUserValidation tests request validation
func (suite *UserServiceTestSuite) TestCreateUserValidation() {
	testCases := []struct {
		name    string
		request *service.CreateUserRequest
	}{
		{name: "Missing username", request: &service.CreateUserRequest{FullName: "Mario"}},
		{name: "Invalid email", request: &service.CreateUserRequest{Username: "mrossi", Email: "not-an-email"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.userService.Create(tc.request)
			suite.Error(err)
			suite.Contains(err.Error(), "validation failed")
		})
	}
}

// TestCreateUserInvalidRole tests that unknown roles are rejected
func (suite *UserServiceTestSuite) TestCreateUserInvalidRole() {
	suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Create(&service.CreateUserRequest{Username: "mrossi", Role: strPtr("superuser")})

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("role", vErr.Field)
}

// TestCreateUserAlreadyExists tests duplicate usernames
func (suite *UserServiceTestSuite) TestCreateUserAlreadyExists() {
	suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(&models.User{Username: "mrossi"}, nil)

	_, err := suite.userService.Create(&service.CreateUserRequest{Username: "mrossi"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestGetUserNotFound tests the not found mapping
func (suite *UserServiceTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestListUsersNormalizesPagination tests default pagination
func (suite *UserServiceTestSuite) TestListUsersNormalizesPagination() {
	suite.mockUserRepo.EXPECT().GetAll(20, 0).Return([]models.User{
		{Username: "mrossi", Role: models.UserRoleAdmin},
		{Username: "lbianchi", Role: models.UserRoleViewer},
	}, int64(2), nil)

	resp, err := suite.userService.List(0, 500)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Len(resp.Users, 2)
	suite.Equal("admin", resp.Users[0].Role)
}

// TestUpdateUser tests a partial update
func (suite *UserServiceTestSuite) TestUpdateUser() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Username: "mrossi", Role: models.UserRoleOperator, IsActive: true}
	inactive := false

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.Update(id, &service.UpdateUserRequest{Role: strPtr("admin"), IsActive: &inactive})

	suite.Require().NoError(err)
	suite.Equal("admin", resp.Role)
	suite.False(resp.IsActive)
}

// TestUpdateUserNothingToUpdate tests empty updates
func (suite *UserServiceTestSuite) TestUpdateUserNothingToUpdate() {
	_, err := suite.userService.Update(uuid.New(), &service.UpdateUserRequest{})

	suite.ErrorIs(err, apperrors.ErrNothingToUpdate)
}

// TestDeleteUser tests deletion removes the notes as well
func (suite *UserServiceTestSuite) TestDeleteUser() {
	id := uuid.New()
	gomock.InOrder(
		suite.mockUserRepo.EXPECT().Delete(id).Return(nil),
		suite.mockNoteRepo.EXPECT().DeleteByUserID(id).Return(nil),
	)

	suite.NoError(suite.userService.Delete(id))
}

// TestDeleteMissingUserKeepsNotesUntouched tests that a missing user stops before the notes
func (suite *UserServiceTestSuite) TestDeleteMissingUserKeepsNotesUntouched() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)
	suite.mockNoteRepo.EXPECT().DeleteByUserID(gomock.Any()).Times(0)

	suite.ErrorIs(suite.userService.Delete(id), apperrors.ErrUserNotFound)
}

// TestGetNotesByUsername tests the username lookup and the empty default
func (suite *UserServiceTestSuite) TestGetNotesByUsername() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "mrossi"}
	suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(user, nil)
	suite.mockNoteRepo.EXPECT().GetByUserID(user.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.GetNotes(" mrossi ")

	suite.Require().NoError(err)
	suite.Equal(user.ID, resp.UserID)
	suite.Equal("", resp.Notes)
	suite.Nil(resp.UpdatedAt)
}

// TestGetNotesByID tests the UUID lookup
func (suite *UserServiceTestSuite) TestGetNotesByID() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "mrossi"}
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockNoteRepo.EXPECT().GetByUserID(user.ID).Return(&models.UserNote{UserID: user.ID, Notes: "check pump 3"}, nil)

	resp, err := suite.userService.GetNotes(user.ID.String())

	suite.Require().NoError(err)
	suite.Equal("mrossi", resp.Username)
	suite.Equal("check pump 3", resp.Notes)
	suite.NotNil(resp.UpdatedAt)
}

// TestGetNotesErrors tests missing users and storage failures
func (suite *UserServiceTestSuite) TestGetNotesErrors() {
	suite.Run("Unknown username", func() {
		suite.mockUserRepo.EXPECT().GetByUsername("nobody").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.userService.GetNotes("nobody")
		suite.ErrorIs(err, apperrors.ErrUserNotFound)
	})
	suite.Run("Blank key", func() {
		_, err := suite.userService.GetNotes("  ")
		suite.ErrorIs(err, apperrors.ErrUserNotFound)
	})
	suite.Run("Note lookup fails", func() {
		user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "mrossi"}
		suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(user, nil)
		suite.mockNoteRepo.EXPECT().GetByUserID(user.ID).Return(nil, errors.New("connection reset"))

		_, err := suite.userService.GetNotes("mrossi")
		suite.ErrorContains(err, "failed to get user notes")
	})
}

// TestSaveNotes tests that the upsert carries the resolved user ID
func (suite *UserServiceTestSuite) TestSaveNotes() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "mrossi"}
	suite.mockUserRepo.EXPECT().GetByUsername("mrossi").Return(user, nil)
	suite.mockNoteRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(n *models.UserNote) error {
		suite.Equal(user.ID, n.UserID)
		suite.Equal("replace filter A", n.Notes)
		return nil
	})

	resp, err := suite.userService.SaveNotes("mrossi", &service.SaveUserNotesRequest{Notes: "replace filter A"})

	suite.Require().NoError(err)
	suite.Equal("replace filter A", resp.Notes)
}

// TestSaveNotesErrors tests validation and missing users
func (suite *UserServiceTestSuite) TestSaveNotesErrors() {
	suite.Run("Too long", func() {
		_, err := suite.userService.SaveNotes("mrossi", &service.SaveUserNotesRequest{Notes: strings.Repeat("x", 20001)})
		suite.True(apperrors.IsValidation(err))
	})
	suite.Run("Unknown user", func() {
		id := uuid.New()
		suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)
		suite.mockNoteRepo.EXPECT().Upsert(gomock.Any()).Times(0)

		_, err := suite.userService.SaveNotes(id.String(), &service.SaveUserNotesRequest{Notes: "x"})
		suite.ErrorIs(err, apperrors.ErrUserNotFound)
	})
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
