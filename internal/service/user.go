package service

import (
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for back-office users
type UserService struct {
	repo      repository.UserRepositoryInterface
	notes     repository.UserNoteRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	notes repository.UserNoteRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:      repo,
		notes:     notes,
		validator: validator,
	}
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	FullName string  `json:"full_name" validate:"max=200"`
	Email    string  `json:"email" validate:"omitempty,email,max=255"`
	Role     *string `json:"role" example:"operator" default:"operator"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// UserListResponse is the swagger schema for GET /users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// SaveUserNotesRequest replaces the personal notes of a user
type SaveUserNotesRequest struct {
	Notes string `json:"notes" validate:"max=20000"`
}

// UserNotesResponse is the personal notes of a user; Notes is empty when nothing was saved
type UserNotesResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Notes     string    `json:"notes"`
	UpdatedAt *string   `json:"updated_at,omitempty"`
}

// Create creates a new user
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	username := strings.TrimSpace(req.Username)

	existing, err := s.repo.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	role := models.UserRoleOperator
	if req.Role != nil {
		role = models.UserRole(strings.TrimSpace(*req.Role))
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "role must be one of admin, operator, viewer")
		}
	}

	user := &models.User{
		Username: username,
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.convertToResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return s.convertToResponse(user), nil
}

// List returns a page of users
func (s *UserService) List(page, pageSize int) (*UserListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := s.repo.GetAll(pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.convertToResponse(&users[i])
	}
	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a user
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if req.FullName == nil && req.Email == nil && req.Role == nil && req.IsActive == nil {
		return nil, apperrors.ErrNothingToUpdate
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		role := models.UserRole(strings.TrimSpace(*req.Role))
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "role must be one of admin, operator, viewer")
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.convertToResponse(user), nil
}

// Delete removes a user together with their notes
func (s *UserService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "delete user")
	}
	if err := s.notes.DeleteByUserID(id); err != nil {
		return fmt.Errorf("failed to delete user notes: %w", err)
	}
	return nil
}

// GetNotes returns the personal notes of the user identified by id or username
func (s *UserService) GetNotes(idOrUsername string) (*UserNotesResponse, error) {
	user, err := s.resolve(idOrUsername)
	if err != nil {
		return nil, err
	}

	resp := &UserNotesResponse{UserID: user.ID, Username: user.Username}
	note, err := s.notes.GetByUserID(user.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return resp, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get user notes: %w", err)
	}
	resp.Notes = note.Notes
	resp.UpdatedAt = formatTime(&note.UpdatedAt)
	return resp, nil
}

// SaveNotes overwrites the personal notes of the user identified by id or username
func (s *UserService) SaveNotes(idOrUsername string, req *SaveUserNotesRequest) (*UserNotesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	user, err := s.resolve(idOrUsername)
	if err != nil {
		return nil, err
	}

	note := &models.UserNote{UserID: user.ID, Notes: req.Notes}
	if err := s.notes.Upsert(note); err != nil {
		return nil, fmt.Errorf("failed to save user notes: %w", err)
	}
	return &UserNotesResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Notes:     note.Notes,
		UpdatedAt: formatTime(&note.UpdatedAt),
	}, nil
}

// resolve looks a user up by UUID, falling back to the username
func (s *UserService) resolve(idOrUsername string) (*models.User, error) {
	key := strings.TrimSpace(idOrUsername)
	if key == "" {
		return nil, apperrors.ErrUserNotFound
	}

	var (
		user *models.User
		err  error
	)
	if id, perr := uuid.Parse(key); perr == nil {
		user, err = s.repo.GetByID(id)
	} else {
		user, err = s.repo.GetByUsername(key)
	}
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return user, nil
}

func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(timestampLayout),
	}
}
