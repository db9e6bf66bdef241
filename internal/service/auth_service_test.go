package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcore/internal/auth"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, roleID uint) ([]model.User, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	trainerRole := uint(model.RoleTrainer)
	bogusRole := uint(42)

	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  uint
	}{
		{
			name: "successful registration defaults to member",
			input: RegisterInput{
				FullName: "Test User",
				Email:    "test@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
			expectedRole:  uint(model.RoleMember),
		},
		{
			name: "explicit valid role is kept",
			input: RegisterInput{
				FullName: "Coach",
				Email:    "coach@example.com",
				Password: "password123",
				RoleID:   &trainerRole,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
			expectedRole:  uint(model.RoleTrainer),
		},
		{
			name: "unknown role falls back to member",
			input: RegisterInput{
				FullName: "Odd Role",
				Email:    "odd@example.com",
				Password: "password123",
				RoleID:   &bogusRole,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
			expectedRole:  uint(model.RoleMember),
		},
		{
			name: "duplicate email",
			input: RegisterInput{
				FullName: "Test User",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateEmail)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.RoleID)
				// The stored hash must never equal the submitted plaintext.
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	assert.NoError(t, err)

	stored := &model.User{
		ID:           7,
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: string(hash),
		RoleID:       uint(model.RoleMember),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "correct-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	jwtService := auth.NewJWTService("test-secret")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored.Email, user.Email)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, claims.UserID)
				assert.Equal(t, stored.Email, claims.Email)
				assert.Equal(t, model.RoleMember, claims.Role)
			}
			repo.AssertExpectations(t)
		})
	}
}

// An unknown email and a wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "known@example.com").Return(&model.User{
		ID:           1,
		Email:        "known@example.com",
		PasswordHash: string(hash),
		RoleID:       uint(model.RoleMember),
	}, nil)
	repo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	_, _, errWrongPassword := svc.Login(context.Background(), "known@example.com", "bad")
	_, _, errUnknownEmail := svc.Login(context.Background(), "unknown@example.com", "bad")

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}
