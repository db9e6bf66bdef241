package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

func TestUserService_Create(t *testing.T) {
	trainerRole := uint(model.RoleTrainer)

	tests := []struct {
		name          string
		input         CreateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  uint
	}{
		{
			name: "defaults to member",
			input: CreateUserInput{
				FullName: "Front Desk",
				Email:    "desk@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: uint(model.RoleMember),
		},
		{
			name: "explicit role is kept",
			input: CreateUserInput{
				FullName: "New Coach",
				Email:    "newcoach@example.com",
				Password: "password123",
				RoleID:   &trainerRole,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: uint(model.RoleTrainer),
		},
		{
			name: "duplicate email",
			input: CreateUserInput{
				FullName: "Front Desk",
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
			svc := NewUserService(repo, nil)

			user, err := svc.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.RoleID)
				// Admin-created accounts get the same hashing as self-registration.
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}
			repo.AssertExpectations(t)
		})
	}
}
