package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

// CreateUserInput carries fields for an administratively created account.
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Phone    *string
	RoleID   *uint
}

// UpdateUserInput carries profile fields an authenticated caller may edit.
type UpdateUserInput struct {
	FullName string
	Email    string
	Phone    *string
}

// UserService handles user administration.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	ListMembers(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	Attendance(ctx context.Context, userID uint) ([]model.Attendance, error)
}

type userService struct {
	userRepo       repository.UserRepository
	attendanceRepo repository.AttendanceRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, attendanceRepo repository.AttendanceRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Create adds an account on behalf of an administrator. It hashes the password
// the same way self-registration does; the role defaults to member when none
// is given.
func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	roleID := uint(model.RoleMember)
	if in.RoleID != nil && model.RoleID(*in.RoleID).Valid() {
		roleID = *in.RoleID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Phone:        in.Phone,
		RoleID:       roleID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ListMembers lists users in the member tier.
func (s *userService) ListMembers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, uint(model.RoleMember))
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = in.FullName
	user.Email = in.Email
	user.Phone = in.Phone

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Attendance returns the user's attendance history joined with class names.
func (s *userService) Attendance(ctx context.Context, userID uint) ([]model.Attendance, error) {
	return s.attendanceRepo.ListByUser(ctx, userID)
}
