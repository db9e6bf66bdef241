package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcore/internal/auth"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries validated registration fields. The plaintext password
// only lives for the duration of the hash call and is never persisted or logged.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    *string
	RoleID   *uint
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. The role defaults to
// member when none is given; the store's unique constraint on email is the
// duplicate check.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
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

// Login authenticates a user and issues a bearer token. An unknown email and
// a wrong password both yield ErrInvalidCredentials so the response cannot be
// used to enumerate registered emails.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.RoleTier())
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
