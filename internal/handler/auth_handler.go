package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty"`
	RoleID   *uint   `json:"role_id,omitempty"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserView is the sanitized user shape returned by auth endpoints. It never
// carries the password hash.
type UserView struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

func userView(u *model.User) UserView {
	return UserView{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.RoleTier().Name(),
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    userView(user),
	})
}

// Login godoc
// @Summary Login and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "login successful",
		Token:   token,
		User:    userView(user),
	})
}
