package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/service"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &requestValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Every failure, validation or domain, renders the same {error, code} body.
func TestAuthHandler_Register_ErrorBodyShape(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
		expectedTag  string
	}{
		{
			name:         "missing required fields",
			body:         `{"email":"a@example.com"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			expectedTag:  "VALIDATION_ERROR",
		},
		{
			name:         "malformed json",
			body:         `{"email":`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			expectedTag:  "VALIDATION_ERROR",
		},
		{
			name: "duplicate email",
			body: `{"full_name":"Test User","email":"taken@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
					Return(nil, apperrors.ErrDuplicateEmail)
			},
			expectedCode: http.StatusConflict,
			expectedTag:  "DUPLICATE_EMAIL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setupMock(svc)
			h := NewAuthHandler(svc)

			c, rec := newJSONContext(http.MethodPost, "/api/auth/register", tt.body)
			assert.NoError(t, h.Register(c))

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedTag, resp.Code)
			assert.NotEmpty(t, resp.Error)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(&model.User{ID: 1, FullName: "Test User", Email: "test@example.com", RoleID: uint(model.RoleMember)}, nil)
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"full_name":"Test User","email":"test@example.com","password":"password123"}`)
	assert.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
