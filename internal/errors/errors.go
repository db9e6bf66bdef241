package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. Both cases share one message so a caller cannot probe
	// which registered emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken is returned when no Authorization header is present.
	ErrMissingToken = errors.New("access denied: no token provided")
	// ErrInvalidToken is returned when signature or expiry verification fails.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the authenticated role is outside the allow-set.
	ErrForbidden = errors.New("insufficient role")
	// ErrDuplicateEmail is returned when the email uniqueness constraint is violated.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrDuplicateTrainer is returned when a user already has a trainer profile.
	ErrDuplicateTrainer = errors.New("this user is already a trainer")
	// ErrUserNotFound is returned when a user row is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrPlanNotFound is returned when a referenced plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrMembershipNotFound is returned when a membership row is absent.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrTrainerNotFound is returned when a trainer row is absent.
	ErrTrainerNotFound = errors.New("trainer not found")
	// ErrClassNotFound is returned when a class row is absent or not owned by the caller.
	ErrClassNotFound = errors.New("class not found")
	// ErrAttendanceNotFound is returned when an attendance record is absent.
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// ValidationError carries a request validation or binding message so that
// boundary 400s render in the same body shape as domain errors.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store-level failures fall
// through to a generic 500 so no database detail reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MISSING_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrDuplicateTrainer):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_TRAINER")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPlanNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLAN_NOT_FOUND")
	case errors.Is(err, ErrMembershipNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBERSHIP_NOT_FOUND")
	case errors.Is(err, ErrTrainerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRAINER_NOT_FOUND")
	case errors.Is(err, ErrClassNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case errors.Is(err, ErrAttendanceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ATTENDANCE_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "STORE_ERROR")
	}
}
