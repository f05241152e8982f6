package apperrors

import "errors"

// Generic errors mapped to HTTP statuses by the error middleware
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrValidationFailed      = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrPayloadTooLarge       = errors.New("payload too large")
	ErrUnsupportedMediaType  = errors.New("unsupported media type")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrNotAdmin           = errors.New("admin access required")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// Catalog errors
var (
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrSpecializationExists   = errors.New("specialization with this slug already exists")
	ErrSpecializationInUse    = errors.New("specialization still has courses")
	ErrInvalidSpecialization  = errors.New("specialization does not exist")
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseExists           = errors.New("course with this slug already exists")
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrInvalidTeamCategory    = errors.New("category must be team or leadership")
	ErrFAQNotFound            = errors.New("faq not found")
	ErrContentNotFound        = errors.New("content section not found")
)

// Media errors
var (
	ErrMediaAssetNotFound = errors.New("media asset not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUnknownAction      = errors.New("unknown action")
)

// CustomError carries a user-facing message alongside the underlying sentinel
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError wraps err with a message shown to the caller
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithDetails attaches structured context
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode sets an explicit error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// Is reports whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// Message returns the user-facing message of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
