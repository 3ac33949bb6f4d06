package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Entity errors
var (
	ErrNewsNotFound       = errors.New("news not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrProfNotFound       = errors.New("faculty union not found")
	ErrUnitNotFound       = errors.New("unit not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Head assignment errors
var (
	// ErrHeadNotEligible is returned when the referenced member is not a
	// profburo head.
	ErrHeadNotEligible = errors.New("team member is not a profburo head")
	// ErrHeadAlreadyAssigned is returned when the member already heads
	// another faculty union.
	ErrHeadAlreadyAssigned = errors.New("team member already heads another faculty union")
	// ErrHeadTypeLocked is returned when an update would change the type
	// of a member currently heading a faculty union.
	ErrHeadTypeLocked = errors.New("team member heads a faculty union and must remain a profburo head")
	// ErrMemberHeadsUnion is returned when deleting a member that still
	// heads a faculty union.
	ErrMemberHeadsUnion = errors.New("team member heads a faculty union and cannot be deleted")
)

// Upload errors
var (
	ErrFileMissing  = errors.New("no file provided")
	ErrInvalidImage = errors.New("file is not a valid image")
)

// CustomError carries an underlying sentinel plus a request-specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps ErrValidationFailed with a field-level message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewBadRequestError wraps ErrBadRequest with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
