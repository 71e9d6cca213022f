package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("missing required fields")
	// ErrDuplicateAttendee is returned when email or mobile is already registered.
	ErrDuplicateAttendee = errors.New("email or mobile already registered")
	// ErrAttendeeNotFound is returned when the targeted attendee does not exist.
	ErrAttendeeNotFound = errors.New("attendee not found")
	// ErrBarcodeNotFound is returned when no attendee carries the scanned barcode.
	ErrBarcodeNotFound = errors.New("barcode not found")
	// ErrAlreadyScanned is returned when a badge is scanned a second time.
	ErrAlreadyScanned = errors.New("already scanned")
	// ErrAllocationExhausted is returned when barcode allocation hits its retry bound.
	ErrAllocationExhausted = errors.New("barcode allocation exhausted")
	// ErrImportParse is returned when the uploaded CSV stream is malformed.
	ErrImportParse = errors.New("csv parsing error")
	// ErrInvalidCredentials is returned when the admin login pair is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	case errors.Is(err, ErrDuplicateAttendee):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_ATTENDEE")
	case errors.Is(err, ErrAttendeeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ATTENDEE_NOT_FOUND")
	case errors.Is(err, ErrBarcodeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BARCODE_NOT_FOUND")
	case errors.Is(err, ErrAlreadyScanned):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SCANNED")
	case errors.Is(err, ErrImportParse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "IMPORT_PARSE_ERROR")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrAllocationExhausted):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "ALLOCATION_EXHAUSTED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
