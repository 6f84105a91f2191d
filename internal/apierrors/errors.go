package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInvalidFile          = "INVALID_FILE"
	CodeFileRequired         = "FILE_REQUIRED"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
	CodeInvalidID            = "INVALID_ID"
	CodeNotFound             = "NOT_FOUND"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeLeadIDExists         = "LEAD_ID_EXISTS"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeInvalidReferral      = "INVALID_REFERRAL"
	CodeReferralCodeRequired = "REFERRAL_CODE_REQUIRED"
	CodeInvalidEmailType     = "INVALID_EMAIL_TYPE"
	CodeFilterRequired       = "FILTER_REQUIRED"
	CodeNoRecipients         = "NO_RECIPIENTS"
	CodeInvalidSignature     = "INVALID_SIGNATURE"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodeAIServiceError       = "AI_SERVICE_ERROR"
	CodeEmailServiceError    = "EMAIL_SERVICE_ERROR"
	CodeQueueError           = "QUEUE_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
)

// APIError is an error that carries the HTTP status and client-facing code and message.
// Err holds the internal cause and is never sent to clients.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func RequestEntityTooLarge(message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodeFileTooLarge, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable wraps a failure of an external dependency
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError returns a sanitized 500 - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
