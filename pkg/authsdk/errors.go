package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/pitwall/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeValidation              = "validation_error"
	ErrorCodeInvalidCredentials      = "invalid_credentials"
	ErrorCodeNotApproved             = "not_approved"
	ErrorCodeForbidden               = "forbidden"
	ErrorCodeNotFound                = "not_found"
	ErrorCodeConflict                = "conflict"
	ErrorCodeInvalidTwoFactorCode    = "invalid_two_factor_code"
	ErrorCodeTwoFactorNotInitialized = "two_factor_not_initialized"
	ErrorCodeTwoFactorCodeRequired   = "two_factor_code_required"
	ErrorCodeInvalidToken            = "invalid_token"
	ErrorCodeRateLimited             = "rate_limited"
	ErrorCodeServerError             = "server_error"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the failure body shared by every endpoint. It implements the
// error interface and is used both by the server (to write HTTP responses)
// and by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine readable error kind (e.g. "invalid_credentials")
	Code string `json:"error"`

	// Message is safe to show to an end user
	Message string `json:"message"`

	// RequiresTwoFactor and UserID are echoed on a failed second-factor
	// login so the caller can retry.
	RequiresTwoFactor bool   `json:"requiresTwoFactor,omitempty"`
	UserID            string `json:"userId,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes e as a JSON failure body.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, struct {
		Success bool `json:"success"`
		*APIError
	}{false, e})
}

// With returns a copy of e carrying the pending-login fields.
func (e *APIError) With(requiresTwoFactor bool, userID string) *APIError {
	c := *e
	c.RequiresTwoFactor = requiresTwoFactor
	c.UserID = userID
	return &c
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "Missing or invalid fields",
	}

	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "Request body must be valid JSON",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "Invalid email or password",
	}

	ErrNotApproved = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeNotApproved,
		Message:    "Account is awaiting approval",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "Administrator privileges required",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "User not found",
	}

	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "An account with this email already exists",
	}

	ErrInvalidTwoFactorCode = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidTwoFactorCode,
		Message:    "Invalid two-factor code",
	}

	ErrTwoFactorNotInitialized = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeTwoFactorNotInitialized,
		Message:    "Two-factor authentication has not been set up",
	}

	ErrTwoFactorCodeRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeTwoFactorCodeRequired,
		Message:    "A two-factor code is required",
	}

	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidToken,
		Message:    "Authentication required",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "Internal server error",
	}
)

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
