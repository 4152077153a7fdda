package authsdk

import "time"

// ============================================================================
// User Types
// ============================================================================

// User is the sanitized view of an account. It never carries the password
// hash or the sealed TOTP secret.
type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role" example:"user"`
	Status           string     `json:"status" example:"approved"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	TOTPConfirmedAt  *time.Time `json:"totpConfirmedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// SuccessResponse is the body of endpoints that only report success.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Registration and Login
// ============================================================================

// RegisterRequest creates a pending account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned with 201 Created.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest carries the credentials and, on the second phase, the TOTP code.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token,omitempty"`
}

// LoginResponse is either a completed login (Success, User, AccessToken) or
// a pending second-factor challenge (RequiresTwoFactor, UserID).
type LoginResponse struct {
	Success           bool   `json:"success"`
	RequiresTwoFactor bool   `json:"requiresTwoFactor"`
	UserID            string `json:"userId,omitempty"`
	User              *User  `json:"user,omitempty"`

	AccessToken string `json:"accessToken,omitempty"`
	TokenType   string `json:"tokenType,omitempty"`
	ExpiresIn   int    `json:"expiresIn,omitempty"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// ============================================================================
// Two-factor Types
// ============================================================================

// TOTPSetupRequest starts a self-service enrollment.
type TOTPSetupRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// EnrollmentResponse carries the plaintext secret. It is only ever returned
// once, at enrollment time.
type EnrollmentResponse struct {
	Success     bool   `json:"success"`
	Secret      string `json:"secret" example:"JBSWY3DPEHPK3PXP"`
	OtpauthURL  string `json:"otpauthUrl" example:"otpauth://totp/SimRacing%20Operations%20Hub:alice@example.com?issuer=SimRacing+Operations+Hub&secret=JBSWY3DPEHPK3PXP"`
	QRCodeImage string `json:"qrCodeImage" example:"data:image/png;base64,iVBORw0KGgo..."`
}

// TOTPVerifyRequest confirms an enrollment.
type TOTPVerifyRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// TOTPDisableRequest turns two-factor authentication off.
type TOTPDisableRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Token    string `json:"token,omitempty"`
}

// ============================================================================
// Admin Types
// ============================================================================

// AdminActionRequest names the acting administrator and the target user.
type AdminActionRequest struct {
	UserID  string `json:"userId"`
	AdminID string `json:"adminId"`
}

// AdminApproveResponse is an EnrollmentResponse for the approved user,
// returned to the administrator to relay out-of-band.
type AdminApproveResponse struct {
	EnrollmentResponse
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
}

// ListUsersResponse is returned by GET /api/auth/users.
type ListUsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

// ============================================================================
// Bootstrap Types
// ============================================================================

// BootstrapRequest creates the first approved administrator.
type BootstrapRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapResponse contains the ID of the created administrator.
type BootstrapResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the session token signing capability status
	Signer string `json:"signer"`
}
