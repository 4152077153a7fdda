package authsdk

import (
	"context"
	"net/http"
)

// SetupTOTP starts (or restarts) enrollment. Any active second factor is
// deactivated until ConfirmTOTP succeeds.
func (c *SDKClient) SetupTOTP(ctx context.Context, req TOTPSetupRequest) (*EnrollmentResponse, error) {
	var out EnrollmentResponse
	if err := c.postJSON(ctx, "/api/auth/totp-setup", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmTOTP activates the pending secret with a current code.
func (c *SDKClient) ConfirmTOTP(ctx context.Context, req TOTPVerifyRequest) (*SuccessResponse, error) {
	var out SuccessResponse
	if err := c.postJSON(ctx, "/api/auth/totp-verify", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// DisableTOTP removes the second factor.
func (c *SDKClient) DisableTOTP(ctx context.Context, req TOTPDisableRequest) (*SuccessResponse, error) {
	var out SuccessResponse
	if err := c.postJSON(ctx, "/api/auth/totp-disable", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
