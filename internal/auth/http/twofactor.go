package http

import (
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
)

// TwoFactorHandler handles the self-service TOTP endpoints.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

// HandleSetup handles POST /api/auth/totp-setup
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a new secret after checking the password. The secret replaces any previous one and stays inactive until confirmed.
//	@Tags			TwoFactor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.TOTPSetupRequest	true	"User and password"
//	@Success		200		{object}	authsdk.EnrollmentResponse	"Secret, otpauth URL and QR code (shown once)"
//	@Failure		400		{object}	authsdk.APIError			"Missing fields"
//	@Failure		401		{object}	authsdk.APIError			"Invalid password"
//	@Failure		404		{object}	authsdk.APIError			"User not found"
//	@Router			/api/auth/totp-setup [post].
func (h *TwoFactorHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	var req authsdk.TOTPSetupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	enr, err := h.TwoFactorService.Setup(r.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEnrollment(enr))
}

// HandleVerify handles POST /api/auth/totp-verify
//
//	@Summary		Confirm TOTP enrollment
//	@Description	Verifies a code against the pending secret and enables two-factor authentication.
//	@Tags			TwoFactor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.TOTPVerifyRequest	true	"User and current code"
//	@Success		200		{object}	authsdk.SuccessResponse		"Two-factor enabled"
//	@Failure		400		{object}	authsdk.APIError			"Missing fields or no secret to confirm"
//	@Failure		401		{object}	authsdk.APIError			"Invalid code"
//	@Failure		404		{object}	authsdk.APIError			"User not found"
//	@Router			/api/auth/totp-verify [post].
func (h *TwoFactorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req authsdk.TOTPVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Confirm(r.Context(), req.UserID, req.Token); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{
		Success: true,
		Message: "Two-factor authentication enabled",
	})
}

// HandleDisable handles POST /api/auth/totp-disable
//
//	@Summary		Disable two-factor authentication
//	@Description	Clears the stored secret. Requires the password and, while two-factor is active, a current code.
//	@Tags			TwoFactor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.TOTPDisableRequest	true	"User, password and code"
//	@Success		200		{object}	authsdk.SuccessResponse		"Two-factor disabled"
//	@Failure		400		{object}	authsdk.APIError			"Missing fields or code required"
//	@Failure		401		{object}	authsdk.APIError			"Invalid password or code"
//	@Failure		404		{object}	authsdk.APIError			"User not found"
//	@Router			/api/auth/totp-disable [post].
func (h *TwoFactorHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	var req authsdk.TOTPDisableRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Disable(r.Context(), req.UserID, req.Password, req.Token); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{
		Success: true,
		Message: "Two-factor authentication disabled",
	})
}
