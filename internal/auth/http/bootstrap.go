package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

var (
	errBootstrapDisabled = &authsdk.APIError{
		StatusCode: http.StatusNotFound,
		Code:       authsdk.ErrorCodeNotFound,
		Message:    "Bootstrap endpoint is not enabled",
	}
	errBootstrapToken = &authsdk.APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       authsdk.ErrorCodeInvalidToken,
		Message:    "Invalid or missing bootstrap token",
	}
	errBootstrapDone = &authsdk.APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       authsdk.ErrorCodeInvalidToken,
		Message:    "System has already been bootstrapped",
	}
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the first administrator
//	@Description	Creates the first approved admin. Only available when a bootstrap token is configured, and only until an admin exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		authsdk.BootstrapRequest	true	"Administrator account"
//	@Success		201					{object}	authsdk.BootstrapResponse	"Administrator created"
//	@Failure		400					{object}	authsdk.APIError			"Invalid request body"
//	@Failure		401					{object}	authsdk.APIError			"Bad token or already bootstrapped"
//	@Failure		404					{object}	authsdk.APIError			"Bootstrap not enabled"
//	@Failure		409					{object}	authsdk.APIError			"Email already registered"
//	@Router			/api/auth/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if h.BootstrapService.Token == "" {
		errBootstrapDisabled.WriteError(w)
		return
	}

	token := r.Header.Get(authsdk.BootstrapTokenHeader)
	if token == "" {
		errBootstrapToken.WriteError(w)
		return
	}

	var req authsdk.BootstrapRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.BootstrapData{
		AdminName:     req.Name,
		AdminEmail:    req.Email,
		AdminPassword: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			errBootstrapDisabled.WriteError(w)
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			errBootstrapToken.WriteError(w)
		case errors.Is(err, service.ErrBootstrapAlready):
			errBootstrapDone.WriteError(w)
		default:
			writeError(w, r, err)
		}
		return
	}

	l.Info("bootstrap complete", slogx.UserID(admin.ID))
	httpx.WriteJSON(w, http.StatusCreated, authsdk.BootstrapResponse{
		Success: true,
		UserID:  admin.ID,
	})
}
