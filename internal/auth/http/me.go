package http

import (
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /api/auth/me
//
//	@Summary		Current user
//	@Description	Returns the signed-in user. Fails once the account is no longer approved.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MeResponse	"Sanitized user"
//	@Failure		401	{object}	authsdk.APIError	"Missing or invalid session token"
//	@Failure		403	{object}	authsdk.APIError	"Account not approved"
//	@Failure		404	{object}	authsdk.APIError	"User no longer exists"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		authsdk.ErrUnauthorized.WriteError(w)
		return
	}

	u, err := h.UserService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{Success: true, User: toSDKUser(u)})
}
