package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// AdminHandler handles account moderation. The acting admin is named in the
// request and checked by the service. When the request carries a session
// token, the named admin must be its subject.
type AdminHandler struct {
	AdminService *service.AdminService
}

// sessionMatches reports whether adminID agrees with the caller's session,
// writing a 403 when it does not. Requests without a session pass.
func sessionMatches(w http.ResponseWriter, r *http.Request, adminID string) bool {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok || claims.Subject == adminID {
		return true
	}
	slogx.Security(r.Context(), "admin id does not match session",
		slogx.UserID(claims.Subject), slog.String("admin_id", adminID))
	authsdk.ErrForbidden.WriteError(w)
	return false
}

// HandleApprove handles POST /api/auth/admin-approve
//
//	@Summary		Approve an account
//	@Description	Approves the user and provisions an active TOTP secret. The secret is returned once, for the admin to pass on.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AdminActionRequest		true	"Target user and acting admin"
//	@Success		200		{object}	authsdk.AdminApproveResponse	"Enrollment for the approved user"
//	@Failure		400		{object}	authsdk.APIError				"Missing fields"
//	@Failure		401		{object}	authsdk.APIError				"Session token invalid or required"
//	@Failure		403		{object}	authsdk.APIError				"Caller is not an approved admin"
//	@Failure		404		{object}	authsdk.APIError				"User not found"
//	@Router			/api/auth/admin-approve [post].
func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	var req authsdk.AdminActionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if !sessionMatches(w, r, req.AdminID) {
		return
	}

	appr, err := h.AdminService.Approve(r.Context(), req.AdminID, req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AdminApproveResponse{
		EnrollmentResponse: toEnrollment(appr.Enrollment),
		UserEmail:          appr.UserEmail,
		UserName:           appr.UserName,
	})
}

// HandleReject handles POST /api/auth/admin-reject
//
//	@Summary		Reject an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AdminActionRequest	true	"Target user and acting admin"
//	@Success		200		{object}	authsdk.SuccessResponse		"User rejected"
//	@Failure		400		{object}	authsdk.APIError			"Missing fields"
//	@Failure		401		{object}	authsdk.APIError			"Session token invalid or required"
//	@Failure		403		{object}	authsdk.APIError			"Caller is not an approved admin"
//	@Failure		404		{object}	authsdk.APIError			"User not found"
//	@Router			/api/auth/admin-reject [post].
func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	var req authsdk.AdminActionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if !sessionMatches(w, r, req.AdminID) {
		return
	}

	if err := h.AdminService.Reject(r.Context(), req.AdminID, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{Success: true, Message: "User rejected"})
}

// HandleListUsers handles GET /api/auth/users
//
//	@Summary		List accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			adminId	query		string						true	"Acting admin"
//	@Success		200		{object}	authsdk.ListUsersResponse	"All users, oldest first"
//	@Failure		400		{object}	authsdk.APIError			"Missing adminId"
//	@Failure		401		{object}	authsdk.APIError			"Session token invalid or required"
//	@Failure		403		{object}	authsdk.APIError			"Caller is not an approved admin"
//	@Router			/api/auth/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	adminID := r.URL.Query().Get("adminId")
	if !sessionMatches(w, r, adminID) {
		return
	}

	users, err := h.AdminService.ListUsers(r.Context(), adminID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := authsdk.ListUsersResponse{Success: true, Users: make([]authsdk.User, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, toSDKUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
