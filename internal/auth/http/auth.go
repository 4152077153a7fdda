package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register an account
//	@Description	Creates a pending account. An administrator must approve it before the user can sign in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest		true	"Name, email and password"
//	@Success		201		{object}	authsdk.RegisterResponse	"Account created, awaiting approval"
//	@Failure		400		{object}	authsdk.APIError			"Missing or invalid fields"
//	@Failure		409		{object}	authsdk.APIError			"Email already registered"
//	@Failure		429		{object}	authsdk.APIError			"Rate limited"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	u, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.RegisterResponse{
		Success: true,
		Message: "Registration successful. Your account is awaiting administrator approval.",
		UserID:  u.ID,
	})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Sign in
//	@Description	Two-phase login. When the account has two-factor authentication enabled and no token is sent,
//	@Description	the response has success=false and requiresTwoFactor=true; resend the credentials with the TOTP code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials and optional TOTP code"
//	@Success		200		{object}	authsdk.LoginResponse	"Signed in, or second factor required"
//	@Failure		400		{object}	authsdk.APIError		"Missing fields"
//	@Failure		401		{object}	authsdk.APIError		"Invalid credentials or two-factor code"
//	@Failure		403		{object}	authsdk.APIError		"Account not approved"
//	@Failure		429		{object}	authsdk.APIError		"Rate limited"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	res, err := h.AuthService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Token:    req.Token,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTwoFactorCode) {
			authsdk.ErrInvalidTwoFactorCode.With(true, res.UserID).WriteError(w)
			return
		}
		writeError(w, r, err)
		return
	}

	if res.RequiresTwoFactor {
		httpx.WriteJSON(w, http.StatusOK, authsdk.LoginResponse{
			RequiresTwoFactor: true,
			UserID:            res.UserID,
		})
		return
	}

	user := toSDKUser(res.User)
	out := authsdk.LoginResponse{Success: true, User: &user}
	if res.Session != nil {
		out.AccessToken = res.Session.AccessToken
		out.TokenType = res.Session.TokenType
		out.ExpiresIn = res.Session.ExpiresIn
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
