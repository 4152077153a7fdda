package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// apiError maps a service error to its wire form. Anything unrecognised is
// a server error; its detail stays in the log.
func apiError(err error) *authsdk.APIError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return authsdk.ErrValidation
	case errors.Is(err, service.ErrInvalidCredentials):
		return authsdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrNotApproved):
		return authsdk.ErrNotApproved
	case errors.Is(err, service.ErrForbidden):
		return authsdk.ErrForbidden
	case errors.Is(err, service.ErrNotFound):
		return authsdk.ErrNotFound
	case errors.Is(err, service.ErrConflict):
		return authsdk.ErrConflict
	case errors.Is(err, service.ErrInvalidTwoFactorCode):
		return authsdk.ErrInvalidTwoFactorCode
	case errors.Is(err, service.ErrTwoFactorNotInitialized):
		return authsdk.ErrTwoFactorNotInitialized
	case errors.Is(err, service.ErrTwoFactorCodeRequired):
		return authsdk.ErrTwoFactorCodeRequired
	default:
		return authsdk.ErrServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := apiError(err)
	if e.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slogx.Error(err))
	}
	e.WriteError(w)
}

func toSDKUser(u domain.SanitizedUser) authsdk.User {
	return authsdk.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		Status:           string(u.Status),
		TwoFactorEnabled: u.TwoFactorEnabled,
		TOTPConfirmedAt:  u.TOTPConfirmedAt,
		CreatedAt:        u.CreatedAt,
	}
}

func toEnrollment(e service.Enrollment) authsdk.EnrollmentResponse {
	return authsdk.EnrollmentResponse{
		Success:     true,
		Secret:      e.Secret,
		OtpauthURL:  e.OtpauthURL,
		QRCodeImage: e.QRCodeImage,
	}
}
