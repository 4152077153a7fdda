package authsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoginPendingIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req authsdk.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		httpx.WriteJSON(w, http.StatusOK, authsdk.LoginResponse{
			RequiresTwoFactor: true,
			UserID:            "01J0000000000000000000000A",
		})
	}))
	defer srv.Close()

	client := authsdk.NewSDKClient(srv.URL + "/")
	res, err := client.Login(context.Background(), authsdk.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.True(t, res.RequiresTwoFactor)
	require.Equal(t, "01J0000000000000000000000A", res.UserID)
	require.Nil(t, res.User)
}

func TestInvalidTwoFactorCodeCarriesRetryFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authsdk.ErrInvalidTwoFactorCode.With(true, "user-1").WriteError(w)
	}))
	defer srv.Close()

	_, err := authsdk.NewSDKClient(srv.URL).Login(context.Background(),
		authsdk.LoginRequest{Email: "a@b.c", Password: "pw", Token: "000000"})

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, authsdk.ErrorCodeInvalidTwoFactorCode, apiErr.Code)
	require.True(t, apiErr.RequiresTwoFactor)
	require.Equal(t, "user-1", apiErr.UserID)
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	authsdk.ErrConflict.WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t,
		`{"success":false,"error":"conflict","message":"An account with this email already exists"}`,
		rec.Body.String())

	// With must not mutate the shared sentinel.
	_ = authsdk.ErrInvalidTwoFactorCode.With(true, "x")
	require.False(t, authsdk.ErrInvalidTwoFactorCode.RequiresTwoFactor)
}

func TestNonJSONErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := authsdk.NewSDKClient(srv.URL).GetLiveness(context.Background())

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, authsdk.ErrorCodeServerError, apiErr.Code)
}

func TestBootstrapSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "s3cret", r.Header.Get(authsdk.BootstrapTokenHeader))
		httpx.WriteJSON(w, http.StatusCreated, authsdk.BootstrapResponse{Success: true, UserID: "admin-1"})
	}))
	defer srv.Close()

	res, err := authsdk.NewSDKClient(srv.URL).Bootstrap(context.Background(), "s3cret",
		authsdk.BootstrapRequest{Name: "Admin", Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "admin-1", res.UserID)
}

func TestListUsersEscapesAdminID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "a b&c", r.URL.Query().Get("adminId"))
		httpx.WriteJSON(w, http.StatusOK, authsdk.ListUsersResponse{
			Success: true,
			Users:   []authsdk.User{{ID: "u1", Email: "x@y.z"}},
		})
	}))
	defer srv.Close()

	res, err := authsdk.NewSDKClient(srv.URL).ListUsers(context.Background(), "a b&c")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
}

func TestAdminApproveFlattensEnrollment(t *testing.T) {
	body := `{"success":true,"secret":"JBSWY3DPEHPK3PXP","otpauthUrl":"otpauth://totp/x","qrCodeImage":"data:image/png;base64,AA==","userEmail":"alice@example.com","userName":"Alice"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	res, err := authsdk.NewSDKClient(srv.URL).AdminApprove(context.Background(),
		authsdk.AdminActionRequest{UserID: "u1", AdminID: "a1"})
	require.NoError(t, err)
	require.Equal(t, "JBSWY3DPEHPK3PXP", res.Secret)
	require.Equal(t, "alice@example.com", res.UserEmail)
}

func TestReadinessDegradedKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/readyz", r.URL.Path)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, authsdk.HealthResponse{
			Status: "degraded",
			Checks: &authsdk.HealthChecks{Database: "error: closed", Signer: "ok"},
		})
	}))
	defer srv.Close()

	health, err := authsdk.NewSDKClient(srv.URL).GetReadiness(context.Background())
	require.ErrorIs(t, err, authsdk.ErrNotReady)
	require.NotNil(t, health)
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "error: closed", health.Checks.Database)
}
