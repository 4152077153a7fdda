package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// AuthService handles self-registration and the two-phase login.
type AuthService struct {
	Store  store.Store
	Cipher SecretCipher
	TOTP   TOTP

	// Sessions signs a token on successful login. Optional; without it
	// a successful login returns only the user.
	Sessions *SessionIssuer
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
	Token    string
}

// LoginResult is either a completed login (User, optional Session) or a
// pending one awaiting a TOTP code (RequiresTwoFactor, UserID).
type LoginResult struct {
	RequiresTwoFactor bool
	UserID            string
	User              domain.SanitizedUser
	Session           *Session
}

// Register creates a pending user account. Nobody can sign in with it until
// an admin approves it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.SanitizedUser, error) {
	l := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if err := errors.Join(required("name", name), required("email", email)); err != nil {
		return domain.SanitizedUser{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.SanitizedUser{}, err
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.SanitizedUser{}, ErrConflict
	case !errors.Is(err, store.ErrNotFound):
		l.Error("failed to look up email", slogx.Error(err))
		return domain.SanitizedUser{}, storageErr("get user by email", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.SanitizedUser{}, validationErr(err.Error())
	}

	u, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusPending,
	})
	if err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.SanitizedUser{}, ErrConflict
		}
		l.Error("failed to create user", slogx.Error(err))
		return domain.SanitizedUser{}, storageErr("create user", err)
	}

	l.Info("user registered", slogx.UserID(u.ID))
	return u.Sanitize(), nil
}

// Login verifies a password and, when the account has an active second
// factor, a TOTP code. Without a code it answers with a pending result; a
// wrong code returns the pending result together with ErrInvalidTwoFactorCode
// so the client can retry.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, validationErr("email and password are required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("failed to look up user for login", slogx.Error(err))
			return LoginResult{}, storageErr("get user by email", err)
		}
		checkPassword(nil, in.Password)
		l.Info("login failed: unknown email")
		return LoginResult{}, ErrInvalidCredentials
	}

	if !checkPassword(&u, in.Password) {
		l.Info("login failed: bad password", slogx.UserID(u.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	if u.Status != domain.StatusApproved {
		l.Info("login refused: account not approved",
			slogx.UserID(u.ID),
			slog.String("status", string(u.Status)),
		)
		return LoginResult{}, ErrNotApproved
	}

	amr := []string{jwtx.AMRPassword}
	if secret, on := effectiveTwoFactor(ctx, s.Cipher, u); on {
		pending := LoginResult{RequiresTwoFactor: true, UserID: u.ID}

		code := strings.TrimSpace(in.Token)
		if code == "" {
			return pending, nil
		}
		if !s.TOTP.Verify(code, secret) {
			l.Info("login failed: bad two-factor code", slogx.UserID(u.ID))
			return pending, ErrInvalidTwoFactorCode
		}
		amr = append(amr, jwtx.AMROTP, jwtx.AMRMFA)
	}

	res := LoginResult{User: u.Sanitize()}
	if s.Sessions != nil {
		sess, err := s.Sessions.Issue(u, amr)
		if err != nil {
			l.Error("failed to issue session", slogx.UserID(u.ID), slogx.Error(err))
			return LoginResult{}, err
		}
		res.Session = &sess
	}

	l.Info("login succeeded", slogx.UserID(u.ID), slog.Any("amr", amr))
	return res, nil
}
