package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// DisablePolicy controls what turning 2FA off demands besides the password.
type DisablePolicy struct {
	// RequireCode refuses to disable an active second factor unless a
	// current TOTP code is supplied.
	RequireCode bool
}

// TwoFactorService is the self-service TOTP lifecycle: setup, confirm, disable.
//
// Setup and confirm are not serialised per user. If two setups race, the
// last write wins and a confirm against the earlier secret fails.
type TwoFactorService struct {
	Store  store.Store
	Cipher SecretCipher
	TOTP   TOTP
	QR     QRRenderer
	Policy DisablePolicy
	Now    func() time.Time
}

func (s *TwoFactorService) loadUser(ctx context.Context, userID string) (domain.User, error) {
	if err := required("userId", userID); err != nil {
		return domain.User{}, err
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, storageErr("get user", err)
	}
	return u, nil
}

// authenticate loads the user and checks their password.
func (s *TwoFactorService) authenticate(ctx context.Context, userID, password string) (domain.User, error) {
	if password == "" {
		return domain.User{}, validationErr("password is required")
	}
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !checkPassword(&u, password) {
		slogx.FromContext(ctx).Info("two-factor change refused: bad password", slogx.UserID(u.ID))
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Setup generates a new unconfirmed secret, replacing any previous one. The
// second factor stays off until Confirm succeeds.
func (s *TwoFactorService) Setup(ctx context.Context, userID, password string) (Enrollment, error) {
	l := slogx.FromContext(ctx)

	u, err := s.authenticate(ctx, userID, password)
	if err != nil {
		return Enrollment{}, err
	}

	enr, sealed, err := enroller{Cipher: s.Cipher, TOTP: s.TOTP, QR: s.QR}.newEnrollment(u.Email)
	if err != nil {
		l.Error("failed to provision totp", slogx.UserID(u.ID), slogx.Error(err))
		return Enrollment{}, err
	}

	err = s.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		TOTPSecret:       domain.Some(&sealed),
		TwoFactorEnabled: domain.Some(false),
		TOTPConfirmedAt:  domain.Some[*time.Time](nil),
	})
	if err != nil {
		err = updateErr(err)
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to store totp secret", slogx.UserID(u.ID), slogx.Error(err))
		}
		return Enrollment{}, err
	}

	l.Info("totp setup started", slogx.UserID(u.ID))
	return enr, nil
}

// Confirm checks a code against the stored secret and switches the second
// factor on. Confirming an already active secret refreshes its timestamp.
func (s *TwoFactorService) Confirm(ctx context.Context, userID, code string) error {
	l := slogx.FromContext(ctx)

	code = strings.TrimSpace(code)
	if err := required("token", code); err != nil {
		return err
	}
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	secret, ok := openSecret(ctx, s.Cipher, u)
	if !ok {
		return ErrTwoFactorNotInitialized
	}
	if !s.TOTP.Verify(code, secret) {
		l.Info("totp confirmation failed", slogx.UserID(u.ID))
		return ErrInvalidTwoFactorCode
	}

	now := nowUTC(s.Now)
	err = s.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		TwoFactorEnabled: domain.Some(true),
		TOTPConfirmedAt:  domain.Some(&now),
	})
	if err != nil {
		err = updateErr(err)
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to enable totp", slogx.UserID(u.ID), slogx.Error(err))
		}
		return err
	}

	l.Info("totp enabled", slogx.UserID(u.ID))
	return nil
}

// Disable clears the secret and turns the second factor off. An active
// factor needs a valid code as well as the password, unless the policy says
// otherwise or the stored secret can no longer be opened.
func (s *TwoFactorService) Disable(ctx context.Context, userID, password, code string) error {
	l := slogx.FromContext(ctx)

	u, err := s.authenticate(ctx, userID, password)
	if err != nil {
		return err
	}

	code = strings.TrimSpace(code)
	if secret, on := effectiveTwoFactor(ctx, s.Cipher, u); on {
		switch {
		case code != "":
			if !s.TOTP.Verify(code, secret) {
				l.Info("totp disable failed: bad code", slogx.UserID(u.ID))
				return ErrInvalidTwoFactorCode
			}
		case s.Policy.RequireCode:
			return ErrTwoFactorCodeRequired
		}
	}

	err = s.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		TOTPSecret:       domain.Some[*string](nil),
		TwoFactorEnabled: domain.Some(false),
		TOTPConfirmedAt:  domain.Some[*time.Time](nil),
	})
	if err != nil {
		err = updateErr(err)
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to disable totp", slogx.UserID(u.ID), slogx.Error(err))
		}
		return err
	}

	slogx.Security(ctx, "totp disabled", slogx.UserID(u.ID))
	return nil
}
