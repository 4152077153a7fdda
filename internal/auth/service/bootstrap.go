package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin on an empty deployment. It
// requires a pre-shared token and refuses once any admin exists.
type BootstrapService struct {
	Store store.Store
	Token string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Users().CountAdmins(ctx)
	if err != nil {
		return false, storageErr("count admins", err)
	}
	return n > 0, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req domain.BootstrapData) (domain.SanitizedUser, error) {
	l := slogx.FromContext(ctx)

	if s.Token == "" {
		return domain.SanitizedUser{}, ErrBootstrapDisabled
	}
	if !cryptox.TokensEqual(token, s.Token) {
		slogx.Security(ctx, "unauthorized bootstrap attempt")
		return domain.SanitizedUser{}, ErrBootstrapUnauthorized
	}

	name := strings.TrimSpace(req.AdminName)
	email := domain.NormalizeEmail(req.AdminEmail)
	if err := errors.Join(required("name", name), required("email", email)); err != nil {
		return domain.SanitizedUser{}, err
	}
	if err := validatePassword(req.AdminPassword); err != nil {
		return domain.SanitizedUser{}, err
	}

	hash, err := cryptox.HashPassword(req.AdminPassword)
	if err != nil {
		return domain.SanitizedUser{}, validationErr(err.Error())
	}

	var admin domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Users().CountAdmins(ctx)
		if err != nil {
			return storageErr("count admins", err)
		}
		if n > 0 {
			return ErrBootstrapAlready
		}

		admin, err = tx.Users().CreateUser(ctx, domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			Status:       domain.StatusApproved,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrConflict
		}
		if err != nil {
			return storageErr("create admin", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		}
		return domain.SanitizedUser{}, err
	}

	l.Info("successfully bootstrapped system", slogx.UserID(admin.ID))
	return admin.Sanitize(), nil
}
