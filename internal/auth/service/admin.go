package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
)

// AdminService holds the operations only an approved admin may perform.
type AdminService struct {
	Store  store.Store
	Cipher SecretCipher
	TOTP   TOTP
	QR     QRRenderer
	Now    func() time.Time
}

// Approval is returned once to the admin, who hands the enrollment to the user.
type Approval struct {
	Enrollment
	UserEmail string
	UserName  string
}

func (s *AdminService) requireAdmin(ctx context.Context, adminID string) (domain.User, error) {
	if err := required("adminId", adminID); err != nil {
		return domain.User{}, err
	}

	admin, err := s.Store.Users().GetUserByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrForbidden
		}
		return domain.User{}, storageErr("get admin", err)
	}
	if admin.Role != domain.RoleAdmin || admin.Status != domain.StatusApproved {
		slogx.Security(ctx, "non-admin attempted an admin action", slogx.UserID(adminID))
		return domain.User{}, ErrForbidden
	}
	return admin, nil
}

func (s *AdminService) getTarget(ctx context.Context, userID string) (domain.User, error) {
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

// Approve marks the user approved and provisions a fresh TOTP secret, which
// is switched on immediately without the user confirming a code. Approving
// an already approved user rotates the secret.
func (s *AdminService) Approve(ctx context.Context, adminID, userID string) (Approval, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.requireAdmin(ctx, adminID); err != nil {
		return Approval{}, err
	}
	u, err := s.getTarget(ctx, userID)
	if err != nil {
		return Approval{}, err
	}

	enr, sealed, err := enroller{Cipher: s.Cipher, TOTP: s.TOTP, QR: s.QR}.newEnrollment(u.Email)
	if err != nil {
		l.Error("failed to provision totp for approval", slogx.UserID(u.ID), slogx.Error(err))
		return Approval{}, err
	}

	now := nowUTC(s.Now)
	err = s.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		Status:           domain.Some(domain.StatusApproved),
		TOTPSecret:       domain.Some(&sealed),
		TwoFactorEnabled: domain.Some(true),
		TOTPConfirmedAt:  domain.Some(&now),
	})
	if err != nil {
		err = updateErr(err)
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to approve user", slogx.UserID(u.ID), slogx.Error(err))
		}
		return Approval{}, err
	}

	l.Info("user approved",
		slogx.UserID(u.ID),
		slog.String("admin_id", adminID),
		slog.Bool("rotated_secret", u.TOTPSecret != nil),
	)
	return Approval{Enrollment: enr, UserEmail: u.Email, UserName: u.Name}, nil
}

// Reject marks the user rejected. Existing second-factor state is left as is.
func (s *AdminService) Reject(ctx context.Context, adminID, userID string) error {
	l := slogx.FromContext(ctx)

	if _, err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	u, err := s.getTarget(ctx, userID)
	if err != nil {
		return err
	}

	err = s.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		Status: domain.Some(domain.StatusRejected),
	})
	if err != nil {
		err = updateErr(err)
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to reject user", slogx.UserID(u.ID), slogx.Error(err))
		}
		return err
	}

	l.Info("user rejected", slogx.UserID(u.ID), slog.String("admin_id", adminID))
	return nil
}

// ListUsers returns every account, oldest first.
func (s *AdminService) ListUsers(ctx context.Context, adminID string) ([]domain.SanitizedUser, error) {
	if _, err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", slogx.Error(err))
		return nil, storageErr("list users", err)
	}

	out := make([]domain.SanitizedUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitize())
	}
	return out, nil
}
