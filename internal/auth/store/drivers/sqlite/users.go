package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/internal/auth/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/pitwall/pkg/idx"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = idx.NewAt(now).String()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Status == "" {
		u.Status = domain.StatusPending
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = u.CreatedAt

	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Role:                string(u.Role),
		Status:              string(u.Status),
		TotpSecretEncrypted: mapOptionalString(u.TOTPSecret),
		TwoFactorEnabled:    u.TwoFactorEnabled,
		TotpConfirmedAt:     mapOptionalTime(u.TOTPConfirmedAt),
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	})
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, p domain.UserPatch) error {
	n, err := r.q.UpdateUser(ctx, gen.UpdateUserParams{
		SetStatus:           p.Status.Set,
		Status:              string(p.Status.Value),
		SetTotpSecret:       p.TOTPSecret.Set,
		TotpSecretEncrypted: mapOptionalString(p.TOTPSecret.Value),
		SetTwoFactorEnabled: p.TwoFactorEnabled.Set,
		TwoFactorEnabled:    p.TwoFactorEnabled.Value,
		SetTotpConfirmedAt:  p.TOTPConfirmedAt.Set,
		TotpConfirmedAt:     mapOptionalTime(p.TOTPConfirmedAt.Value),
		UpdatedAt:           time.Now().UTC(),
		ID:                  id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

func (r *usersRepo) CountAdmins(ctx context.Context) (int64, error) {
	return r.q.CountAdmins(ctx)
}
