package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	req := domain.BootstrapData{AdminName: "Root", AdminEmail: "Root@Example.com", AdminPassword: "root-pass"}

	t.Run("disabled without a token", func(t *testing.T) {
		svc := &BootstrapService{Store: s}
		_, err := svc.Bootstrap(ctx, "", req)
		require.ErrorIs(t, err, ErrBootstrapDisabled)
	})

	svc := &BootstrapService{Store: s, Token: "let-me-in"}

	t.Run("wrong token", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "nope", req)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "let-me-in", domain.BootstrapData{AdminEmail: "a@example.com"})
		require.ErrorIs(t, err, ErrValidation)
	})

	done, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, done)

	admin, err := svc.Bootstrap(ctx, "let-me-in", req)
	require.NoError(t, err)
	require.Equal(t, "root@example.com", admin.Email)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.Equal(t, domain.StatusApproved, admin.Status)

	done, err = svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, done)

	_, err = svc.Bootstrap(ctx, "let-me-in", domain.BootstrapData{AdminName: "Two", AdminEmail: "two@example.com", AdminPassword: "x"})
	require.ErrorIs(t, err, ErrBootstrapAlready)

	// The new admin can act straight away.
	f := &AdminService{Store: s}
	users, err := f.ListUsers(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	me, err := f.users.Me(ctx, f.adminID)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", me.Email)

	_, err = f.users.Me(ctx, "01JUNKNOWNUSER00000000000")
	require.ErrorIs(t, err, ErrNotFound)

	pending := f.seedUser(t, "pending@example.com", "x", domain.RoleUser, domain.StatusPending)
	_, err = f.users.Me(ctx, pending.ID)
	require.ErrorIs(t, err, ErrNotApproved)
}
