package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestApproveProvisionsActiveSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "bob@example.com", "bob-pass", domain.RoleUser, domain.StatusPending)

	appr, err := f.admin.Approve(ctx, f.adminID, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Seeded", appr.UserName)
	require.Contains(t, appr.OtpauthURL, "otpauth://totp/")
	require.Contains(t, appr.OtpauthURL, "secret="+appr.Secret)
	require.True(t, strings.HasPrefix(appr.QRCodeImage, "data:image/png;base64,"))

	stored := f.reload(t, u.ID)
	require.Equal(t, domain.StatusApproved, stored.Status)
	require.NotNil(t, stored.TOTPSecret)
	require.NotEqual(t, appr.Secret, *stored.TOTPSecret)

	plain, err := f.cipher.Open(*stored.TOTPSecret)
	require.NoError(t, err)
	require.Equal(t, appr.Secret, plain)

	// Switched on without the user ever confirming a code.
	require.True(t, stored.TwoFactorEnabled)
	require.NotNil(t, stored.TOTPConfirmedAt)
	require.True(t, f.clock.Equal(*stored.TOTPConfirmedAt))
}

func TestReapproveRotatesSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "carol@example.com", "carol-pass", domain.RoleUser, domain.StatusPending)

	first, err := f.admin.Approve(ctx, f.adminID, u.ID)
	require.NoError(t, err)
	second, err := f.admin.Approve(ctx, f.adminID, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	_, err = f.auth.Login(ctx, LoginInput{Email: u.Email, Password: "carol-pass", Token: f.code(t, first.Secret)})
	require.ErrorIs(t, err, ErrInvalidTwoFactorCode)

	res, err := f.auth.Login(ctx, LoginInput{Email: u.Email, Password: "carol-pass", Token: f.code(t, second.Secret)})
	require.NoError(t, err)
	require.Equal(t, u.ID, res.User.ID)
}

func TestAdminActionsRequireApprovedAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	target := f.seedUser(t, "target@example.com", "x", domain.RoleUser, domain.StatusPending)
	regular := f.seedUser(t, "regular@example.com", "x", domain.RoleUser, domain.StatusApproved)
	rejectedAdmin := f.seedUser(t, "exadmin@example.com", "x", domain.RoleAdmin, domain.StatusRejected)

	for _, id := range []string{regular.ID, rejectedAdmin.ID, "01JUNKNOWNADMIN0000000000"} {
		_, err := f.admin.Approve(ctx, id, target.ID)
		require.ErrorIs(t, err, ErrForbidden)

		require.ErrorIs(t, f.admin.Reject(ctx, id, target.ID), ErrForbidden)

		_, err = f.admin.ListUsers(ctx, id)
		require.ErrorIs(t, err, ErrForbidden)
	}

	_, err := f.admin.Approve(ctx, "", target.ID)
	require.ErrorIs(t, err, ErrValidation)

	// Nothing changed on the target.
	require.Equal(t, domain.StatusPending, f.reload(t, target.ID).Status)
	require.Nil(t, f.reload(t, target.ID).TOTPSecret)
}

func TestAdminActionsUnknownTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.Approve(ctx, f.adminID, "01JUNKNOWNUSER00000000000")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, f.admin.Reject(ctx, f.adminID, "01JUNKNOWNUSER00000000000"), ErrNotFound)
	require.ErrorIs(t, f.admin.Reject(ctx, f.adminID, ""), ErrValidation)
}

func TestRejectBlocksLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "dave@example.com", "dave-pass", domain.RoleUser, domain.StatusApproved)

	require.NoError(t, f.admin.Reject(ctx, f.adminID, u.ID))
	require.Equal(t, domain.StatusRejected, f.reload(t, u.ID).Status)

	_, err := f.auth.Login(ctx, LoginInput{Email: u.Email, Password: "dave-pass"})
	require.ErrorIs(t, err, ErrNotApproved)

	_, err = f.users.Me(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotApproved)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "one@example.com", "x", domain.RoleUser, domain.StatusPending)
	f.seedUser(t, "two@example.com", "x", domain.RoleUser, domain.StatusApproved)

	users, err := f.admin.ListUsers(ctx, f.adminID)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, f.adminID, users[0].ID)
	require.Equal(t, "one@example.com", users[1].Email)
	require.Equal(t, "two@example.com", users[2].Email)
}
