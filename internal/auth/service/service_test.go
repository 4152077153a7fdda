package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
	"github.com/aussiebroadwan/pitwall/pkg/qrcode"
	"github.com/aussiebroadwan/pitwall/pkg/totpx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://auth.pitwall.test"

type fixture struct {
	store  *sqlite.Store
	cipher *cryptox.SecretCipher
	totp   *totpx.Engine
	keys   *jwtx.KeyManager
	clock  time.Time

	auth    *AuthService
	admin   *AdminService
	tf      *TwoFactorService
	users   *UserService
	adminID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	cipher, err := cryptox.NewSecretCipher(bytes.Repeat([]byte{0x42}, cryptox.SecretKeySize))
	require.NoError(t, err)

	f := &fixture{
		store:  s,
		cipher: cipher,
		clock:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	now := func() time.Time { return f.clock }

	f.totp = &totpx.Engine{Issuer: "Pitwall Test", Now: now}

	f.keys, err = jwtx.NewEphemeralKeyManager(testIssuer)
	require.NoError(t, err)
	f.keys.Verifier.Now = now

	qr := qrcode.Renderer{Size: 128}
	f.auth = &AuthService{
		Store:  s,
		Cipher: cipher,
		TOTP:   f.totp,
		Sessions: &SessionIssuer{
			Signer: f.keys.Signer,
			Issuer: testIssuer,
			TTL:    time.Hour,
			Now:    now,
		},
	}
	f.admin = &AdminService{Store: s, Cipher: cipher, TOTP: f.totp, QR: qr, Now: now}
	f.tf = &TwoFactorService{
		Store:  s,
		Cipher: cipher,
		TOTP:   f.totp,
		QR:     qr,
		Policy: DisablePolicy{RequireCode: true},
		Now:    now,
	}
	f.users = &UserService{Store: s}

	f.adminID = f.seedUser(t, "admin@example.com", "admin-pass", domain.RoleAdmin, domain.StatusApproved).ID
	return f
}

func (f *fixture) seedUser(t *testing.T, email, password string, role domain.Role, status domain.Status) domain.User {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	u, err := f.store.Users().CreateUser(context.Background(), domain.User{
		Name:         "Seeded",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) code(t *testing.T, secret string) string {
	t.Helper()
	c, err := f.totp.Code(secret, f.clock)
	require.NoError(t, err)
	return c
}

func (f *fixture) wrongCode(t *testing.T, secret string) string {
	t.Helper()
	c, err := f.totp.Code(secret, f.clock.Add(-10*time.Minute))
	require.NoError(t, err)
	if c == f.code(t, secret) {
		return "000000"
	}
	return c
}

func (f *fixture) reload(t *testing.T, id string) domain.User {
	t.Helper()
	u, err := f.store.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}
