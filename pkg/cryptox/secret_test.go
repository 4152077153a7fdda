package cryptox_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T, key []byte) *cryptox.SecretCipher {
	t.Helper()
	c, err := cryptox.NewSecretCipher(key)
	require.NoError(t, err)
	return c
}

func TestParseSecretKey(t *testing.T) {
	raw := strings.Repeat("k", 32)
	encoded := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))

	t.Run("raw 32 byte string used verbatim", func(t *testing.T) {
		key, err := cryptox.ParseSecretKey(raw)
		require.NoError(t, err)
		require.Equal(t, []byte(raw), key)
	})

	t.Run("base64 decoded", func(t *testing.T) {
		key, err := cryptox.ParseSecretKey(encoded)
		require.NoError(t, err)
		require.Equal(t, bytes.Repeat([]byte{0x42}, 32), key)
	})

	t.Run("unpadded base64 decoded", func(t *testing.T) {
		key, err := cryptox.ParseSecretKey(strings.TrimRight(encoded, "="))
		require.NoError(t, err)
		require.Len(t, key, 32)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := cryptox.ParseSecretKey("")
		require.ErrorIs(t, err, cryptox.ErrSecretKeyMissing)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := cryptox.ParseSecretKey("too-short")
		require.ErrorIs(t, err, cryptox.ErrInvalidSecretKey)

		_, err = cryptox.ParseSecretKey(base64.StdEncoding.EncodeToString(make([]byte, 16)))
		require.ErrorIs(t, err, cryptox.ErrInvalidSecretKey)
	})
}

func TestNewSecretCipherRejectsShortKey(t *testing.T) {
	_, err := cryptox.NewSecretCipher(make([]byte, 16))
	require.ErrorIs(t, err, cryptox.ErrInvalidSecretKey)
}

func TestSealOpenRoundTrip(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{1}, 32))

	inputs := []string{
		"JBSWY3DPEHPK3PXP",
		"a",
		strings.Repeat("x", 1024),
		"unicode ✓ секрет",
	}

	for _, in := range inputs {
		token, err := c.Seal(in)
		require.NoError(t, err)
		require.Len(t, strings.Split(token, ":"), 3)

		out, err := c.Open(token)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestSealIsNonDeterministic(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{2}, 32))

	a, err := c.Seal("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	b, err := c.Seal("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NotEqual(t, strings.Split(a, ":")[0], strings.Split(b, ":")[0], "nonces must differ")
}

func TestSealRejectsEmptyPlaintext(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{3}, 32))

	_, err := c.Seal("")
	require.ErrorIs(t, err, cryptox.ErrEmptyPlaintext)
}

func TestOpenEmptyToken(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{3}, 32))

	out, err := c.Open("")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestOpenRejectsTampering(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{4}, 32))

	token, err := c.Seal("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	flip := func(field int) string {
		parts := strings.Split(token, ":")
		b, err := base64.StdEncoding.DecodeString(parts[field])
		require.NoError(t, err)
		b[0] ^= 0x01
		parts[field] = base64.StdEncoding.EncodeToString(b)
		return strings.Join(parts, ":")
	}

	t.Run("flipped ciphertext bit", func(t *testing.T) {
		out, err := c.Open(flip(1))
		require.ErrorIs(t, err, cryptox.ErrSecretAuthentication)
		require.Empty(t, out)
	})

	t.Run("flipped tag bit", func(t *testing.T) {
		out, err := c.Open(flip(2))
		require.ErrorIs(t, err, cryptox.ErrSecretAuthentication)
		require.Empty(t, out)
	})

	t.Run("flipped nonce bit", func(t *testing.T) {
		out, err := c.Open(flip(0))
		require.ErrorIs(t, err, cryptox.ErrSecretAuthentication)
		require.Empty(t, out)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := newTestCipher(t, bytes.Repeat([]byte{5}, 32))
		out, err := other.Open(token)
		require.ErrorIs(t, err, cryptox.ErrSecretAuthentication)
		require.Empty(t, out)
	})
}

func TestOpenRejectsMalformed(t *testing.T) {
	c := newTestCipher(t, bytes.Repeat([]byte{6}, 32))

	cases := map[string]string{
		"single field":      "abc",
		"two fields":        "abc:def",
		"empty field":       "abc::def",
		"four fields":       "a:b:c:d",
		"invalid base64":    "!!!:???:***",
		"short nonce":       base64.StdEncoding.EncodeToString([]byte("n")) + ":YQ==:" + base64.StdEncoding.EncodeToString(make([]byte, 16)),
		"only separators":   "::",
		"trailing newline":  "YQ==:YQ==:YQ==\n",
		"whitespace fields": " : : ",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := c.Open(token)
			require.ErrorIs(t, err, cryptox.ErrMalformedSecret)
			require.Empty(t, out)
		})
	}
}

// The stored layout is nonce, ciphertext and tag as separate fields; a token
// assembled directly from a GCM seal must open.
func TestOpenAcceptsExternallySealedToken(t *testing.T) {
	key := []byte(strings.Repeat("0123456789abcdef", 2))
	c := newTestCipher(t, key)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := bytes.Repeat([]byte{9}, gcm.NonceSize())
	sealed := gcm.Seal(nil, nonce, []byte("GEZDGNBVGY3TQOJQ"), nil)
	body, tag := sealed[:len(sealed)-gcm.Overhead()], sealed[len(sealed)-gcm.Overhead():]

	token := base64.StdEncoding.EncodeToString(nonce) + ":" +
		base64.StdEncoding.EncodeToString(body) + ":" +
		base64.StdEncoding.EncodeToString(tag)

	out, err := c.Open(token)
	require.NoError(t, err)
	require.Equal(t, "GEZDGNBVGY3TQOJQ", out)
}
