package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokensEqual(t *testing.T) {
	require.True(t, TokensEqual("bootstrap-token", "bootstrap-token"))
	require.False(t, TokensEqual("bootstrap-token", "bootstrap-tokem"))
	require.False(t, TokensEqual("short", "a-much-longer-token"))
	require.False(t, TokensEqual("", "bootstrap-token"))
}
