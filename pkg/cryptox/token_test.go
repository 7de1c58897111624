package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTokenSizes(t *testing.T) {
	for _, size := range []int{TokenSize128, TokenSize256, TokenSize512} {
		token, err := GenerateToken(size)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, size)
	}
}

func TestGenerateTokenRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -32} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}

func TestFingerprintTokenDeterministic(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	fp1 := FingerprintToken(token)
	fp2 := FingerprintToken(token)
	require.Equal(t, fp1, fp2)
	require.NotEqual(t, token, fp1)

	other := FingerprintToken("a different token")
	require.NotEqual(t, fp1, other)
}
