package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-test-*")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("velvet-hanger-9")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Contains(t, parts[3], "m=")
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	const password = "same-password-twice"

	first, err := HashPassword(password)
	require.NoError(t, err)
	second, err := HashPassword(password)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NoError(t, VerifyPassword(password, first))
	require.NoError(t, VerifyPassword(password, second))
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	passwords := []string{
		"Partner123!",
		"a",
		strings.Repeat("long-", 40),
		"unicode-brocade-織物",
	}
	for _, password := range passwords {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		require.NoError(t, VerifyPassword(password, hash))
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	err = VerifyPassword("incorrect-horse", hash)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	bad := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfiveparts",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=abc,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	}
	for _, hash := range bad {
		err := VerifyPassword("whatever", hash)
		require.Error(t, err, "hash %q should be rejected", hash)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}
