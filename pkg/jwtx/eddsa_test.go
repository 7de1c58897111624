package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) (*jwtx.EdDSASigner, *jwtx.KeySet) {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewEdDSASigner(kid, priv)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.Add(kid, signer.Public())

	return signer, keys
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t, "key-1")
	verifier := jwtx.NewVerifier(keys, "loom-sessions")

	claims := jwtx.NewSessionClaims(
		"user-123", "sess-1",
		[]string{"vendor"},
		time.Hour,
		"loom-sessions",
		"vendor@example.com", "Vendor",
		time.Now(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, []string{"vendor"}, got.Roles)
	require.Equal(t, "vendor@example.com", got.Email)
	require.True(t, got.HasRole("vendor"))
	require.False(t, got.HasRole("admin"))
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t, "key-1")
	verifier := jwtx.NewVerifier(keys, "loom-sessions")

	claims := jwtx.NewSessionClaims(
		"user-123", "sess-1", nil, time.Hour,
		"someone-else", "", "", time.Now(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t, "key-1")
	verifier := jwtx.NewVerifier(keys, "loom-sessions")

	claims := jwtx.NewSessionClaims(
		"user-123", "sess-1", nil, time.Hour,
		"loom-sessions", "", "",
		time.Now().Add(-2*time.Hour),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKid(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t, "key-1")
	_, otherKeys := newTestSigner(t, "key-2")
	verifier := jwtx.NewVerifier(otherKeys, "loom-sessions")

	claims := jwtx.NewSessionClaims(
		"user-123", "sess-1", nil, time.Hour,
		"loom-sessions", "", "", time.Now(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, keys := newTestSigner(t, "key-1")
	verifier := jwtx.NewVerifier(keys, "loom-sessions")

	_, err := verifier.Verify("not.a.token")
	require.Error(t, err)
}
