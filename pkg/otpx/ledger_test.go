package otpx_test

import (
	"strings"
	"testing"

	"github.com/loomandfold/loom/pkg/otpx"
	"github.com/stretchr/testify/require"
)

func newLedger() *otpx.Ledger {
	return &otpx.Ledger{Secret: []byte("test-otp-secret")}
}

func TestIssueConfirmRoundTrip(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	code, err := ledger.Issue(jar)
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.NoError(t, ledger.Confirm(jar, code))

	// Cookie is cleared on success; replay of the same code fails.
	_, ok := jar.Get(otpx.CookieName)
	require.False(t, ok)
	require.ErrorIs(t, ledger.Confirm(jar, code), otpx.ErrNotFound)
}

func TestConfirmMismatchKeepsCode(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	code, err := ledger.Issue(jar)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	require.ErrorIs(t, ledger.Confirm(jar, wrong), otpx.ErrMismatch)

	// The cookie survives a mismatch; the correct code still confirms.
	_, ok := jar.Get(otpx.CookieName)
	require.True(t, ok)
	require.NoError(t, ledger.Confirm(jar, code))
}

func TestConfirmWithoutIssue(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	require.ErrorIs(t, ledger.Confirm(jar, "123456"), otpx.ErrNotFound)
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	first, err := ledger.Issue(jar)
	require.NoError(t, err)

	second, err := ledger.Issue(jar)
	require.NoError(t, err)

	if first == second {
		t.Skip("codes collided; nothing to distinguish")
	}

	require.ErrorIs(t, ledger.Confirm(jar, first), otpx.ErrMismatch)
	require.NoError(t, ledger.Confirm(jar, second))
}

func TestTamperedCookieIsNotFound(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	code, err := ledger.Issue(jar)
	require.NoError(t, err)

	raw, ok := jar.Get(otpx.CookieName)
	require.True(t, ok)

	// Flip the code but keep the old signature.
	_, sig, found := strings.Cut(raw, ".")
	require.True(t, found)
	forged := "999999"
	if forged == code {
		forged = "999998"
	}
	jar.Set(otpx.Cookie{Name: otpx.CookieName, Value: forged + "." + sig, Path: "/", MaxAge: 600})

	require.ErrorIs(t, ledger.Confirm(jar, forged), otpx.ErrNotFound)
}

func TestDifferentSecretCannotConfirm(t *testing.T) {
	t.Parallel()

	jar := otpx.NewMemoryJar()

	code, err := newLedger().Issue(jar)
	require.NoError(t, err)

	other := &otpx.Ledger{Secret: []byte("a-different-secret")}
	require.ErrorIs(t, other.Confirm(jar, code), otpx.ErrNotFound)
}

func TestInvalidateDropsCode(t *testing.T) {
	t.Parallel()

	ledger := newLedger()
	jar := otpx.NewMemoryJar()

	code, err := ledger.Issue(jar)
	require.NoError(t, err)

	ledger.Invalidate(jar)
	require.ErrorIs(t, ledger.Confirm(jar, code), otpx.ErrNotFound)
}
