// Package otpx implements the single-use verification code issued during
// partner registration. The only storage is a signed cookie on the
// caller's agent: issue writes it, confirm compares and clears it, and
// expiry is whatever max-age the cookie was issued with. States per
// caller: none -> issued -> consumed, with re-issue overwriting any
// outstanding code.
package otpx

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// CookieName is the cookie the ledger owns on the caller's agent.
const CookieName = "otp"

// DefaultTTL bounds how long an issued code stays confirmable.
const DefaultTTL = 10 * time.Minute

var (
	// ErrNotFound means there is no live code for this caller: never
	// issued, already consumed, expired, or the cookie was tampered with.
	// Callers present all of these as "expired or invalid".
	ErrNotFound = errors.New("otpx: no verification code")

	// ErrMismatch means a live code exists but the supplied value does
	// not match. The code stays live; the caller may retry until the
	// cookie expires.
	ErrMismatch = errors.New("otpx: verification code mismatch")
)

// Ledger issues and confirms verification codes. The zero value is not
// usable; Secret must be set.
type Ledger struct {
	// Secret keys the HMAC that makes the cookie tamper-evident. Must be
	// shared across replicas serving the same callers.
	Secret []byte

	// TTL is the cookie max-age set at issue time. Zero means DefaultTTL.
	TTL time.Duration

	// Secure marks the cookie secure-transport-only. Leave false only in
	// local development.
	Secure bool
}

func (l *Ledger) ttl() time.Duration {
	if l.TTL <= 0 {
		return DefaultTTL
	}
	return l.TTL
}

// Issue generates a fresh 6-digit code and stores it as a signed cookie
// in jar, overwriting any code issued earlier. The returned code is for
// out-of-band delivery (email); it never travels in a response body.
func (l *Ledger) Issue(jar Jar) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	jar.Set(Cookie{
		Name:     CookieName,
		Value:    code + "." + l.sign(code),
		Path:     "/",
		MaxAge:   int(l.ttl().Seconds()),
		HTTPOnly: true,
		Secure:   l.Secure,
	})

	return code, nil
}

// Confirm checks supplied against the live code in jar. On a match the
// cookie is cleared before returning, so the same code cannot be
// confirmed twice. On ErrMismatch the cookie is left untouched.
//
// Two concurrent confirms with the same valid cookie can both observe a
// match before either clear lands; the clear is not atomic with the
// comparison. The cookie only ever reaches one agent, so the window is
// accepted.
func (l *Ledger) Confirm(jar Jar, supplied string) error {
	raw, ok := jar.Get(CookieName)
	if !ok {
		return ErrNotFound
	}

	code, sig, found := strings.Cut(raw, ".")
	if !found || !hmac.Equal([]byte(sig), []byte(l.sign(code))) {
		// A tampered cookie is treated the same as no cookie.
		return ErrNotFound
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(supplied)) != 1 {
		return ErrMismatch
	}

	l.clear(jar)
	return nil
}

// Invalidate discards any outstanding code without confirming it.
func (l *Ledger) Invalidate(jar Jar) {
	l.clear(jar)
}

func (l *Ledger) clear(jar Jar) {
	jar.Set(Cookie{
		Name:     CookieName,
		Path:     "/",
		MaxAge:   0,
		HTTPOnly: true,
		Secure:   l.Secure,
	})
}

func (l *Ledger) sign(code string) string {
	mac := hmac.New(sha256.New, l.Secret)
	mac.Write([]byte(code))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// generateCode derives a 6-digit code from a throwaway random HOTP
// secret and counter, giving uniformly distributed digits.
func generateCode() (string, error) {
	var buf [18]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("otpx: generate secret: %w", err)
	}

	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf[:10])
	counter := binary.BigEndian.Uint64(buf[10:])

	code, err := hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("otpx: generate code: %w", err)
	}
	return code, nil
}
