package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	pepperOnce sync.Once
	pepperVal  string
	pepperFile = "pepper"
)

// SetPepperPath points the package at the pepper file. Call before the
// first HashPassword or VerifyPassword; the pepper is loaded once and
// cached for the life of the process.
func SetPepperPath(file string) {
	pepperFile = file
}

// GetPepper returns the process pepper, creating the pepper file on
// first use if it does not exist yet. A missing or unreadable pepper
// is fatal: hashing without it would silently produce hashes that can
// never verify against existing rows.
func GetPepper() string {
	pepperOnce.Do(func() {
		val, err := loadOrGeneratePepper(pepperFile)
		if err != nil {
			slog.Error("pepper unavailable", "file", pepperFile, "error", err)
			os.Exit(1)
		}
		pepperVal = val
	})
	return pepperVal
}

func loadOrGeneratePepper(file string) (string, error) {
	file = filepath.Clean(file)

	data, err := os.ReadFile(file)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", err
		}
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(file, []byte(encoded), 0600); err != nil {
		return "", err
	}
	return encoded, nil
}
