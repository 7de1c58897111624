package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/loomandfold/loom/pkg/jwtx"
)

// InitSessionKeys loads the identity provider's Ed25519 public key and
// builds the verifier all authenticated routes share.
//
// The key arrives one of three ways, checked in order:
//   - SHOP_SESSION_PUBLIC_KEY: the PKIX PEM inline in the environment.
//     Literal "\n" sequences are unescaped so the PEM survives
//     single-line env files and compose manifests.
//   - SHOP_SESSION_PUBLIC_KEY_FILE: path to the same PEM on disk,
//     typically a mounted secret.
//   - Neither, in dev only: a throwaway keypair is generated and the
//     private half logged so local tooling can mint sessions. Every
//     restart invalidates all outstanding sessions.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeySet, jwtx.Verifier, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.SessionPublicKey != "":
		pemKey := strings.ReplaceAll(cfg.SessionPublicKey, `\n`, "\n")
		if err := keys.AddPEM(cfg.SessionKeyID, []byte(pemKey)); err != nil {
			return nil, nil, fmt.Errorf("failed to parse session public key: %w", err)
		}
		logger.Info("session verification key loaded from environment", "kid", cfg.SessionKeyID)

	case cfg.SessionPublicKeyFile != "":
		pemKey, err := os.ReadFile(cfg.SessionPublicKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read session public key file: %w", err)
		}
		if err := keys.AddPEM(cfg.SessionKeyID, pemKey); err != nil {
			return nil, nil, fmt.Errorf("failed to parse session public key file: %w", err)
		}
		logger.Info("session verification key loaded from file",
			"kid", cfg.SessionKeyID,
			"path", cfg.SessionPublicKeyFile,
		)

	case cfg.Env == "dev" || cfg.Env == "test":
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate dev session keypair: %w", err)
		}
		keys.Add(cfg.SessionKeyID, pub)

		privDER, err := x509.MarshalPKCS8PrivateKey(priv)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal dev session key: %w", err)
		}
		privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})

		logger.Warn("no session public key configured, generated a throwaway dev keypair")
		logger.Warn("dev session signing key follows, mint local sessions with it",
			"kid", cfg.SessionKeyID,
			"private_key_pem", string(privPEM),
		)
		logger.Warn("all existing sessions are now invalid due to key generation on startup")

	default:
		return nil, nil, errors.New(
			"session verification key required: set SHOP_SESSION_PUBLIC_KEY or SHOP_SESSION_PUBLIC_KEY_FILE",
		)
	}

	return keys, jwtx.NewVerifier(keys, cfg.SessionIssuer), nil
}
