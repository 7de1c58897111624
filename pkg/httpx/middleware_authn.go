package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/loomandfold/loom/pkg/cryptox"
	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/loomandfold/loom/pkg/slogx"
)

// SessionCookieName is the cookie browser callers carry their session
// token in. API callers use the Authorization header instead.
const SessionCookieName = "session"

// AuthnMiddleware resolves the request's session credential to an
// authenticated identity, or rejects with 401. The credential is the
// bearer token, falling back to the session cookie. On success the
// claims are injected into the request context; there is no partial
// identity and no unauthenticated fall-through.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := credentialFromRequest(r)
			if raw == "" {
				writeBearerError(w, "missing session credential")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "session verification failed")
				// Log a fingerprint, never the credential itself.
				log.Warn("session verify failed",
					"err", err,
					"credential_fp", cryptox.FingerprintToken(raw),
				)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "session expired")
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// credentialFromRequest pulls the opaque session credential off the
// request: Authorization bearer first, session cookie second. Nothing
// else on the request is trusted as a credential.
func credentialFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRoles, c.Roles)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth. The body mirrors
// the service's standard error shape so SDK clients parse it uniformly.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
