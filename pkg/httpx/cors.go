package httpx

import "net/http"

// CORSMiddleware allows cross-origin calls from exactly one configured
// origin (the mobile client). Anything else gets no CORS headers and the
// browser enforces the block. Preflight requests are answered here and
// never reach the handler.
func CORSMiddleware(allowedOrigin string) Middleware {
	const (
		allowMethods = "GET, POST, OPTIONS"
		allowHeaders = "Authorization, Content-Type"
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && origin == allowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				w.Header().Set("Access-Control-Allow-Methods", allowMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
