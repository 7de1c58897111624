package otpx

import "net/http"

// Cookie is the transport-independent cookie shape the ledger writes.
// MaxAge 0 means delete, mirroring net/http semantics with MaxAge<0
// folded in.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int
	HTTPOnly bool
	Secure   bool
}

// Jar abstracts the caller's cookie storage so the ledger's state machine
// can be exercised without an HTTP round trip.
type Jar interface {
	// Get returns the current value of the named cookie, if any.
	Get(name string) (value string, ok bool)

	// Set writes or deletes a cookie. A MaxAge of zero or less deletes.
	Set(c Cookie)
}

// HTTPJar adapts one request/response pair to the Jar interface. Reads
// come from the inbound request, writes go to the response.
type HTTPJar struct {
	W http.ResponseWriter
	R *http.Request
}

func (j HTTPJar) Get(name string) (string, bool) {
	c, err := j.R.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (j HTTPJar) Set(c Cookie) {
	maxAge := c.MaxAge
	if maxAge <= 0 {
		maxAge = -1 // net/http: delete now
	}
	http.SetCookie(j.W, &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		MaxAge:   maxAge,
		HttpOnly: c.HTTPOnly,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryJar is an in-memory Jar for tests. It honours deletion but not
// max-age expiry, which matches the ledger's model: expiry belongs to the
// caller's agent, not the ledger.
type MemoryJar struct {
	cookies map[string]string
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{cookies: make(map[string]string)}
}

func (j *MemoryJar) Get(name string) (string, bool) {
	v, ok := j.cookies[name]
	return v, ok
}

func (j *MemoryJar) Set(c Cookie) {
	if c.MaxAge <= 0 {
		delete(j.cookies, c.Name)
		return
	}
	j.cookies[c.Name] = c.Value
}
