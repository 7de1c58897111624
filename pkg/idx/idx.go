// Package idx generates the identifiers used for every stored entity.
// IDs are ULIDs, so they sort by creation time and stay index-friendly
// in SQLite without a separate created-at sort key.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the absent ID. Only ever a placeholder.
const Zero ID = ""

// ErrInvalid reports a string that is not a well-formed ULID.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	initOnce sync.Once

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
)

// The monotonic source guarantees strictly increasing IDs within one
// process even when the clock reads the same millisecond twice.
func setup() {
	entropy = ulid.Monotonic(rand.Reader, 0)
}

// New returns a fresh ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with the given time. Tests use this to
// build IDs with a known ordering.
func NewAt(t time.Time) ID {
	initOnce.Do(setup)

	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates s as a canonical ULID and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// IsZero reports whether id is the absent ID.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical 26-character form.
func (id ID) String() string { return string(id) }

// Time extracts the creation timestamp embedded in the ID, or the zero
// time when the ID is absent or malformed.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
