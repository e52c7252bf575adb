package util

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID generates a ULID whose timestamp component is the current time.
// IDs generated within the same millisecond by this process stay strictly
// increasing.
func NewULID() string {
	return NewULIDAt(time.Now())
}

// NewULIDAt generates a ULID stamped with t.
func NewULIDAt(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
