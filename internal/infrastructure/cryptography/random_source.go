package cryptography

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
)

// lockedSource serializes access to a PCG generator so one processor can be
// shared by concurrent HTTP handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedSource(seed uint64) *lockedSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rng: textbook.NewSource(seed)}
}

// Uint64N returns a uniform integer in [0, n).
func (s *lockedSource) Uint64N(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64N(n)
}
