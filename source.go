package dice

import (
	"math/rand/v2"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/dice Source

// Source supplies uniformly distributed integers in [0, n)
type Source interface {
	IntN(n int) int
}

// defaultSource uses the runtime-seeded generator, which is safe for concurrent use
type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// lockedSource serializes access to a caller-supplied source
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
