// Package random provides the injectable random sources used to synthesize
// mock flight data. Every consumer takes a Source so tests can seed it.
package random

import (
	"crypto/rand"
	"math"
	"math/big"
	mrand "math/rand"
	"sync"
)

// Source is the subset of random operations the mock data generator needs.
type Source interface {
	// Intn returns a value in [0, n). It returns 0 when n <= 0.
	Intn(n int) int

	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Seeded is a deterministic Source. The same seed always yields the same sequence.
// It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded creates a deterministic Source from seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn implements Source.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float64 implements Source.
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Crypto is a non-deterministic Source backed by crypto/rand.
// It holds no state, so it needs no locking.
type Crypto struct{}

// NewCrypto creates a crypto-backed Source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Intn implements Source.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

// Float64 implements Source.
func (Crypto) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}

// New returns a Seeded source for a non-zero seed and a Crypto source otherwise.
func New(seed int64) Source {
	if seed != 0 {
		return NewSeeded(seed)
	}
	return NewCrypto()
}

// Between returns a value in [min, max). It returns min when max <= min.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
