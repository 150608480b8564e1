package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic PCG source. Not safe for concurrent use;
// wrap it with NewLockedSource when shared.
type SeededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a source that replays the same sequence for the same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) (int, error) {
	return s.r.IntN(n), nil
}

// LockedSource serializes access to an underlying Source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) IntN(n int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

var (
	_ Source = CryptoSource{}
	_ Source = (*SeededSource)(nil)
	_ Source = (*LockedSource)(nil)
)
