package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller on math/rand guarded by a mutex
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from crypto/rand
func NewRandomRoller() Roller {
	return NewSeededRoller(newSeed())
}

// NewSeededRoller creates a deterministic roller for reproducible runs
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(sides int) int {
	return r.Intn(sides) + 1
}

// Shuffle implements Roller.Shuffle
func (r *randomRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
