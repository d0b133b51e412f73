package mockdice

import (
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Every Intn and Roll call consumes one value; Shuffle consumes one Intn value
// per swap, exactly like a Fisher-Yates pass. Running out of values panics.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll sets the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Used returns how many predetermined values have been consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll
}

// Intn implements dice.Roller.Intn
func (m *ManualMockRoller) Intn(n int) int {
	v := m.getNextRoll()
	if v < 0 || v >= n {
		panic(fmt.Sprintf("invalid value %d for Intn(%d)", v, n))
	}
	return v
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(sides int) int {
	v := m.getNextRoll()
	if v < 1 || v > sides {
		panic(fmt.Sprintf("invalid roll %d for d%d", v, sides))
	}
	return v
}

// Shuffle implements dice.Roller.Shuffle
func (m *ManualMockRoller) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, m.Intn(i+1))
	}
}
