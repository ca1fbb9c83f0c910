package dice

// Sides is the number of faces on every die this package rolls
const Sides = 6

// DefaultCount is the number of dice rolled by RollOne
const DefaultCount = 1

// Roller provides dice rolling functionality
type Roller struct {
	source Source
}

// Config for dice roller
type Config struct {
	// Optional source, defaults to math/rand/v2
	Source Source
}

// New creates a new dice roller
func New(cfg *Config) *Roller {
	if cfg == nil || cfg.Source == nil {
		return &Roller{
			source: defaultSource{},
		}
	}

	return &Roller{
		source: &lockedSource{src: cfg.Source},
	}
}

// Roll rolls count six-sided dice and returns the faces in roll order.
// A count of zero or less yields an empty result.
func (r *Roller) Roll(count int) []int {
	if count < 0 {
		count = 0
	}

	results := make([]int, count)
	for i := range results {
		results[i] = r.rollDie()
	}

	return results
}

// RollOne rolls a single die
func (r *Roller) RollOne() []int {
	return r.Roll(DefaultCount)
}

func (r *Roller) rollDie() int {
	value := r.source.IntN(Sides)
	if value < 0 || value >= Sides {
		panic("dice: source returned value out of range")
	}
	return value + 1
}

var defaultRoller = New(nil)

// Roll rolls count dice using the default source
func Roll(count int) []int {
	return defaultRoller.Roll(count)
}

// RollOne rolls a single die using the default source
func RollOne() []int {
	return defaultRoller.RollOne()
}
