package game

import "math"

// Kind selects which increase an upgrade feeds into.
type Kind int

const (
	KindActive Kind = iota
	KindIdle
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindActive:
		return "Active"
	case KindIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Upgrade is a purchasable boost. Level is added to the matching increase
// when the upgrade is bought for Cost points.
type Upgrade struct {
	Kind  Kind
	Level float64
	Cost  float64
}

// ShopSize is the number of upgrades on offer at any time.
const ShopSize = 3

// Shop holds the upgrades on offer in display order.
type Shop [ShopSize]Upgrade

// Replace removes the upgrade at index i, slides the following rows up and
// appends next at the end.
func (s *Shop) Replace(i int, next Upgrade) {
	copy(s[i:], s[i+1:])
	s[ShopSize-1] = next
}

// Rand is the subset of *math/rand.Rand the generator draws from.
// Tests inject scripted sources to get exact shops.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator produces random upgrades whose cost tracks the player's score.
type Generator struct {
	rng      Rand
	maxLevel float64
}

// NewGenerator creates a generator drawing levels from [0, maxLevel).
func NewGenerator(rng Rand, maxLevel float64) *Generator {
	return &Generator{rng: rng, maxLevel: maxLevel}
}

// Next draws an upgrade priced for the given score.
// Draw order is kind, level, cost.
func (g *Generator) Next(score float64) Upgrade {
	kind := KindActive
	if g.rng.Intn(2) == 1 {
		kind = KindIdle
	}
	level := g.rng.Float64() * g.maxLevel

	lo, hi := CostRange(score)
	cost := lo + g.rng.Float64()*(hi-lo)

	return Upgrade{Kind: kind, Level: level, Cost: cost}
}

// CostRange returns the interval upgrade costs are drawn from.
// Costs sit one to two orders of magnitude above the current score; a zero
// or undefined score bootstraps to [0, 10].
func CostRange(score float64) (lo, hi float64) {
	if !(score > 0) || math.IsInf(score, 1) {
		return 0, 10
	}
	exp := magnitude(score)
	return math.Pow10(exp + 1), math.Pow10(exp + 2)
}

// magnitude returns floor(log10(score)) for a positive finite score.
// Log10 can land just below an exact power of ten, so the estimate is
// corrected against exact powers.
func magnitude(score float64) int {
	exp := int(math.Floor(math.Log10(score)))
	if math.Pow10(exp+1) <= score {
		exp++
	}
	if math.Pow10(exp) > score {
		exp--
	}
	return exp
}
