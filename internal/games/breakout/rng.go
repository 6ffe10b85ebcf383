package breakout

// SimpleRNG is a deterministic pseudo-random number generator.
// Its whole state is one word so snapshots can capture and restore it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	// Output permutation; the low bits of a bare LCG cycle quickly.
	x := r.state
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// IntRange returns a random int in [lo, hi], both inclusive.
func (r *SimpleRNG) IntRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// State returns the raw generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state previously returned by State.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
