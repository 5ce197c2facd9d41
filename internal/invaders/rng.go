package invaders

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint32 = 0xC0FFEE

// XorShift32 is the deterministic generator behind enemy fire decisions.
// The output sequence for a given seed is part of the game's contract:
// replays and tests depend on it being bit-identical.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 creates a generator. A zero seed is replaced by DefaultSeed
// because zero is a fixed point of xorshift.
func NewXorShift32(seed uint32) XorShift32 {
	if seed == 0 {
		seed = DefaultSeed
	}
	return XorShift32{state: seed}
}

// Next advances the state once and returns it.
func (r *XorShift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Range returns a value in [lo, hi] using exactly one draw. An empty range
// returns lo without advancing the state.
func (r *XorShift32) Range(lo, hi int) int {
	if hi < lo {
		return lo
	}
	span := uint32(hi - lo + 1) //#nosec G115 -- span is small and positive
	return lo + int(r.Next()%span)
}

// State returns the current internal state.
func (r XorShift32) State() uint32 {
	return r.state
}
