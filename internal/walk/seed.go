package walk

const seedMask = uint64(1<<63) - 1

// SeedSequence derives independent per-walk seeds from a single root
// seed. The state walks a full-period LCG mod 2^63 (no repeats before
// 2^63 draws) and each emitted seed is the state passed through a
// reversible bit mix, so consecutive seeds share no low-bit structure.
type SeedSequence struct {
	state uint64
}

func NewSeedSequence(seed int64) *SeedSequence {
	return &SeedSequence{state: uint64(seed) & seedMask}
}

// Next advances the sequence and returns the next seed. Always non-negative.
func (s *SeedSequence) Next() int64 {
	s.state = (s.state*6364136223846793005 + 1442695040888963407) & seedMask
	return int64(mix63(s.state))
}

// mix63 uses only reversible operations: xor-shifts and odd multiplies mod 2^63.
func mix63(x uint64) uint64 {
	x &= seedMask
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & seedMask
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & seedMask
	x ^= x >> 31
	return x & seedMask
}
