package scorecard

// pairHash is the 32-bit rolling hash used to derive deterministic score
// adjustments. It reproduces the signed 32-bit overflow semantics of the
// classic ((h<<5)-h+c)|0 string hash so identical inputs hash identically
// across runs and platforms.
func pairHash(s string) uint32 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// deterministicValue maps a seed string into [min,max) using pairHash.
// No wall clock, no randomness, no map iteration: a fixed seed always
// yields the same value.
func deterministicValue(seed string, min, max float64) float64 {
	normalized := float64(pairHash(seed)%1000) / 1000
	return min + normalized*(max-min)
}
