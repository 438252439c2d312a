package crypto

import "math"

// Level is an ordered strength rating.
type Level int

const (
	VeryWeak Level = iota + 1
	Weak
	Medium
	Strong
	VeryStrong
)

func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	}
	return "unknown"
}

// StrengthTier is the strength rating derived from an entropy estimate.
type StrengthTier struct {
	Level       Level
	Percent     int
	EntropyBits float64
	BitsPerChar float64
}

// Label returns the human readable name of the tier's level.
func (t StrengthTier) Label() string {
	return t.Level.String()
}

// tierBands are checked in ascending order; the first band whose upper bound
// exceeds the entropy wins.
var tierBands = []struct {
	below   float64
	level   Level
	percent int
}{
	{28, VeryWeak, 15},
	{36, Weak, 30},
	{60, Medium, 55},
	{128, Strong, 80},
	{math.Inf(1), VeryStrong, 100},
}

// BitsPerChar returns log2 of the effective alphabet size for cfg, or 0 when
// the alphabet is empty.
func BitsPerChar(cfg GenerationConfig) float64 {
	size := BuildCharset(cfg).Size()
	if size == 0 {
		return 0
	}
	return math.Log2(float64(size))
}

// TotalEntropy returns the entropy of length independently drawn characters.
func TotalEntropy(bitsPerChar float64, length int) float64 {
	if length <= 0 {
		return 0
	}
	return bitsPerChar * float64(length)
}

// TierFor maps an entropy estimate in bits to a strength tier.
func TierFor(entropyBits float64) StrengthTier {
	for _, b := range tierBands {
		if entropyBits < b.below {
			return StrengthTier{Level: b.level, Percent: b.percent, EntropyBits: entropyBits}
		}
	}
	// NaN compares false against every band.
	return StrengthTier{Level: VeryWeak, Percent: 15, EntropyBits: entropyBits}
}

// EstimateStrength rates cfg without drawing any randomness.
func EstimateStrength(cfg GenerationConfig) StrengthTier {
	bits := BitsPerChar(cfg)
	tier := TierFor(TotalEntropy(bits, cfg.Length))
	tier.BitsPerChar = bits
	return tier
}
