package sklist

// Tunables for level generation. The derived level cap follows the
// classic rule ceil(log(expectedSize) / log(1/p)).
const (
	// DefaultProbability is the chance a new node climbs one more level.
	DefaultProbability = 0.5

	// DefaultMaxLevelCap bounds node height; 32 levels cover ~2^32
	// entries at p=0.5.
	DefaultMaxLevelCap = 32

	// DefaultExpectedSize sizes the derived level cap when the caller
	// gives no hint.
	DefaultExpectedSize = 1 << 20
)
