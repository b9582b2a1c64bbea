package snapshot

import "time"

// Strategy is the eviction policy applied once the pool reaches capacity.
type Strategy string

const (
	// StrategyOldest removes the earliest-created snapshots first.
	StrategyOldest Strategy = "oldest"
	// StrategyLowestRating removes the lowest-rated snapshots first.
	StrategyLowestRating Strategy = "lowest-rating"
	// StrategyRandom removes a seeded random selection.
	StrategyRandom Strategy = "random"
)

// Config governs snapshot capture and pool lifecycle.
type Config struct {
	Expiry                time.Duration
	MaxSnapshotsPerPlayer int
	MaxTotalSnapshots     int
	Cleanup               Strategy
	IncludeFullState      bool
}

// DefaultConfig returns the standard pool preset: day-long expiry with a
// generous total capacity, evicting the oldest snapshots first.
func DefaultConfig() Config {
	return Config{
		Expiry:                24 * time.Hour,
		MaxSnapshotsPerPlayer: 10,
		MaxTotalSnapshots:     10000,
		Cleanup:               StrategyOldest,
	}
}

// CompactConfig returns a memory-lean preset: shorter expiry, more
// snapshots per player, low-rated snapshots evicted first.
func CompactConfig() Config {
	return Config{
		Expiry:                12 * time.Hour,
		MaxSnapshotsPerPlayer: 20,
		MaxTotalSnapshots:     10000,
		Cleanup:               StrategyLowestRating,
	}
}
