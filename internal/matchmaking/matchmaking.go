// Package matchmaking selects an opponent snapshot from the pool.
//
// Candidates are filtered to a wins tolerance and a rating tolerance, then
// one survivor is chosen uniformly at random under the caller's seed. The
// two filters commute; their order never changes the survivor set.
package matchmaking

import (
	"math"

	"github.com/emberlane/gauntlet/internal/random"
	"github.com/emberlane/gauntlet/internal/snapshot"
)

// Config bounds how far an opponent may sit from the searching player.
type Config struct {
	WinsRange   int
	RatingRange float64
}

// DefaultConfig returns the standard matchmaking tolerance.
func DefaultConfig() Config {
	return Config{WinsRange: 1, RatingRange: 200}
}

// FindOpponent searches the pool for a snapshot within both tolerances and
// returns a seeded uniform choice among the survivors. The second return
// is false when no candidate qualifies.
func FindOpponent(currentWins int, currentRating float64, pool []snapshot.Snapshot, cfg Config, seed int64) (snapshot.Snapshot, bool) {
	candidates := make([]snapshot.Snapshot, 0, len(pool))
	for _, s := range pool {
		if abs(s.Wins-currentWins) > cfg.WinsRange {
			continue
		}
		if math.Abs(s.Rating-currentRating) > cfg.RatingRange {
			continue
		}
		candidates = append(candidates, s)
	}

	if len(candidates) == 0 {
		return snapshot.Snapshot{}, false
	}

	rng := random.NewSource(seed)
	return candidates[rng.Intn(len(candidates))], true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
