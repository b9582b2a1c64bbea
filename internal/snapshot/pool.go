package snapshot

import (
	"sort"
	"time"

	"github.com/emberlane/gauntlet/internal/random"
)

// EnforceLimits prunes the pool ahead of the incoming snapshot joining it.
//
// Three passes run in order:
//  1. every expired snapshot is dropped;
//  2. if the incoming snapshot's player already holds the per-player cap,
//     that player's single oldest snapshot is evicted;
//  3. if the pool still sits at or above the total cap (when the cap is
//     nonzero), the cleanup strategy removes a tenth of the pool, rounded
//     up, and never fewer than one snapshot.
//
// The input slice is never mutated; the caller appends the incoming
// snapshot to the returned pool and applies it back atomically.
func EnforceLimits(pool []Snapshot, incoming Snapshot, cfg Config, seed int64, now time.Time) []Snapshot {
	pruned := make([]Snapshot, 0, len(pool))
	for _, s := range pool {
		if !IsExpired(s, cfg, now) {
			pruned = append(pruned, s)
		}
	}

	if cfg.MaxSnapshotsPerPlayer > 0 {
		pruned = evictOldestForPlayer(pruned, incoming.PlayerID, cfg.MaxSnapshotsPerPlayer)
	}

	if cfg.MaxTotalSnapshots > 0 && len(pruned) >= cfg.MaxTotalSnapshots {
		pruned = cleanup(pruned, cfg.Cleanup, seed)
	}

	return pruned
}

// evictOldestForPlayer removes the player's earliest snapshot when the
// player already holds at least the cap.
func evictOldestForPlayer(pool []Snapshot, playerID string, limit int) []Snapshot {
	count := 0
	oldest := -1
	for i, s := range pool {
		if s.PlayerID != playerID {
			continue
		}
		count++
		if oldest < 0 || s.CreatedAt.Before(pool[oldest].CreatedAt) {
			oldest = i
		}
	}
	if count < limit || oldest < 0 {
		return pool
	}

	evicted := make([]Snapshot, 0, len(pool)-1)
	evicted = append(evicted, pool[:oldest]...)
	evicted = append(evicted, pool[oldest+1:]...)
	return evicted
}

// cleanup removes ceil(10%) of the pool, at least one snapshot, under the
// given strategy. Tiny pools degrade gracefully: a non-empty pool always
// loses at least one snapshot.
func cleanup(pool []Snapshot, strategy Strategy, seed int64) []Snapshot {
	if len(pool) == 0 {
		return pool
	}

	removals := (len(pool) + 9) / 10
	if removals < 1 {
		removals = 1
	}
	if removals > len(pool) {
		removals = len(pool)
	}

	ordered := make([]Snapshot, len(pool))
	copy(ordered, pool)

	switch strategy {
	case StrategyLowestRating:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Rating < ordered[j].Rating
		})
	case StrategyRandom:
		rng := random.NewSource(seed)
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	default: // StrategyOldest
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		})
	}

	return ordered[removals:]
}

// Stats summarizes a pool for monitoring and matchmaking heuristics.
type Stats struct {
	Total     int
	ByWins    map[int]int
	ByPlayer  map[string]int
	SizeBytes int
}

// PoolStats aggregates snapshot counts by wins and by player.
func PoolStats(pool []Snapshot) Stats {
	stats := Stats{
		Total:    len(pool),
		ByWins:   make(map[int]int),
		ByPlayer: make(map[string]int),
	}
	for _, s := range pool {
		stats.ByWins[s.Wins]++
		stats.ByPlayer[s.PlayerID]++
		stats.SizeBytes += s.SizeBytes
	}
	return stats
}
