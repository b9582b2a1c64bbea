// Package bot synthesizes difficulty-scaled simulated opponents.
//
// When matchmaking finds no live opponent, a bot team is fabricated from
// the card pool: difficulty grows linearly with the player's wins up to a
// cap, and cards are drawn by weighted sampling without replacement so
// higher difficulties skew toward higher tiers while every tier keeps a
// nonzero selection probability.
package bot

import (
	"fmt"

	"github.com/emberlane/gauntlet/internal/card"
	"github.com/emberlane/gauntlet/internal/random"
)

// DefaultDeckSize is the roster size used when the caller does not specify one.
const DefaultDeckSize = 12

// minCardWeight floors every candidate weight so no tier is ever
// unselectable.
const minCardWeight = 0.01

// Config governs bot difficulty scaling and naming.
type Config struct {
	BaseDifficulty   float64
	DifficultyPerWin float64
	MaxDifficulty    float64
	NameGenerator    func(wins int) string
}

// DefaultConfig returns a gentle early-game ramp capped below a perfect
// opponent.
func DefaultConfig() Config {
	return Config{
		BaseDifficulty:   0.3,
		DifficultyPerWin: 0.1,
		MaxDifficulty:    0.9,
	}
}

// Team is an ephemeral simulated opponent roster.
type Team[C card.Card] struct {
	Name       string
	Cards      []C
	Difficulty float64
}

// Difficulty computes the bot difficulty for a win count: base plus a
// per-win increment, saturating at the configured maximum. The result is
// non-decreasing in wins.
func Difficulty(wins int, cfg Config) float64 {
	if wins < 0 {
		wins = 0
	}
	difficulty := cfg.BaseDifficulty + float64(wins)*cfg.DifficultyPerWin
	if difficulty > cfg.MaxDifficulty {
		return cfg.MaxDifficulty
	}
	return difficulty
}

// TierDistribution returns the normalized selection weights for tiers 1-3
// at the given difficulty. Raw weights are (1-d, 0.6d, 0.4d) divided by
// their sum: low difficulties favor tier 1, high difficulties shift mass
// to tiers 2 and 3.
func TierDistribution(difficulty float64) map[int]float64 {
	raw := map[int]float64{
		1: 1 - difficulty,
		2: difficulty * 0.6,
		3: difficulty * 0.4,
	}

	total := 0.0
	for _, w := range raw {
		total += w
	}
	if total <= 0 {
		return map[int]float64{1: 1, 2: 0, 3: 0}
	}

	normalized := make(map[int]float64, len(raw))
	for tier, w := range raw {
		normalized[tier] = w / total
	}
	return normalized
}

// tierWeight resolves the sampling weight for a card tier. Tiers beyond 3
// fall back to an unnormalized difficulty-scaled weight; the floor keeps
// every candidate selectable.
func tierWeight(distribution map[int]float64, difficulty float64, tier int) float64 {
	w, ok := distribution[tier]
	if !ok {
		w = difficulty * 0.3
	}
	if w < minCardWeight {
		return minCardWeight
	}
	return w
}

// SelectCards performs weighted sampling without replacement from the pool.
// Each round one remaining candidate is chosen with probability
// proportional to its tier weight, up to maxCards cards; selection stops
// early when the pool empties. Fully determined by the seed.
func SelectCards[C card.Card](pool []C, difficulty float64, seed int64, maxCards int) []C {
	if maxCards <= 0 || len(pool) == 0 {
		return []C{}
	}

	rng := random.NewSource(seed)
	distribution := TierDistribution(difficulty)

	remaining := card.Clone(pool)
	selected := make([]C, 0, maxCards)
	for len(selected) < maxCards && len(remaining) > 0 {
		total := 0.0
		for _, c := range remaining {
			total += tierWeight(distribution, difficulty, c.Tier())
		}

		target := rng.Float64() * total
		index := len(remaining) - 1
		acc := 0.0
		for i, c := range remaining {
			acc += tierWeight(distribution, difficulty, c.Tier())
			if target < acc {
				index = i
				break
			}
		}

		selected = append(selected, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}

	return selected
}

// Generate composes difficulty, naming, and card selection into a bot team
// for a player sitting at the given win count. A non-positive deckSize
// falls back to DefaultDeckSize.
func Generate[C card.Card](wins int, pool []C, cfg Config, seed int64, deckSize int) Team[C] {
	if deckSize <= 0 {
		deckSize = DefaultDeckSize
	}

	difficulty := Difficulty(wins, cfg)

	name := ""
	if cfg.NameGenerator != nil {
		name = cfg.NameGenerator(wins)
	}
	if name == "" {
		name = fmt.Sprintf("Bot_%dW", wins)
	}

	return Team[C]{
		Name:       name,
		Cards:      SelectCards(pool, difficulty, seed, deckSize),
		Difficulty: difficulty,
	}
}
