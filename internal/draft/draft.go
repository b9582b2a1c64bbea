// Package draft implements selection-under-constraint sessions over a card
// pool.
//
// A draft deals a bounded option set from a seeded shuffle of the pool and
// evolves through picks, bans, rerolls, and skips. Every operation returns
// a new draft value; the pool and option set stay disjoint throughout.
package draft

import (
	"strconv"

	"github.com/emberlane/gauntlet/internal/card"
	apperrors "github.com/emberlane/gauntlet/internal/errors"
	"github.com/emberlane/gauntlet/internal/random"
)

var (
	// ErrCardNotInOptions indicates the referenced card is not an option.
	ErrCardNotInOptions = apperrors.New(apperrors.CodeDraftCardNotInOptions, "card not in draft options")
	// ErrPickLimitReached indicates all picks have been made.
	ErrPickLimitReached = apperrors.New(apperrors.CodeDraftPickLimitReached, "pick limit reached")
	// ErrBanningNotAllowed indicates the draft type does not allow bans.
	ErrBanningNotAllowed = apperrors.New(apperrors.CodeDraftBanningNotAllowed, "banning not allowed")
	// ErrNoRerollsRemaining indicates the reroll budget is spent.
	ErrNoRerollsRemaining = apperrors.New(apperrors.CodeDraftNoRerollsRemaining, "no rerolls remaining")
	// ErrSkipNotAllowed indicates the draft cannot be skipped.
	ErrSkipNotAllowed = apperrors.New(apperrors.CodeDraftSkipNotAllowed, "skip not allowed")
)

// Type determines which selection moves a draft allows.
type Type string

const (
	// TypePick allows picks only.
	TypePick Type = "pick"
	// TypeBan allows bans only.
	TypeBan Type = "ban"
	// TypePickAndBan allows both picks and bans.
	TypePickAndBan Type = "pick-and-ban"
)

// Config governs a draft session.
type Config struct {
	OptionsCount   int
	PicksCount     int
	Type           Type
	AllowSkip      bool
	RerollsAllowed int
}

// Draft is the state of one selection session. Options and Pool are always
// disjoint; a picked or banned card is absent from both.
type Draft[C card.Card] struct {
	Pool        []C
	Options     []C
	Picked      []C
	Banned      []C
	Config      Config
	RerollsUsed int
	Seed        int64
}

// Result summarizes a finished draft.
type Result[C card.Card] struct {
	Picked  []C
	Banned  []C
	Skipped bool
}

// New creates a draft by shuffling the pool with the seed and dealing the
// first min(OptionsCount, pool size) cards as options. The remainder stays
// in the pool.
func New[C card.Card](pool []C, cfg Config, seed int64) Draft[C] {
	shuffled := card.Clone(pool)
	rng := random.NewSource(seed)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := cfg.OptionsCount
	if count < 0 {
		count = 0
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}

	return Draft[C]{
		Pool:    shuffled[count:],
		Options: shuffled[:count],
		Picked:  []C{},
		Banned:  []C{},
		Config:  cfg,
		Seed:    seed,
	}
}

// Pick moves a card from the options to the picked set.
// It fails with ErrCardNotInOptions when the card is not an option and with
// ErrPickLimitReached once PicksCount picks have been made.
func Pick[C card.Card](d Draft[C], id string) (Draft[C], error) {
	index := card.IndexOf(d.Options, id)
	if index < 0 {
		return Draft[C]{}, apperrors.WithMetadata(apperrors.CodeDraftCardNotInOptions,
			"card not in draft options",
			map[string]string{"CardID": id})
	}
	if len(d.Picked) >= d.Config.PicksCount {
		return Draft[C]{}, apperrors.WithMetadata(apperrors.CodeDraftPickLimitReached,
			"pick limit reached",
			map[string]string{"PicksCount": strconv.Itoa(d.Config.PicksCount)})
	}

	updated := d
	updated.Picked = append(card.Clone(d.Picked), d.Options[index])
	updated.Options = removeAt(d.Options, index)
	return updated, nil
}

// Ban moves a card from the options to the banned set.
// It fails with ErrBanningNotAllowed for pick-only drafts and with
// ErrCardNotInOptions when the card is not an option.
func Ban[C card.Card](d Draft[C], id string) (Draft[C], error) {
	if d.Config.Type == TypePick {
		return Draft[C]{}, ErrBanningNotAllowed
	}

	index := card.IndexOf(d.Options, id)
	if index < 0 {
		return Draft[C]{}, apperrors.WithMetadata(apperrors.CodeDraftCardNotInOptions,
			"card not in draft options",
			map[string]string{"CardID": id})
	}

	updated := d
	updated.Banned = append(card.Clone(d.Banned), d.Options[index])
	updated.Options = removeAt(d.Options, index)
	return updated, nil
}

// Reroll returns the current options to the pool, reshuffles with the new
// seed, and deals fresh options. It fails with ErrNoRerollsRemaining once
// the reroll budget is spent.
func Reroll[C card.Card](d Draft[C], newSeed int64) (Draft[C], error) {
	if d.RerollsUsed >= d.Config.RerollsAllowed {
		return Draft[C]{}, apperrors.WithMetadata(apperrors.CodeDraftNoRerollsRemaining,
			"no rerolls remaining",
			map[string]string{"RerollsAllowed": strconv.Itoa(d.Config.RerollsAllowed)})
	}

	combined := make([]C, 0, len(d.Pool)+len(d.Options))
	combined = append(combined, d.Pool...)
	combined = append(combined, d.Options...)

	redealt := New(combined, d.Config, newSeed)
	redealt.Picked = card.Clone(d.Picked)
	redealt.Banned = card.Clone(d.Banned)
	redealt.RerollsUsed = d.RerollsUsed + 1
	return redealt, nil
}

// Skip ends the selection early by returning the options to the pool.
// It fails with ErrSkipNotAllowed unless the config allows skipping.
func Skip[C card.Card](d Draft[C]) (Draft[C], error) {
	if !d.Config.AllowSkip {
		return Draft[C]{}, ErrSkipNotAllowed
	}

	updated := d
	updated.Pool = append(card.Clone(d.Pool), d.Options...)
	updated.Options = []C{}
	return updated, nil
}

// IsComplete reports whether the draft is terminal: every pick has been
// made, or no options remain and either skipping is allowed or the pool is
// exhausted.
func IsComplete[C card.Card](d Draft[C]) bool {
	if len(d.Picked) >= d.Config.PicksCount {
		return true
	}
	return len(d.Options) == 0 && (d.Config.AllowSkip || len(d.Pool) == 0)
}

// GetResult summarizes the draft. Skipped is true only when nothing was
// picked, no options remain, and the config allowed skipping.
func GetResult[C card.Card](d Draft[C]) Result[C] {
	return Result[C]{
		Picked:  card.Clone(d.Picked),
		Banned:  card.Clone(d.Banned),
		Skipped: len(d.Picked) == 0 && len(d.Options) == 0 && d.Config.AllowSkip,
	}
}

func removeAt[C card.Card](cards []C, index int) []C {
	updated := make([]C, 0, len(cards)-1)
	updated = append(updated, cards[:index]...)
	updated = append(updated, cards[index+1:]...)
	return updated
}
