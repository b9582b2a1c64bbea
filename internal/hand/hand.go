// Package hand implements the bounded hand container.
//
// A hand grows through bulk adds and shrinks one card at a time. With
// auto-discard enabled the hand silently keeps the oldest arrivals and
// drops the surplus tail; with it disabled overflow is a reported failure
// that leaves the hand unchanged.
package hand

import (
	"strconv"

	"github.com/emberlane/gauntlet/internal/card"
	apperrors "github.com/emberlane/gauntlet/internal/errors"
)

var (
	// ErrInvalidConfig indicates the hand configuration is unusable.
	ErrInvalidConfig = apperrors.New(apperrors.CodeHandInvalidConfig, "hand configuration is invalid")
	// ErrHandOverflow indicates an add would exceed the hand bound without auto-discard.
	ErrHandOverflow = apperrors.New(apperrors.CodeHandOverflow, "hand overflow")
	// ErrCardNotFound indicates the referenced card is not in the hand.
	ErrCardNotFound = apperrors.New(apperrors.CodeHandCardNotFound, "card not found in hand")
)

// Config governs the hand bound and overflow behavior.
type Config struct {
	MaxSize      int
	StartingSize int
	AutoDiscard  bool
}

// Hand is an ordered sequence of cards plus its governing configuration.
type Hand[C card.Card] struct {
	Cards  []C
	Config Config
}

// New creates an empty hand, failing with ErrInvalidConfig when the bounds
// are not usable (non-positive max, or a starting size beyond the max).
func New[C card.Card](cfg Config) (Hand[C], error) {
	if cfg.MaxSize <= 0 {
		return Hand[C]{}, apperrors.WithMetadata(apperrors.CodeHandInvalidConfig,
			"hand max size must be positive",
			map[string]string{"Reason": "max size " + strconv.Itoa(cfg.MaxSize)})
	}
	if cfg.StartingSize < 0 || cfg.StartingSize > cfg.MaxSize {
		return Hand[C]{}, apperrors.WithMetadata(apperrors.CodeHandInvalidConfig,
			"hand starting size must fit within the max size",
			map[string]string{"Reason": "starting size " + strconv.Itoa(cfg.StartingSize)})
	}
	return Hand[C]{Cards: []C{}, Config: cfg}, nil
}

// Add returns a new hand with one card appended.
// At the bound it fails with ErrHandOverflow unless auto-discard is on, in
// which case the incoming card is the surplus tail and is dropped.
func Add[C card.Card](h Hand[C], c C) (Hand[C], error) {
	updated, _, err := AddAll(h, []C{c})
	return updated, err
}

// AddAll returns a new hand with the cards appended in arrival order, plus
// the cards actually added and the cards discarded.
//
// Within capacity every card is added and nothing is discarded. On overflow
// with auto-discard the hand keeps capacity-many cards oldest-first and the
// surplus tail is reported as discarded. Without auto-discard the add fails
// with ErrHandOverflow and the hand is unchanged.
func AddAll[C card.Card](h Hand[C], cards []C) (Hand[C], []C, error) {
	room := h.Config.MaxSize - len(h.Cards)
	if len(cards) > room && !h.Config.AutoDiscard {
		return Hand[C]{}, nil, apperrors.WithMetadata(apperrors.CodeHandOverflow,
			"hand overflow",
			map[string]string{"MaxSize": strconv.Itoa(h.Config.MaxSize)})
	}

	kept := cards
	discarded := []C{}
	if len(cards) > room {
		if room < 0 {
			room = 0
		}
		kept = cards[:room]
		discarded = card.Clone(cards[room:])
	}

	updated := make([]C, 0, len(h.Cards)+len(kept))
	updated = append(updated, h.Cards...)
	updated = append(updated, kept...)
	return Hand[C]{Cards: updated, Config: h.Config}, discarded, nil
}

// Remove returns a new hand without the first card matching the identifier,
// failing with ErrCardNotFound when it is absent.
func Remove[C card.Card](h Hand[C], id string) (Hand[C], error) {
	index := card.IndexOf(h.Cards, id)
	if index < 0 {
		return Hand[C]{}, apperrors.WithMetadata(apperrors.CodeHandCardNotFound,
			"card not found in hand",
			map[string]string{"CardID": id})
	}

	cards := make([]C, 0, len(h.Cards)-1)
	cards = append(cards, h.Cards[:index]...)
	cards = append(cards, h.Cards[index+1:]...)
	return Hand[C]{Cards: cards, Config: h.Config}, nil
}

// Size returns the number of cards in the hand.
func Size[C card.Card](h Hand[C]) int {
	return len(h.Cards)
}

// IsFull reports whether the hand is at its bound.
func IsFull[C card.Card](h Hand[C]) bool {
	return len(h.Cards) >= h.Config.MaxSize
}
