// Package deck implements the bounded, ordered deck container.
//
// All operations are pure: they take a deck value plus configuration and
// return a new deck value, never mutating the input. Shuffling is
// deterministic with respect to the caller-supplied seed.
package deck

import (
	"strconv"

	"github.com/emberlane/gauntlet/internal/card"
	apperrors "github.com/emberlane/gauntlet/internal/errors"
	"github.com/emberlane/gauntlet/internal/random"
)

var (
	// ErrInvalidDeck indicates the deck violates its size or duplicate constraints.
	ErrInvalidDeck = apperrors.New(apperrors.CodeDeckInvalid, "deck violates its configuration")
	// ErrDeckFull indicates the deck is at its maximum size.
	ErrDeckFull = apperrors.New(apperrors.CodeDeckFull, "deck is full")
	// ErrCardNotFound indicates the referenced card is not in the deck.
	ErrCardNotFound = apperrors.New(apperrors.CodeDeckCardNotFound, "card not found in deck")
	// ErrDuplicateNotAllowed indicates the deck forbids repeated identifiers.
	ErrDuplicateNotAllowed = apperrors.New(apperrors.CodeDeckDuplicateNotAllowed, "duplicate cards not allowed")
	// ErrMaxCopiesExceeded indicates the per-card copy cap would be exceeded.
	ErrMaxCopiesExceeded = apperrors.New(apperrors.CodeDeckMaxCopiesExceeded, "max copies exceeded")
)

// Config governs a deck's size bounds and duplicate policy.
// Validator, when set, vets every card entering the deck.
type Config[C card.Card] struct {
	MaxSize         int
	MinSize         int
	AllowDuplicates bool
	MaxCopies       int
	Validator       func(C) error
}

// Deck is an ordered sequence of cards plus its governing configuration.
type Deck[C card.Card] struct {
	Cards  []C
	Config Config[C]
}

// New creates a deck from an initial card sequence and configuration.
//
// It fails with ErrInvalidDeck when the sequence violates the size bounds,
// the duplicate policy, or the per-card validator. The input slice is
// copied; later operations never touch it.
func New[C card.Card](cards []C, cfg Config[C]) (Deck[C], error) {
	if len(cards) < cfg.MinSize {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckInvalid,
			"deck is below its minimum size",
			map[string]string{"Reason": "below minimum size " + strconv.Itoa(cfg.MinSize)})
	}
	if cfg.MaxSize > 0 && len(cards) > cfg.MaxSize {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckInvalid,
			"deck exceeds its maximum size",
			map[string]string{"Reason": "above maximum size " + strconv.Itoa(cfg.MaxSize)})
	}

	for i, c := range cards {
		copies := card.CountID(cards[:i+1], c.ID())
		if !cfg.AllowDuplicates && copies > 1 {
			return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckInvalid,
				"deck contains duplicate cards",
				map[string]string{"Reason": "duplicate card " + c.ID()})
		}
		if cfg.AllowDuplicates && cfg.MaxCopies > 0 && copies > cfg.MaxCopies {
			return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckInvalid,
				"deck exceeds the copy cap for a card",
				map[string]string{"Reason": "too many copies of " + c.ID()})
		}
		if cfg.Validator != nil {
			if err := cfg.Validator(c); err != nil {
				return Deck[C]{}, apperrors.Wrap(apperrors.CodeDeckInvalid, "card rejected by validator", err)
			}
		}
	}

	return Deck[C]{Cards: card.Clone(cards), Config: cfg}, nil
}

// Add returns a new deck with the card appended.
//
// It fails with ErrDeckFull at maximum size, ErrDuplicateNotAllowed or
// ErrMaxCopiesExceeded per the duplicate policy, and wraps validator
// rejections as ErrInvalidDeck.
func Add[C card.Card](d Deck[C], c C) (Deck[C], error) {
	if d.Config.MaxSize > 0 && len(d.Cards) >= d.Config.MaxSize {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckFull,
			"deck is full",
			map[string]string{"MaxSize": strconv.Itoa(d.Config.MaxSize)})
	}

	copies := card.CountID(d.Cards, c.ID())
	if !d.Config.AllowDuplicates && copies > 0 {
		return Deck[C]{}, ErrDuplicateNotAllowed
	}
	if d.Config.AllowDuplicates && d.Config.MaxCopies > 0 && copies >= d.Config.MaxCopies {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckMaxCopiesExceeded,
			"max copies exceeded",
			map[string]string{"MaxCopies": strconv.Itoa(d.Config.MaxCopies)})
	}
	if d.Config.Validator != nil {
		if err := d.Config.Validator(c); err != nil {
			return Deck[C]{}, apperrors.Wrap(apperrors.CodeDeckInvalid, "card rejected by validator", err)
		}
	}

	cards := make([]C, 0, len(d.Cards)+1)
	cards = append(cards, d.Cards...)
	cards = append(cards, c)
	return Deck[C]{Cards: cards, Config: d.Config}, nil
}

// Remove returns a new deck without the first card matching the identifier.
//
// It fails with ErrCardNotFound when the card is absent, and with
// ErrInvalidDeck when removal would push the deck below its minimum size.
func Remove[C card.Card](d Deck[C], id string) (Deck[C], error) {
	index := card.IndexOf(d.Cards, id)
	if index < 0 {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckCardNotFound,
			"card not found in deck",
			map[string]string{"CardID": id})
	}
	if len(d.Cards)-1 < d.Config.MinSize {
		return Deck[C]{}, apperrors.WithMetadata(apperrors.CodeDeckInvalid,
			"removal would break the minimum size",
			map[string]string{"Reason": "below minimum size " + strconv.Itoa(d.Config.MinSize)})
	}

	cards := make([]C, 0, len(d.Cards)-1)
	cards = append(cards, d.Cards[:index]...)
	cards = append(cards, d.Cards[index+1:]...)
	return Deck[C]{Cards: cards, Config: d.Config}, nil
}

// Shuffle returns a new deck with a Fisher-Yates permutation of the cards.
// The permutation is fully determined by the seed.
func Shuffle[C card.Card](d Deck[C], seed int64) Deck[C] {
	rng := random.NewSource(seed)
	cards := card.Clone(d.Cards)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return Deck[C]{Cards: cards, Config: d.Config}
}

// Draw returns the first n cards and the deck holding the remainder.
// Drawing more cards than the deck holds returns every card; drawing from
// an empty deck returns an empty sequence. Draw never fails: it models
// consumption during play, so the remainder may fall below MinSize.
func Draw[C card.Card](d Deck[C], n int) ([]C, Deck[C]) {
	if n <= 0 {
		return []C{}, Deck[C]{Cards: card.Clone(d.Cards), Config: d.Config}
	}
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	drawn := card.Clone(d.Cards[:n])
	rest := card.Clone(d.Cards[n:])
	return drawn, Deck[C]{Cards: rest, Config: d.Config}
}

// Size returns the number of cards in the deck.
func Size[C card.Card](d Deck[C]) int {
	return len(d.Cards)
}

// IsFull reports whether the deck is at its maximum size.
func IsFull[C card.Card](d Deck[C]) bool {
	return d.Config.MaxSize > 0 && len(d.Cards) >= d.Config.MaxSize
}

// Contains reports whether any card in the deck has the identifier.
func Contains[C card.Card](d Deck[C], id string) bool {
	return card.IndexOf(d.Cards, id) >= 0
}
