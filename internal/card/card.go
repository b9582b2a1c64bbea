// Package card defines the capability contract shared by every container
// in the progression core.
//
// Containers never depend on a concrete card record. Any type exposing a
// stable identifier, a display name, a base cost, and a tier satisfies the
// Card constraint and can flow through decks, hands, drafts, and bot
// rosters unchanged.
package card

// Card is the minimal capability a container operates on.
// Tier starts at 1 and is non-decreasing over a card's lifetime.
type Card interface {
	ID() string
	Name() string
	BaseCost() int
	Tier() int
}

// IndexOf returns the index of the first card with the given identifier,
// or -1 if no card matches.
func IndexOf[C Card](cards []C, id string) int {
	for i, c := range cards {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

// CountID returns how many cards share the given identifier.
func CountID[C Card](cards []C, id string) int {
	count := 0
	for _, c := range cards {
		if c.ID() == id {
			count++
		}
	}
	return count
}

// Clone returns a copy of the slice. Cards themselves are values from the
// caller's domain and are never mutated here.
func Clone[C Card](cards []C) []C {
	cloned := make([]C, len(cards))
	copy(cloned, cards)
	return cloned
}
