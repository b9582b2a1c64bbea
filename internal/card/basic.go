package card

// Basic is a plain value implementation of the Card capability.
// Embedding applications usually bring their own card type; Basic serves
// tooling and tests that need a concrete one.
type Basic struct {
	CardID   string
	CardName string
	Cost     int
	CardTier int
}

// ID returns the stable identifier.
func (b Basic) ID() string { return b.CardID }

// Name returns the display name.
func (b Basic) Name() string { return b.CardName }

// BaseCost returns the base cost.
func (b Basic) BaseCost() int { return b.Cost }

// Tier returns the tier, starting at 1.
func (b Basic) Tier() int { return b.CardTier }
