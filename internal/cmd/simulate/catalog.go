package simulate

import "github.com/emberlane/gauntlet/internal/card"

// Catalog returns the built-in card catalog the simulation drafts from.
// Costs grow with tier; tiers 4 and 5 are deliberately scarce.
func Catalog() []card.Basic {
	return []card.Basic{
		// Tier 1
		{CardID: "ember-whelp", CardName: "Ember Whelp", Cost: 1, CardTier: 1},
		{CardID: "mire-rat", CardName: "Mire Rat", Cost: 1, CardTier: 1},
		{CardID: "dune-scout", CardName: "Dune Scout", Cost: 1, CardTier: 1},
		{CardID: "thorn-sprite", CardName: "Thorn Sprite", Cost: 1, CardTier: 1},
		{CardID: "gutter-blade", CardName: "Gutter Blade", Cost: 2, CardTier: 1},
		{CardID: "fen-stalker", CardName: "Fen Stalker", Cost: 2, CardTier: 1},
		{CardID: "cinder-pup", CardName: "Cinder Pup", Cost: 2, CardTier: 1},
		{CardID: "rust-golem", CardName: "Rust Golem", Cost: 2, CardTier: 1},
		{CardID: "pale-archer", CardName: "Pale Archer", Cost: 2, CardTier: 1},
		{CardID: "bog-lurker", CardName: "Bog Lurker", Cost: 2, CardTier: 1},
		{CardID: "stone-pikeman", CardName: "Stone Pikeman", Cost: 3, CardTier: 1},
		{CardID: "gale-hawk", CardName: "Gale Hawk", Cost: 3, CardTier: 1},
		{CardID: "salt-raider", CardName: "Salt Raider", Cost: 3, CardTier: 1},
		{CardID: "moss-shaman", CardName: "Moss Shaman", Cost: 3, CardTier: 1},
		{CardID: "drift-wisp", CardName: "Drift Wisp", Cost: 1, CardTier: 1},
		{CardID: "copper-squire", CardName: "Copper Squire", Cost: 2, CardTier: 1},

		// Tier 2
		{CardID: "frost-warden", CardName: "Frost Warden", Cost: 3, CardTier: 2},
		{CardID: "ash-reaver", CardName: "Ash Reaver", Cost: 4, CardTier: 2},
		{CardID: "storm-caller", CardName: "Storm Caller", Cost: 4, CardTier: 2},
		{CardID: "grave-binder", CardName: "Grave Binder", Cost: 4, CardTier: 2},
		{CardID: "iron-corsair", CardName: "Iron Corsair", Cost: 4, CardTier: 2},
		{CardID: "veil-dancer", CardName: "Veil Dancer", Cost: 4, CardTier: 2},
		{CardID: "blood-herald", CardName: "Blood Herald", Cost: 5, CardTier: 2},
		{CardID: "sun-lancer", CardName: "Sun Lancer", Cost: 5, CardTier: 2},
		{CardID: "null-monk", CardName: "Null Monk", Cost: 5, CardTier: 2},
		{CardID: "tide-witch", CardName: "Tide Witch", Cost: 5, CardTier: 2},

		// Tier 3
		{CardID: "obsidian-knight", CardName: "Obsidian Knight", Cost: 6, CardTier: 3},
		{CardID: "howling-revenant", CardName: "Howling Revenant", Cost: 6, CardTier: 3},
		{CardID: "ember-colossus", CardName: "Ember Colossus", Cost: 7, CardTier: 3},
		{CardID: "mirror-sage", CardName: "Mirror Sage", Cost: 7, CardTier: 3},
		{CardID: "void-harbinger", CardName: "Void Harbinger", Cost: 7, CardTier: 3},
		{CardID: "crown-sentinel", CardName: "Crown Sentinel", Cost: 7, CardTier: 3},
		{CardID: "plague-matron", CardName: "Plague Matron", Cost: 8, CardTier: 3},
		{CardID: "twilight-duelist", CardName: "Twilight Duelist", Cost: 8, CardTier: 3},

		// Tier 4
		{CardID: "worldbreaker", CardName: "Worldbreaker", Cost: 9, CardTier: 4},
		{CardID: "eternal-choir", CardName: "Eternal Choir", Cost: 9, CardTier: 4},
		{CardID: "abyss-regent", CardName: "Abyss Regent", Cost: 10, CardTier: 4},
		{CardID: "starfall-titan", CardName: "Starfall Titan", Cost: 10, CardTier: 4},

		// Tier 5
		{CardID: "the-last-ember", CardName: "The Last Ember", Cost: 11, CardTier: 5},
		{CardID: "king-of-ruin", CardName: "King of Ruin", Cost: 12, CardTier: 5},
	}
}
