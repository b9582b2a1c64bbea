package bot

import (
	"fmt"

	"github.com/emberlane/gauntlet/internal/random"
)

// Bot name components - adjective + noun combinations.
var nameAdjectives = []string{
	"Crimson", "Hollow", "Iron", "Gilded", "Ashen",
	"Silent", "Feral", "Frozen", "Obsidian", "Restless",
	"Burning", "Pale", "Savage", "Twilight", "Rusted",
}

var nameNouns = []string{
	"Legion", "Warden", "Corsair", "Reaper", "Vanguard",
	"Sentinel", "Marauder", "Herald", "Revenant", "Duelist",
	"Outrider", "Harbinger", "Gladiator", "Stalker", "Champion",
}

// ThemedNameGenerator returns a NameGenerator producing flavorful bot names
// like "Ashen Revenant (4W)" instead of the plain default. The sequence of
// names is fully determined by the seed.
func ThemedNameGenerator(seed int64) func(wins int) string {
	rng := random.NewSource(seed)
	return func(wins int) string {
		adj := nameAdjectives[rng.Intn(len(nameAdjectives))]
		noun := nameNouns[rng.Intn(len(nameNouns))]
		return fmt.Sprintf("%s %s (%dW)", adj, noun, wins)
	}
}
