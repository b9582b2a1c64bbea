// Package simulate drives a deterministic end-to-end progression run:
// draft a roster, build deck and hand, battle against pooled snapshots or
// generated bots, and fold each finished run back into the snapshot pool.
package simulate

import (
	"context"
	"flag"
	"fmt"
	"io"
	mrand "math/rand"
	"sort"
	"text/tabwriter"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/emberlane/gauntlet/internal/bot"
	"github.com/emberlane/gauntlet/internal/card"
	"github.com/emberlane/gauntlet/internal/deck"
	"github.com/emberlane/gauntlet/internal/draft"
	"github.com/emberlane/gauntlet/internal/hand"
	"github.com/emberlane/gauntlet/internal/matchmaking"
	"github.com/emberlane/gauntlet/internal/platform/config"
	"github.com/emberlane/gauntlet/internal/random"
	"github.com/emberlane/gauntlet/internal/snapshot"
)

// Preset names a bundled simulation shape.
type Preset string

const (
	// PresetDemo runs a handful of players for a quick look.
	PresetDemo Preset = "demo"
	// PresetLeague runs a mid-sized field with longer runs.
	PresetLeague Preset = "league"
	// PresetStressTest floods the snapshot pool to exercise eviction.
	PresetStressTest Preset = "stress-test"
)

const (
	deckSize     = 12
	handSize     = 4
	startRating  = 1000.0
	winRating    = 25.0
	lossRating   = 20.0
	draftOptions = 24
)

// Config holds simulate command configuration.
type Config struct {
	Players int
	Battles int
	Seed    int64
	Preset  Preset
	Verbose bool
}

type envDefaults struct {
	Players int   `env:"GAUNTLET_SIM_PLAYERS"`
	Battles int   `env:"GAUNTLET_SIM_BATTLES"`
	Seed    int64 `env:"GAUNTLET_SIM_SEED"`
}

// ParseConfig parses environment defaults and flags into a Config.
// Flag values win over environment values; preset defaults fill whatever
// remains unset.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var defaults envDefaults
	if err := config.ParseEnv(&defaults); err != nil {
		return Config{}, err
	}

	var players int
	var battles int
	var seedVal int64
	var preset string
	var verbose bool

	fs.IntVar(&players, "players", defaults.Players, "number of simulated players (0 = preset default)")
	fs.IntVar(&battles, "battles", defaults.Battles, "battles per player run (0 = preset default)")
	fs.Int64Var(&seedVal, "seed", defaults.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&preset, "preset", string(PresetDemo), "simulation preset (demo, league, stress-test)")
	fs.BoolVar(&verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Players: players,
		Battles: battles,
		Seed:    seedVal,
		Preset:  Preset(preset),
		Verbose: verbose,
	}
	if err := validatePreset(cfg.Preset); err != nil {
		return Config{}, err
	}
	applyPreset(&cfg)
	return cfg, nil
}

func validatePreset(preset Preset) error {
	switch preset {
	case PresetDemo, PresetLeague, PresetStressTest:
		return nil
	}
	return fmt.Errorf("unknown preset %q (valid presets: demo, league, stress-test)", preset)
}

// applyPreset fills zero-valued fields with the preset's defaults.
func applyPreset(cfg *Config) {
	var players, battles int
	switch cfg.Preset {
	case PresetLeague:
		players, battles = 16, 9
	case PresetStressTest:
		players, battles = 100, 12
	default: // PresetDemo
		players, battles = 4, 5
	}
	if cfg.Players <= 0 {
		cfg.Players = players
	}
	if cfg.Battles <= 0 {
		cfg.Battles = battles
	}
}

// runTally accumulates the outcome of one player's run.
type runTally struct {
	playerID string
	wins     int
	losses   int
	rating   float64
	matched  int
	bots     int
}

// Run executes the simulation and writes a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	seed := cfg.Seed
	if seed == 0 {
		generated, err := random.NewSeed()
		if err != nil {
			return err
		}
		seed = generated
		fmt.Fprintf(out, "seed: %d (generated)\n", seed)
	} else if cfg.Verbose {
		fmt.Fprintf(out, "seed: %d\n", seed)
	}

	tracer := otel.Tracer("gauntlet/simulate")
	ctx, span := tracer.Start(ctx, "simulate.run", trace.WithAttributes(
		attribute.Int("players", cfg.Players),
		attribute.Int("battles", cfg.Battles),
		attribute.String("preset", string(cfg.Preset)),
	))
	defer span.End()

	rootRNG := random.NewSource(seed)
	catalog := Catalog()
	snapCfg := snapshot.DefaultConfig()
	mmCfg := matchmaking.DefaultConfig()
	botCfg := bot.DefaultConfig()
	botCfg.NameGenerator = bot.ThemedNameGenerator(rootRNG.Int63())

	var pool []snapshot.Snapshot
	tallies := make([]runTally, 0, cfg.Players)
	now := time.Now()

	for i := 0; i < cfg.Players; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		playerID := fmt.Sprintf("player-%03d", i+1)
		playerRNG := random.NewSource(rootRNG.Int63())

		_, playerSpan := tracer.Start(ctx, "simulate.player")
		playerSpan.SetAttributes(attribute.String("player.id", playerID))

		roster, err := draftRoster(catalog, playerRNG)
		if err != nil {
			playerSpan.End()
			return fmt.Errorf("%s: draft roster: %w", playerID, err)
		}

		playerDeck, playerHand, err := buildLoadout(roster, playerRNG)
		if err != nil {
			playerSpan.End()
			return fmt.Errorf("%s: build loadout: %w", playerID, err)
		}

		tally := runTally{playerID: playerID, rating: startRating}
		for b := 0; b < cfg.Battles; b++ {
			battle(&tally, pool, catalog, mmCfg, botCfg, playerRNG)
		}

		snap, err := captureRun(tally, playerDeck, snapCfg, playerRNG, now)
		if err != nil {
			playerSpan.End()
			return fmt.Errorf("%s: capture run: %w", playerID, err)
		}
		pool = append(snapshot.EnforceLimits(pool, snap, snapCfg, playerRNG.Int63(), now), snap)

		if cfg.Verbose {
			fmt.Fprintf(out, "%s drafted %d cards, holds %d, finished %dW/%dL at %.0f (matched %d, bots %d)\n",
				playerID, deck.Size(playerDeck), hand.Size(playerHand),
				tally.wins, tally.losses, tally.rating, tally.matched, tally.bots)
		}

		playerSpan.SetAttributes(
			attribute.Int("run.wins", tally.wins),
			attribute.Int("run.losses", tally.losses),
		)
		playerSpan.End()

		tallies = append(tallies, tally)
		now = now.Add(time.Second)
	}

	return writeSummary(out, cfg, tallies, pool)
}

// draftRoster plays one pick-only draft to completion, taking the cheapest
// option each round and spending the single reroll before the first pick.
func draftRoster(catalog []card.Basic, rng *mrand.Rand) ([]card.Basic, error) {
	session := draft.New(catalog, draft.Config{
		OptionsCount:   draftOptions,
		PicksCount:     deckSize,
		Type:           draft.TypePick,
		RerollsAllowed: 1,
	}, rng.Int63())

	session, err := draft.Reroll(session, rng.Int63())
	if err != nil {
		return nil, err
	}

	for !draft.IsComplete(session) {
		session, err = draft.Pick(session, cheapestOption(session.Options))
		if err != nil {
			return nil, err
		}
	}

	return draft.GetResult(session).Picked, nil
}

// cheapestOption returns the id of the lowest-cost option, breaking ties by
// identifier so the choice is stable.
func cheapestOption(options []card.Basic) string {
	best := options[0]
	for _, c := range options[1:] {
		if c.BaseCost() < best.BaseCost() ||
			(c.BaseCost() == best.BaseCost() && c.ID() < best.ID()) {
			best = c
		}
	}
	return best.ID()
}

// buildLoadout assembles the drafted roster into a shuffled deck and draws
// the opening hand.
func buildLoadout(roster []card.Basic, rng *mrand.Rand) (deck.Deck[card.Basic], hand.Hand[card.Basic], error) {
	playerDeck, err := deck.New(roster, deck.Config[card.Basic]{
		MaxSize: deckSize,
		MinSize: 1,
	})
	if err != nil {
		return deck.Deck[card.Basic]{}, hand.Hand[card.Basic]{}, err
	}
	playerDeck = deck.Shuffle(playerDeck, rng.Int63())

	opening, playerDeck := deck.Draw(playerDeck, handSize)
	playerHand, err := hand.New[card.Basic](hand.Config{MaxSize: handSize, AutoDiscard: true})
	if err != nil {
		return deck.Deck[card.Basic]{}, hand.Hand[card.Basic]{}, err
	}
	playerHand, _, err = hand.AddAll(playerHand, opening)
	if err != nil {
		return deck.Deck[card.Basic]{}, hand.Hand[card.Basic]{}, err
	}

	return playerDeck, playerHand, nil
}

// battle resolves one fight: a pooled opponent when matchmaking finds one,
// a generated bot otherwise. Outcomes shift the tally's rating.
func battle(tally *runTally, pool []snapshot.Snapshot, catalog []card.Basic, mmCfg matchmaking.Config, botCfg bot.Config, rng *mrand.Rand) {
	var winChance float64

	opponent, ok := matchmaking.FindOpponent(tally.wins, tally.rating, pool, mmCfg, rng.Int63())
	if ok {
		tally.matched++
		winChance = clamp(0.5+(tally.rating-opponent.Rating)/(4*mmCfg.RatingRange), 0.1, 0.9)
	} else {
		team := bot.Generate(tally.wins, catalog, botCfg, rng.Int63(), deckSize)
		tally.bots++
		winChance = clamp(1-team.Difficulty*0.7, 0.1, 0.9)
	}

	if rng.Float64() < winChance {
		tally.wins++
		tally.rating += winRating
	} else {
		tally.losses++
		tally.rating -= lossRating
	}
}

// captureRun snapshots the finished run. The opaque state is a compact
// textual summary standing in for real run state.
func captureRun(tally runTally, playerDeck deck.Deck[card.Basic], cfg snapshot.Config, rng *mrand.Rand, now time.Time) (snapshot.Snapshot, error) {
	state := fmt.Sprintf("deck=%d wins=%d losses=%d", deck.Size(playerDeck), tally.wins, tally.losses)
	run := snapshot.Run{
		ID:     random.NewID(rng),
		Wins:   tally.wins,
		Losses: tally.losses,
		State:  []byte(state),
	}
	return snapshot.New(run, tally.playerID, tally.rating, cfg, now)
}

func writeSummary(out io.Writer, cfg Config, tallies []runTally, pool []snapshot.Snapshot) error {
	totalWins, totalLosses, matched, bots := 0, 0, 0, 0
	for _, t := range tallies {
		totalWins += t.wins
		totalLosses += t.losses
		matched += t.matched
		bots += t.bots
	}

	stats := snapshot.PoolStats(pool)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "players\t%d\n", cfg.Players)
	fmt.Fprintf(w, "battles per run\t%d\n", cfg.Battles)
	fmt.Fprintf(w, "total wins\t%d\n", totalWins)
	fmt.Fprintf(w, "total losses\t%d\n", totalLosses)
	fmt.Fprintf(w, "matched battles\t%d\n", matched)
	fmt.Fprintf(w, "bot battles\t%d\n", bots)
	fmt.Fprintf(w, "pool snapshots\t%d\n", stats.Total)
	fmt.Fprintf(w, "pool bytes\t%d\n", stats.SizeBytes)

	wins := make([]int, 0, len(stats.ByWins))
	for win := range stats.ByWins {
		wins = append(wins, win)
	}
	sort.Ints(wins)
	for _, win := range wins {
		fmt.Fprintf(w, "pool at %d wins\t%d\n", win, stats.ByWins[win])
	}

	return w.Flush()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
