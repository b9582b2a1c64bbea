package draft

import (
	"errors"
	"fmt"
	"testing"

	"github.com/emberlane/gauntlet/internal/card"
)

func mkPool(n int) []card.Basic {
	pool := make([]card.Basic, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, card.Basic{
			CardID:   fmt.Sprintf("card-%02d", i),
			CardName: fmt.Sprintf("Card %02d", i),
			Cost:     i%5 + 1,
			CardTier: i%3 + 1,
		})
	}
	return pool
}

// TestNewDealsOptions covers the option-count property: the option set holds
// min(OptionsCount, pool size) cards and the remainder stays in the pool.
func TestNewDealsOptions(t *testing.T) {
	tcs := []struct {
		name        string
		poolSize    int
		options     int
		wantOptions int
		wantPool    int
	}{
		{name: "pool larger than options", poolSize: 10, options: 3, wantOptions: 3, wantPool: 7},
		{name: "pool smaller than options", poolSize: 2, options: 5, wantOptions: 2, wantPool: 0},
		{name: "empty pool", poolSize: 0, options: 4, wantOptions: 0, wantPool: 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := New(mkPool(tc.poolSize), Config{OptionsCount: tc.options, PicksCount: 1, Type: TypePick}, 42)
			if len(d.Options) != tc.wantOptions {
				t.Fatalf("options = %d, want %d", len(d.Options), tc.wantOptions)
			}
			if len(d.Pool) != tc.wantPool {
				t.Fatalf("pool = %d, want %d", len(d.Pool), tc.wantPool)
			}
		})
	}
}

func TestNewIsSeedDeterministic(t *testing.T) {
	pool := mkPool(12)
	cfg := Config{OptionsCount: 4, PicksCount: 2, Type: TypePick}

	first := New(pool, cfg, 99)
	second := New(pool, cfg, 99)
	for i := range first.Options {
		if first.Options[i].ID() != second.Options[i].ID() {
			t.Fatalf("same seed dealt different options at %d", i)
		}
	}
}

func TestOptionsAndPoolDisjoint(t *testing.T) {
	d := New(mkPool(10), Config{OptionsCount: 4, PicksCount: 2, Type: TypePickAndBan, RerollsAllowed: 1}, 7)

	assertDisjoint := func(d Draft[card.Basic]) {
		t.Helper()
		for _, opt := range d.Options {
			if card.IndexOf(d.Pool, opt.ID()) >= 0 {
				t.Fatalf("card %s present in both options and pool", opt.ID())
			}
		}
	}
	assertDisjoint(d)

	d, err := Pick(d, d.Options[0].ID())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	assertDisjoint(d)
	if card.IndexOf(d.Options, d.Picked[0].ID()) >= 0 {
		t.Fatal("picked card still among options")
	}

	d, err = Reroll(d, 8)
	if err != nil {
		t.Fatalf("Reroll returned error: %v", err)
	}
	assertDisjoint(d)
}

func TestPick(t *testing.T) {
	d := New(mkPool(10), Config{OptionsCount: 3, PicksCount: 2, Type: TypePick}, 1)

	if _, err := Pick(d, "not-an-option-id"); !errors.Is(err, ErrCardNotInOptions) {
		t.Fatalf("Pick unknown card error = %v, want %v", err, ErrCardNotInOptions)
	}

	first := d.Options[0].ID()
	d, err := Pick(d, first)
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if len(d.Picked) != 1 || d.Picked[0].ID() != first {
		t.Fatalf("picked = %v, want [%s]", d.Picked, first)
	}
	if len(d.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(d.Options))
	}

	d, err = Pick(d, d.Options[0].ID())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if !IsComplete(d) {
		t.Fatal("expected draft complete after final pick")
	}

	if _, err := Pick(d, d.Options[0].ID()); !errors.Is(err, ErrPickLimitReached) {
		t.Fatalf("Pick past limit error = %v, want %v", err, ErrPickLimitReached)
	}
}

func TestBan(t *testing.T) {
	pickOnly := New(mkPool(10), Config{OptionsCount: 3, PicksCount: 2, Type: TypePick}, 1)
	if _, err := Ban(pickOnly, pickOnly.Options[0].ID()); !errors.Is(err, ErrBanningNotAllowed) {
		t.Fatalf("Ban in pick draft error = %v, want %v", err, ErrBanningNotAllowed)
	}

	d := New(mkPool(10), Config{OptionsCount: 3, PicksCount: 1, Type: TypePickAndBan}, 1)
	target := d.Options[1].ID()
	d, err := Ban(d, target)
	if err != nil {
		t.Fatalf("Ban returned error: %v", err)
	}
	if len(d.Banned) != 1 || d.Banned[0].ID() != target {
		t.Fatalf("banned = %v, want [%s]", d.Banned, target)
	}
	if card.IndexOf(d.Options, target) >= 0 {
		t.Fatal("banned card still among options")
	}

	if _, err := Ban(d, "not-an-option-id"); !errors.Is(err, ErrCardNotInOptions) {
		t.Fatalf("Ban unknown card error = %v, want %v", err, ErrCardNotInOptions)
	}
}

func TestReroll(t *testing.T) {
	cfg := Config{OptionsCount: 3, PicksCount: 2, Type: TypePick, RerollsAllowed: 1}
	d := New(mkPool(10), cfg, 5)

	picked, err := Pick(d, d.Options[0].ID())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}

	rerolled, err := Reroll(picked, 6)
	if err != nil {
		t.Fatalf("Reroll returned error: %v", err)
	}
	if rerolled.RerollsUsed != 1 {
		t.Fatalf("rerolls used = %d, want 1", rerolled.RerollsUsed)
	}
	if len(rerolled.Options) != 3 {
		t.Fatalf("options after reroll = %d, want 3", len(rerolled.Options))
	}
	if len(rerolled.Picked) != 1 {
		t.Fatalf("picked after reroll = %d, want picks preserved", len(rerolled.Picked))
	}
	// Picked cards never return to circulation.
	pickedID := picked.Picked[0].ID()
	if card.IndexOf(rerolled.Pool, pickedID) >= 0 || card.IndexOf(rerolled.Options, pickedID) >= 0 {
		t.Fatal("picked card re-entered circulation on reroll")
	}
	if len(rerolled.Pool)+len(rerolled.Options) != 9 {
		t.Fatalf("circulating cards = %d, want 9", len(rerolled.Pool)+len(rerolled.Options))
	}

	if _, err := Reroll(rerolled, 7); !errors.Is(err, ErrNoRerollsRemaining) {
		t.Fatalf("Reroll past budget error = %v, want %v", err, ErrNoRerollsRemaining)
	}
}

func TestSkip(t *testing.T) {
	noSkip := New(mkPool(6), Config{OptionsCount: 3, PicksCount: 1, Type: TypePick}, 2)
	if _, err := Skip(noSkip); !errors.Is(err, ErrSkipNotAllowed) {
		t.Fatalf("Skip error = %v, want %v", err, ErrSkipNotAllowed)
	}

	d := New(mkPool(6), Config{OptionsCount: 3, PicksCount: 1, Type: TypePick, AllowSkip: true}, 2)
	skipped, err := Skip(d)
	if err != nil {
		t.Fatalf("Skip returned error: %v", err)
	}
	if len(skipped.Options) != 0 {
		t.Fatalf("options after skip = %d, want 0", len(skipped.Options))
	}
	if len(skipped.Pool) != 6 {
		t.Fatalf("pool after skip = %d, want all cards back", len(skipped.Pool))
	}
	if !IsComplete(skipped) {
		t.Fatal("expected skipped draft to be complete")
	}

	result := GetResult(skipped)
	if !result.Skipped {
		t.Fatal("expected result to be marked skipped")
	}
	if len(result.Picked) != 0 {
		t.Fatalf("picked = %d, want 0", len(result.Picked))
	}
}

func TestIsCompleteOnExhaustion(t *testing.T) {
	// Two cards total, both dealt as options, no skip: draft completes only
	// once the options are consumed.
	d := New(mkPool(2), Config{OptionsCount: 2, PicksCount: 5, Type: TypePick}, 3)
	if IsComplete(d) {
		t.Fatal("draft complete before any selection")
	}

	var err error
	d, err = Pick(d, d.Options[0].ID())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	d, err = Pick(d, d.Options[0].ID())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if !IsComplete(d) {
		t.Fatal("expected complete with empty options and empty pool")
	}

	result := GetResult(d)
	if result.Skipped {
		t.Fatal("exhausted draft with picks must not be marked skipped")
	}
	if len(result.Picked) != 2 {
		t.Fatalf("picked = %d, want 2", len(result.Picked))
	}
}
