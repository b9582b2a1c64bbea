// Package main provides a CLI that exercises the full progression loop:
// drafting, deck and hand building, snapshotting, matchmaking, and bot
// generation, with a reproducible seed.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	simulatecmd "github.com/emberlane/gauntlet/internal/cmd/simulate"
	"github.com/emberlane/gauntlet/internal/platform/otel"
)

func main() {
	cfg, err := simulatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SIMULATE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "gauntlet-simulate")
	if err != nil {
		log.Fatalf("otel setup: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	if err := simulatecmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}
