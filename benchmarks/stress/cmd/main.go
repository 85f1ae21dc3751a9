package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ringlab/ring/benchmarks/stress/internal/config"
	"github.com/ringlab/ring/benchmarks/stress/internal/simulator"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "configs/default.toml", "Path to configuration file")
	flag.Parse()

	if err := run(configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	app := simulator.New(c, logger, os.Stdout)
	if err := app.Simulate(ctx); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	return nil
}
