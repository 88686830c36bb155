//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/asciify/internal/config"
	"github.com/farcloser/asciify/internal/mapping"
)

type settingsKey struct{}

// settings is resolved once before any command runs.
type settings struct {
	config *config.Config
	table  *mapping.Table
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return ctx, fmt.Errorf("loading configuration: %w", err)
		}

		cfg = loaded

		slog.Debug("main.setup", "config", path, "replacements", len(cfg.Replacements))
	}

	table, err := cfg.Table(mapping.Default())
	if err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, settingsKey{}, &settings{config: cfg, table: table}), nil
}

func settingsFrom(ctx context.Context) *settings {
	if set, ok := ctx.Value(settingsKey{}).(*settings); ok {
		return set
	}

	return &settings{config: config.Default(), table: mapping.Default()}
}
