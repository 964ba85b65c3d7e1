package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/recipes/internal"
	"github.com/starford/recipes/internal/apperr"
	pkgconfig "github.com/starford/recipes/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if file := cmd.String("file"); file != "" {
		cfg.Store.Path = file
	}
	if level := cmd.String("log-level"); level != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return internal.Run(ctx, cmd.Args().Slice(),
		internal.WithConfig(cfg),
		internal.WithProgram(internal.DefaultProgram),
	)
}

func main() {
	cmd := &cli.Command{
		Name:     internal.DefaultProgram,
		Usage:    "Manage recipes stored in a local JSON file",
		Action:   run,
		HideHelp: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("RECIPES_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the recipes JSON file",
				Sources: cli.EnvVars("RECIPES_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("RECIPES_LOG_LEVEL"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, apperr.ErrInvalidCommand) {
			slog.Error("application error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
