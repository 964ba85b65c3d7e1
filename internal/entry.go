// Package internal provides the application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/starford/recipes/internal/command"
	"github.com/starford/recipes/internal/storage"
)

// DefaultProgram is the name used in guidance messages.
const DefaultProgram = "recipes"

// Run dispatches args (program name excluded) with the given options.
func Run(ctx context.Context, args []string, opts ...Option) error {
	app := &application{
		program: DefaultProgram,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(app.stderr, cfg.App)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("store_path", cfg.Store.Path),
		slog.String("open_command", cfg.Open.Command),
		slog.String("open_dir", cfg.Open.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store := storage.NewJSONFile(cfg.Store.Path)

	cmds := &command.App{
		Program:       app.program,
		Store:         store,
		StorePath:     store.Path(),
		In:            app.stdin,
		Out:           app.stdout,
		Logger:        logger,
		ExportDir:     cfg.Open.Dir,
		OpenFile:      opener(cfg.Open.Command),
		WatchDebounce: cfg.Watch.Debounce,
	}

	router, err := cmds.NewRouter()
	if err != nil {
		return fmt.Errorf("build commands: %w", err)
	}

	return router.Dispatch(ctx, args)
}

func newLogger(w io.Writer, cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// opener starts the configured viewer on a file without waiting for it.
func opener(commandLine string) func(ctx context.Context, path string) error {
	return func(_ context.Context, path string) error {
		fields := strings.Fields(commandLine)
		if len(fields) == 0 {
			return fmt.Errorf("open: no viewer command configured")
		}
		args := append(fields[1:], path)
		if err := exec.Command(fields[0], args...).Start(); err != nil {
			return fmt.Errorf("open: start %s: %w", fields[0], err)
		}
		return nil
	}
}
