package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/recipes/internal/render"
	"github.com/starford/recipes/internal/watcher"
)

func (a *App) print(ctx context.Context, inv Invocation) error {
	watch := false
	var tokens []string
	for _, arg := range inv.Args {
		if arg == "--watch" || arg == "-w" {
			watch = true
			continue
		}
		tokens = append(tokens, arg)
	}

	if err := a.printMatches(ctx, tokens); err != nil && !watch {
		return err
	}
	if !watch {
		return nil
	}
	return a.watchAndPrint(ctx, tokens)
}

func (a *App) printMatches(ctx context.Context, tokens []string) error {
	matches, err := a.find(ctx, tokens)
	if err != nil || matches == nil {
		return err
	}
	rd := render.New(a.Out)
	for i, r := range matches {
		if i > 0 {
			dimColor.Fprintln(a.Out, "---")
			fmt.Fprintln(a.Out)
		}
		out, err := rd.Render(r)
		if err != nil {
			return err
		}
		fmt.Fprint(a.Out, out)
	}
	return nil
}

// watchAndPrint re-prints on every change to the backing file until ctx is
// cancelled or the process receives SIGINT/SIGTERM.
func (a *App) watchAndPrint(ctx context.Context, tokens []string) error {
	logger := a.logger()
	g, gCtx := errgroup.WithContext(ctx)
	wCtx, stop := context.WithCancel(gCtx)
	defer stop()

	g.Go(func() error {
		defer stop()
		return watcher.Watch(wCtx, a.StorePath, a.WatchDebounce, logger, func() {
			dimColor.Fprintf(a.Out, "\n--- %s changed ---\n\n", a.StorePath)
			if err := a.printMatches(wCtx, tokens); err != nil {
				logger.Warn("print: refresh failed", slog.String("error", err.Error()))
			}
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-wCtx.Done():
		}
		stop()
		return nil
	})

	return g.Wait()
}
