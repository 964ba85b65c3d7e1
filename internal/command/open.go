package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gosimple/slug"

	"github.com/starford/recipes/internal/filter"
	"github.com/starford/recipes/internal/render"
	"github.com/starford/recipes/internal/storage"
)

func (a *App) open(ctx context.Context, inv Invocation) error {
	if filter.Parse(inv.Args).Empty() {
		noticeColor.Fprintln(a.Out, "No filters given, opening the first saved recipe.")
	}
	matches, err := a.find(ctx, inv.Args)
	if err != nil || matches == nil {
		return err
	}
	r := matches[0]
	if len(matches) > 1 {
		noticeColor.Fprintf(a.Out, "%d recipes match, opening the first.\n", len(matches))
	}

	if err := os.MkdirAll(a.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	exports, err := storage.NewFS(a.ExportDir)
	if err != nil {
		return err
	}

	name := slug.Make(r.Name)
	if name == "" {
		name = "recipe"
	}
	path, err := exports.Write(name+".md", []byte(render.Markdown(r)))
	if err != nil {
		errorColor.Fprintf(a.Out, "Could not export recipe: %v\n", err)
		return err
	}
	a.logger().Debug("exported recipe", slog.String("path", path))

	fmt.Fprintf(a.Out, "Opening %s...\n", path)
	if a.OpenFile == nil {
		return nil
	}
	if err := a.OpenFile(ctx, path); err != nil {
		errorColor.Fprintf(a.Out, "Error opening viewer: %v\n", err)
		return err
	}
	return nil
}
