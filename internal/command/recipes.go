package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/recipes/internal/apperr"
	"github.com/starford/recipes/internal/builder"
	"github.com/starford/recipes/internal/filter"
	"github.com/starford/recipes/internal/models"
	"github.com/starford/recipes/internal/prompt"
)

func (a *App) add(ctx context.Context, _ Invocation) error {
	p := prompt.NewLines(a.In, a.Out)
	defer p.Close()

	r, err := builder.New(p, a.logger()).Build(ctx)
	if err != nil {
		fmt.Fprintln(a.Out)
		errorColor.Fprintf(a.Out, "Recipe not saved: %v\n", err)
		return err
	}

	if err := a.Store.Append(ctx, r); err != nil {
		a.logger().Error("append failed", slog.String("name", r.Name), slog.String("error", err.Error()))
		errorColor.Fprintf(a.Out, "Recipe not saved: %v\n", err)
		return err
	}
	fmt.Fprintf(a.Out, "Saved recipe '%s'.\n", r.Name)
	return nil
}

func (a *App) search(ctx context.Context, inv Invocation) error {
	matches, err := a.find(ctx, inv.Args)
	if err != nil || matches == nil {
		return err
	}
	for _, r := range matches {
		fmt.Fprint(a.Out, r.Name)
		if len(r.Tags) > 0 {
			dimColor.Fprintf(a.Out, " [%s]", strings.Join(r.Tags, ", "))
		}
		fmt.Fprintln(a.Out)
	}
	return nil
}

func (a *App) update(_ context.Context, _ Invocation) error {
	noticeColor.Fprintln(a.Out, "The update command is not implemented yet.")
	return nil
}

// find parses filter tokens and runs the search. Empty-store and no-match
// outcomes are reported to the user and yield a nil slice with a nil error.
func (a *App) find(ctx context.Context, tokens []string) ([]models.Recipe, error) {
	crit := filter.Parse(tokens)
	a.logger().Debug("search",
		slog.String("name", crit.Name),
		slog.String("tags", strings.Join(crit.Tags, ",")),
		slog.String("ingredients", strings.Join(crit.Ingredients, ",")))

	matches, err := filter.Search(ctx, a.Store, crit)
	switch {
	case errors.Is(err, apperr.ErrEmptyCollection):
		noticeColor.Fprintln(a.Out, "No recipes saved yet. Run 'add' to create one.")
		return nil, nil
	case errors.Is(err, apperr.ErrNoMatches):
		noticeColor.Fprintln(a.Out, "No recipes match your search.")
		return nil, nil
	case err != nil:
		errorColor.Fprintf(a.Out, "Could not load recipes: %v\n", err)
		return nil, err
	}
	return matches, nil
}
