// Package builder drives the interactive construction of a new recipe.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/recipes/internal/models"
	"github.com/starford/recipes/internal/prompt"
)

// Questions asked while building a recipe.
const (
	QuestionName       = "Recipe name: "
	QuestionPrepTime   = "Prep time: "
	QuestionCookTime   = "Cook time: "
	QuestionServings   = "Servings: "
	QuestionSplit      = "Split ingredients into sections? (y/n): "
	QuestionIngredient = "Ingredient (blank to finish): "
	QuestionSection    = "Section header (blank to finish): "
	QuestionDirection  = "Direction step (blank to finish): "
	QuestionNote       = "Note (blank to finish): "
	QuestionTag        = "Tag (blank to finish): "
)

// Builder asks the questions that make up a recipe, one at a time.
type Builder struct {
	prompter prompt.Prompter
	logger   *slog.Logger
}

// New creates a Builder reading answers from p.
func New(p prompt.Prompter, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{prompter: p, logger: logger}
}

// Build runs the full question sequence. Any input failure aborts the
// sequence and no recipe is returned.
func (b *Builder) Build(ctx context.Context) (models.Recipe, error) {
	r, err := b.build(ctx)
	if err != nil {
		b.logger.Error("recipe input aborted", slog.String("error", err.Error()))
		return models.Recipe{}, err
	}
	b.logger.Debug("recipe collected", slog.String("name", r.Name))
	return r.Normalize(), nil
}

func (b *Builder) build(ctx context.Context) (models.Recipe, error) {
	var r models.Recipe
	var err error

	fields := []struct {
		question string
		dst      *string
	}{
		{QuestionName, &r.Name},
		{QuestionPrepTime, &r.PrepTime},
		{QuestionCookTime, &r.CookTime},
		{QuestionServings, &r.Servings},
	}
	for _, f := range fields {
		if *f.dst, err = b.line(ctx, f.question); err != nil {
			return r, err
		}
	}

	split, err := b.yesNo(ctx, QuestionSplit)
	if err != nil {
		return r, err
	}
	if split {
		if r.IngredientSections, err = b.sections(ctx); err != nil {
			return r, err
		}
	} else {
		if r.Ingredients, err = collectLines(ctx, b.prompter, QuestionIngredient); err != nil {
			return r, err
		}
	}

	lists := []struct {
		question string
		dst      *[]string
	}{
		{QuestionDirection, &r.Directions},
		{QuestionNote, &r.Notes},
		{QuestionTag, &r.Tags},
	}
	for _, l := range lists {
		if *l.dst, err = collectLines(ctx, b.prompter, l.question); err != nil {
			return r, err
		}
	}
	return r, nil
}

func (b *Builder) line(ctx context.Context, question string) (string, error) {
	answer, err := b.prompter.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// yesNo re-asks until the trimmed answer is exactly "y" or "n".
func (b *Builder) yesNo(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := b.line(ctx, question)
		if err != nil {
			return false, err
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

func (b *Builder) sections(ctx context.Context) ([]models.IngredientSection, error) {
	sections := []models.IngredientSection{}
	for {
		header, err := b.line(ctx, QuestionSection)
		if err != nil {
			return nil, err
		}
		if header == "" {
			return sections, nil
		}
		items, err := collectLines(ctx, b.prompter, fmt.Sprintf("Ingredient for %s (blank to finish): ", header))
		if err != nil {
			return nil, err
		}
		sections = append(sections, models.IngredientSection{SectionHeader: header, Items: items})
	}
}
