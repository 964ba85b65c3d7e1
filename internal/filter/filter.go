// Package filter parses search tokens into criteria and evaluates them
// against recipes.
package filter

import (
	"context"
	"strings"

	"github.com/starford/recipes/internal/apperr"
	"github.com/starford/recipes/internal/models"
	"github.com/starford/recipes/internal/storage"
)

// Criteria is the structured form of key=value search tokens.
// Zero values match everything.
type Criteria struct {
	Name        string
	Tags        []string
	Ingredients []string
}

type field int

const (
	fieldName field = iota
	fieldTags
	fieldIngredients
)

// keys maps every recognized token prefix (without "=") to its field.
var keys = map[string]field{
	"name":        fieldName,
	"n":           fieldName,
	"tag":         fieldTags,
	"t":           fieldTags,
	"ingredients": fieldIngredients,
	"i":           fieldIngredients,
}

// Parse scans tokens in order. Later tokens of the same kind replace earlier
// ones wholesale; unrecognized tokens are ignored.
func Parse(tokens []string) Criteria {
	var c Criteria
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			continue
		}
		f, known := keys[key]
		if !known {
			continue
		}
		switch f {
		case fieldName:
			c.Name = strings.TrimSpace(value)
		case fieldTags:
			c.Tags = splitList(value)
		case fieldIngredients:
			c.Ingredients = splitList(value)
		}
	}
	return c
}

// Empty reports whether c matches every recipe.
func (c Criteria) Empty() bool {
	return c.Name == "" && len(c.Tags) == 0 && len(c.Ingredients) == 0
}

// Matches reports whether r satisfies every criterion.
//
// Only the flat ingredient list is searched; sectioned ingredients never
// match an ingredient criterion.
func Matches(r models.Recipe, c Criteria) bool {
	if c.Name != "" && !containsFold(r.Name, c.Name) {
		return false
	}
	if !allFound(c.Tags, r.Tags) {
		return false
	}
	return allFound(c.Ingredients, r.Ingredients)
}

// Search loads the collection and keeps matching recipes in order.
// An empty collection yields apperr.ErrEmptyCollection and an empty result
// set yields apperr.ErrNoMatches, so callers can report them differently.
func Search(ctx context.Context, store storage.Provider, c Criteria) ([]models.Recipe, error) {
	recipes, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, apperr.ErrEmptyCollection
	}
	var out []models.Recipe
	for _, r := range recipes {
		if Matches(r, c) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, apperr.ErrNoMatches
	}
	return out, nil
}

// allFound reports whether every wanted term is a case-insensitive substring
// of at least one entry in have.
func allFound(wanted, have []string) bool {
	for _, w := range wanted {
		found := false
		for _, h := range have {
			if containsFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
