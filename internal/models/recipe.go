// Package models defines the domain types for the recipe manager.
package models

// IngredientSection groups ingredients under a named header,
// e.g. "For the frosting".
type IngredientSection struct {
	SectionHeader string   `json:"sectionHeader"`
	Items         []string `json:"items"`
}

// Recipe is a single persisted record.
//
// Exactly one of Ingredients or IngredientSections is populated at creation
// time, but both fields are always serialized.
type Recipe struct {
	Name               string              `json:"name"`
	PrepTime           string              `json:"prepTime"`
	CookTime           string              `json:"cookTime"`
	Servings           string              `json:"servings"`
	Ingredients        []string            `json:"ingredients"`
	IngredientSections []IngredientSection `json:"ingredientSections"`
	Directions         []string            `json:"directions"`
	Notes              []string            `json:"notes"`
	Tags               []string            `json:"tags"`
}

// Normalize returns a copy of r with nil collections replaced by empty ones
// so the JSON form never contains null arrays. r itself is not modified.
func (r Recipe) Normalize() Recipe {
	r.Ingredients = nonNil(r.Ingredients)
	r.Directions = nonNil(r.Directions)
	r.Notes = nonNil(r.Notes)
	r.Tags = nonNil(r.Tags)
	sections := make([]IngredientSection, len(r.IngredientSections))
	for i, s := range r.IngredientSections {
		sections[i] = IngredientSection{SectionHeader: s.SectionHeader, Items: nonNil(s.Items)}
	}
	r.IngredientSections = sections
	return r
}

// Sectioned reports whether the recipe uses sectioned ingredients.
func (r Recipe) Sectioned() bool {
	return len(r.IngredientSections) > 0
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
