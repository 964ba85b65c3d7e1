// Package render turns recipes into Markdown for printing and export.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"

	"github.com/starford/recipes/internal/models"
)

// DefaultWidth is the word-wrap width for terminal output.
const DefaultWidth = 80

// Markdown returns the plain Markdown form of r.
func Markdown(r models.Recipe) string {
	var b strings.Builder

	name := r.Name
	if name == "" {
		name = "Untitled recipe"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)

	var facts []string
	for _, f := range []struct{ label, value string }{
		{"Prep", r.PrepTime},
		{"Cook", r.CookTime},
		{"Servings", r.Servings},
	} {
		if f.value != "" {
			facts = append(facts, fmt.Sprintf("**%s:** %s", f.label, f.value))
		}
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " · "))
		b.WriteString("\n\n")
	}

	if r.Sectioned() {
		b.WriteString("## Ingredients\n\n")
		for _, s := range r.IngredientSections {
			fmt.Fprintf(&b, "### %s\n\n", s.SectionHeader)
			bullets(&b, s.Items)
		}
	} else if len(r.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		bullets(&b, r.Ingredients)
	}

	if len(r.Directions) > 0 {
		b.WriteString("## Directions\n\n")
		for i, d := range r.Directions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
		b.WriteString("\n")
	}

	if len(r.Notes) > 0 {
		b.WriteString("## Notes\n\n")
		bullets(&b, r.Notes)
	}

	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = "`" + t + "`"
		}
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, " "))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

// Renderer writes recipes to a destination, styling them when it is a terminal.
type Renderer struct {
	styled bool
	width  int
}

// New creates a Renderer for out. Styling is enabled only when out is a
// terminal.
func New(out io.Writer) *Renderer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd())
	}
	return &Renderer{styled: styled, width: DefaultWidth}
}

// Render returns the display form of r.
func (rd *Renderer) Render(r models.Recipe) (string, error) {
	md := Markdown(r)
	if !rd.styled {
		return md, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(rd.width),
	)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
