package command

import (
	"context"
	"fmt"
	"io"
	"strings"
)

func (a *App) help(_ context.Context, inv Invocation) error {
	if len(inv.Args) == 0 {
		listCommands(a.Out, inv.Registry)
		return nil
	}
	token := strings.ToLower(inv.Args[0])
	cmd, ok := inv.Registry.Lookup(token)
	if !ok {
		return InvalidCommand(a.Out, a.Program, token)
	}
	cmd.Help(a.Out)
	return nil
}

func listCommands(w io.Writer, reg *Registry) {
	headerColor.Fprintln(w, "---RECIPES CLI AVAILABLE COMMANDS---")
	for _, c := range reg.Commands() {
		fmt.Fprintf(w, "Full Name: %s.  Alias: %s\n", strings.ToUpper(c.Name[:1])+c.Name[1:], c.Alias)
	}
}

func helpDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- HELP COMMAND
Full: help, Alias: h
Usage:
recipes help
recipes help 'command'
Examples
Print list of commands: recipes help
Print documentation for search command: recipes help search
`)
}

func addDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- ADD COMMAND
Full: add, Alias: a
Usage:
recipes add
Asks for the name, prep time, cook time and servings, then ingredients
(optionally split into sections), directions, notes and tags.
Lists end at the first blank line. The recipe is saved once every
question is answered.
`)
}

func searchDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- SEARCH COMMAND
Full: search, Alias: s
Usage:
recipes search [name=<text>] [tag=<t1,t2>] [ingredients=<i1,i2>]
Short keys: n=, t=, i=
Matching is case-insensitive substring matching. Every listed tag and
ingredient must match. Sectioned ingredients are not searched.
Examples
recipes search n=curry
recipes search t=dessert,quick i=egg
`)
}

func updateDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- UPDATE COMMAND
Full: update, Alias: u
Not implemented yet.
`)
}

func printDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- PRINT COMMAND
Full: print, Alias: p
Usage:
recipes print [filters...] [--watch]
Prints every matching recipe in full. Filters are the same as search.
With --watch (-w) the output is refreshed whenever recipes.json changes.
Examples
recipes print n=cake
recipes print t=dinner --watch
`)
}

func openDoc(w io.Writer) {
	fmt.Fprint(w, `RECIPE CLI -- OPEN COMMAND
Full: open, Alias: o
Usage:
recipes open [filters...]
Exports the first matching recipe as Markdown and opens it in the
configured viewer. Filters are the same as search.
Examples
recipes open n=curry
`)
}
