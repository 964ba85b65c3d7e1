// Package command routes sub-commands to their handlers.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/starford/recipes/internal/apperr"
)

// Kind enumerates the supported commands.
type Kind int

const (
	KindHelp Kind = iota
	KindAdd
	KindSearch
	KindUpdate
	KindDelete
	KindPrint
	KindOpen
)

func (k Kind) String() string {
	switch k {
	case KindHelp:
		return "help"
	case KindAdd:
		return "add"
	case KindSearch:
		return "search"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindPrint:
		return "print"
	case KindOpen:
		return "open"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Invocation is what an execute handler receives: the arguments after the
// command token and the registry it was resolved from.
type Invocation struct {
	Args     []string
	Registry *Registry
}

// ExecuteFunc runs a command.
type ExecuteFunc func(ctx context.Context, inv Invocation) error

// HelpFunc writes a command's documentation.
type HelpFunc func(w io.Writer)

// Command is one registry entry.
type Command struct {
	Kind    Kind
	Name    string
	Alias   string
	Execute ExecuteFunc
	Help    HelpFunc
}

// Registry is an immutable ordered list of commands.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry builds a registry. Names and aliases must be unique across
// all commands.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		commands: make([]Command, len(cmds)),
		index:    make(map[string]int, 2*len(cmds)),
	}
	copy(r.commands, cmds)
	for i, c := range r.commands {
		if c.Name == "" || c.Execute == nil || c.Help == nil {
			return nil, fmt.Errorf("command %q: name, execute and help are required", c.Name)
		}
		for _, key := range []string{c.Name, c.Alias} {
			if key == "" {
				continue
			}
			if j, dup := r.index[key]; dup {
				return nil, fmt.Errorf("%w: %q used by %s and %s", apperr.ErrDuplicateCommand, key, r.commands[j].Name, c.Name)
			}
			r.index[key] = i
		}
	}
	return r, nil
}

// Lookup resolves token by exact name or alias.
func (r *Registry) Lookup(token string) (Command, bool) {
	i, ok := r.index[token]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Commands returns the registered commands in order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
