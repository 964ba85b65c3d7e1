package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/starford/recipes/internal/apperr"
)

var (
	errorColor  = color.New(color.FgRed)
	noticeColor = color.New(color.FgYellow)
	headerColor = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.Faint)
)

// Router dispatches argv to the registered commands.
type Router struct {
	registry *Registry
	program  string
	out      io.Writer
	logger   *slog.Logger
}

// NewRouter creates a router over reg. program is the name shown in
// guidance messages.
func NewRouter(reg *Registry, program string, out io.Writer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{registry: reg, program: program, out: out, logger: logger}
}

// Dispatch runs the command named by args[0] with the remaining args.
// With no args it prints the instructions. Panics inside handlers are
// recovered and returned as errors.
func (rt *Router) Dispatch(ctx context.Context, args []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			rt.logger.Error("command panicked", slog.Any("panic", p))
			err = fmt.Errorf("unexpected failure: %v", p)
		}
	}()

	if len(args) == 0 {
		Instructions(rt.out, rt.program)
		return nil
	}

	token := strings.ToLower(args[0])
	rt.logger.Debug("dispatch", slog.String("command", token))

	cmd, ok := rt.registry.Lookup(token)
	if !ok {
		return InvalidCommand(rt.out, rt.program, token)
	}
	return cmd.Execute(ctx, Invocation{Args: args[1:], Registry: rt.registry})
}

// Instructions writes the text shown when no command is given.
func Instructions(w io.Writer, program string) {
	headerColor.Fprintln(w, "---RECIPES CLI---")
	fmt.Fprintf(w, "To view available commands, run: %s help\n", program)
	fmt.Fprintf(w, "To view details about a command, run: %s help 'command'\n", program)
}

// InvalidCommand reports an unknown token and returns apperr.ErrInvalidCommand.
func InvalidCommand(w io.Writer, program, token string) error {
	errorColor.Fprintf(w, "No command '%s', please run '%s help'\n", token, program)
	return fmt.Errorf("%w: %q", apperr.ErrInvalidCommand, token)
}
