package command

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/starford/recipes/internal/storage"
)

// App holds the collaborators the command handlers share.
type App struct {
	Program   string
	Store     storage.Provider
	StorePath string
	In        io.Reader
	Out       io.Writer
	Logger    *slog.Logger

	// ExportDir is where open writes rendered recipes.
	ExportDir string
	// OpenFile launches a viewer for an exported file.
	OpenFile func(ctx context.Context, path string) error
	// WatchDebounce is the settle time for print --watch.
	WatchDebounce time.Duration
}

// Commands returns the command table in display order.
func (a *App) Commands() []Command {
	return []Command{
		{Kind: KindHelp, Name: "help", Alias: "h", Execute: a.help, Help: helpDoc},
		{Kind: KindAdd, Name: "add", Alias: "a", Execute: a.add, Help: addDoc},
		{Kind: KindSearch, Name: "search", Alias: "s", Execute: a.search, Help: searchDoc},
		{Kind: KindUpdate, Name: "update", Alias: "u", Execute: a.update, Help: updateDoc},
		// delete has no behavior of its own yet and shows help instead.
		{Kind: KindDelete, Name: "delete", Alias: "d", Execute: a.help, Help: helpDoc},
		{Kind: KindPrint, Name: "print", Alias: "p", Execute: a.print, Help: printDoc},
		{Kind: KindOpen, Name: "open", Alias: "o", Execute: a.open, Help: openDoc},
	}
}

// NewRouter builds the registry from a's command table and wraps it in a Router.
func (a *App) NewRouter() (*Router, error) {
	reg, err := NewRegistry(a.Commands()...)
	if err != nil {
		return nil, err
	}
	return NewRouter(reg, a.Program, a.Out, a.logger()), nil
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
