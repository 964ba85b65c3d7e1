package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/starford/recipes/internal/apperr"
	"github.com/starford/recipes/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, in string) (*App, *bytes.Buffer) {
	t.Helper()
	store := testutil.TestStore(t)
	out := &bytes.Buffer{}
	return &App{
		Program:   "recipes",
		Store:     store,
		StorePath: store.Path(),
		In:        strings.NewReader(in),
		Out:       out,
		Logger:    quietLogger(),
		ExportDir: t.TempDir(),
	}, out
}

func newTestRouter(t *testing.T, app *App) *Router {
	t.Helper()
	rt, err := app.NewRouter()
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return rt
}

func instructionsText() string {
	var b bytes.Buffer
	Instructions(&b, "recipes")
	return b.String()
}

func TestDispatch_NoArgsPrintsInstructions(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := newTestRouter(t, app).Dispatch(context.Background(), nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if out.String() != instructionsText() {
		t.Errorf("output = %q, want instructions", out.String())
	}
	if !strings.HasPrefix(out.String(), "---RECIPES CLI---\n") {
		t.Errorf("unexpected instructions: %q", out.String())
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, "")
	err := newTestRouter(t, app).Dispatch(context.Background(), []string{"Bake"})
	if !errors.Is(err, apperr.ErrInvalidCommand) {
		t.Fatalf("err = %v, want ErrInvalidCommand", err)
	}
	if got, want := out.String(), "No command 'bake', please run 'recipes help'\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDispatch_NameAndAliasHitSameHandler(t *testing.T) {
	var hits []string
	reg, err := NewRegistry(
		Command{Kind: KindSearch, Name: "search", Alias: "s",
			Execute: func(_ context.Context, inv Invocation) error {
				hits = append(hits, "search:"+strings.Join(inv.Args, ","))
				return nil
			},
			Help: func(io.Writer) {}},
	)
	if err != nil {
		t.Fatal(err)
	}
	rt := NewRouter(reg, "recipes", io.Discard, quietLogger())
	for _, argv := range [][]string{{"search", "t=x"}, {"s", "t=x"}, {"SEARCH", "t=x"}, {"S", "t=x"}} {
		if err := rt.Dispatch(context.Background(), argv); err != nil {
			t.Fatalf("Dispatch %v: %v", argv, err)
		}
	}
	for _, h := range hits {
		if h != "search:t=x" {
			t.Errorf("hit = %q", h)
		}
	}
	if len(hits) != 4 {
		t.Errorf("hits = %d, want 4", len(hits))
	}
}

func TestDispatch_AllAliasesResolve(t *testing.T) {
	app, _ := newTestApp(t, "")
	rt := newTestRouter(t, app)
	for _, c := range app.Commands() {
		byName, ok := rt.registry.Lookup(c.Name)
		if !ok {
			t.Fatalf("name %q not found", c.Name)
		}
		byAlias, ok := rt.registry.Lookup(c.Alias)
		if !ok {
			t.Fatalf("alias %q not found", c.Alias)
		}
		if byName.Kind != byAlias.Kind || byName.Kind != c.Kind {
			t.Errorf("%s: name kind %v, alias kind %v", c.Name, byName.Kind, byAlias.Kind)
		}
	}
}

func TestDispatch_RecoversPanic(t *testing.T) {
	reg, _ := NewRegistry(Command{Name: "boom", Alias: "b",
		Execute: func(context.Context, Invocation) error { panic("kaboom") },
		Help:    func(io.Writer) {}})
	err := NewRouter(reg, "recipes", io.Discard, quietLogger()).Dispatch(context.Background(), []string{"boom"})
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("err = %v, want recovered panic", err)
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	noop := func(context.Context, Invocation) error { return nil }
	help := func(io.Writer) {}
	_, err := NewRegistry(
		Command{Name: "search", Alias: "s", Execute: noop, Help: help},
		Command{Name: "sort", Alias: "s", Execute: noop, Help: help},
	)
	if !errors.Is(err, apperr.ErrDuplicateCommand) {
		t.Errorf("err = %v, want ErrDuplicateCommand", err)
	}
}

func TestNewRegistry_RequiresHandlers(t *testing.T) {
	if _, err := NewRegistry(Command{Name: "x"}); err == nil {
		t.Error("expected error for command without handlers")
	}
}

func TestRegistry_CommandsIsACopy(t *testing.T) {
	app, _ := newTestApp(t, "")
	reg, err := NewRegistry(app.Commands()...)
	if err != nil {
		t.Fatal(err)
	}
	cmds := reg.Commands()
	cmds[0].Name = "mutated"
	if reg.Commands()[0].Name != "help" {
		t.Error("registry was mutated through Commands()")
	}
}

func TestHelp_ListsAllCommands(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := newTestRouter(t, app).Dispatch(context.Background(), []string{"help"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	want := `---RECIPES CLI AVAILABLE COMMANDS---
Full Name: Help.  Alias: h
Full Name: Add.  Alias: a
Full Name: Search.  Alias: s
Full Name: Update.  Alias: u
Full Name: Delete.  Alias: d
Full Name: Print.  Alias: p
Full Name: Open.  Alias: o
`
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestHelp_ForCommandByAlias(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := newTestRouter(t, app).Dispatch(context.Background(), []string{"h", "s"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !strings.HasPrefix(out.String(), "RECIPE CLI -- SEARCH COMMAND") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHelp_UnknownTarget(t *testing.T) {
	app, out := newTestApp(t, "")
	err := newTestRouter(t, app).Dispatch(context.Background(), []string{"help", "bake"})
	if !errors.Is(err, apperr.ErrInvalidCommand) {
		t.Fatalf("err = %v, want ErrInvalidCommand", err)
	}
	if !strings.Contains(out.String(), "No command 'bake'") {
		t.Errorf("output = %q", out.String())
	}
}

func TestDelete_ShowsHelp(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := newTestRouter(t, app).Dispatch(context.Background(), []string{"delete"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !strings.HasPrefix(out.String(), "---RECIPES CLI AVAILABLE COMMANDS---") {
		t.Errorf("output = %q", out.String())
	}
}

func TestUpdate_NotImplemented(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := newTestRouter(t, app).Dispatch(context.Background(), []string{"u"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !strings.Contains(out.String(), "not implemented") {
		t.Errorf("output = %q", out.String())
	}
}

func TestKind_String(t *testing.T) {
	if KindOpen.String() != "open" || Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected kind strings: %s, %s", KindOpen, Kind(42))
	}
}
