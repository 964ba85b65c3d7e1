package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/starford/recipes/internal/apperr"
)

func TestAsk_ReadsLinesInOrder(t *testing.T) {
	var out bytes.Buffer
	p := NewLines(strings.NewReader("Pancakes\r\n10 min\nlast"), &out)
	ctx := context.Background()

	for _, want := range []string{"Pancakes", "10 min", "last"} {
		got, err := p.Ask(ctx, "? ")
		if err != nil {
			t.Fatalf("Ask: %v", err)
		}
		if got != want {
			t.Errorf("got = %q, want %q", got, want)
		}
	}
	if out.String() != "? ? ? " {
		t.Errorf("prompts written = %q", out.String())
	}
}

func TestAsk_EOFIsInputError(t *testing.T) {
	p := NewLines(strings.NewReader(""), io.Discard)
	_, err := p.Ask(context.Background(), "name: ")
	if !errors.Is(err, apperr.ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want wrapped io.EOF", err)
	}
}

func TestAsk_CancelledContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewLines(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Ask(ctx, "name: ")
	if !errors.Is(err, apperr.ErrInput) || !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want ErrInput wrapping context.Canceled", err)
	}
}

func TestAsk_AfterClose(t *testing.T) {
	p := NewLines(strings.NewReader("x\n"), io.Discard)
	_ = p.Close()
	if _, err := p.Ask(context.Background(), "q"); !errors.Is(err, apperr.ErrInput) {
		t.Errorf("err = %v, want ErrInput", err)
	}
}
