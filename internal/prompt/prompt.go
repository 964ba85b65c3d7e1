// Package prompt implements line-oriented question/answer I/O.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/starford/recipes/internal/apperr"
)

// Prompter asks one question at a time and returns the answered line.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Lines is a Prompter that writes questions to out and reads answers from in.
type Lines struct {
	in  *bufio.Reader
	out io.Writer

	mu     sync.Mutex
	closed bool
}

// Verify *Lines satisfies Prompter at compile time.
var _ Prompter = (*Lines)(nil)

// NewLines creates a Prompter over in and out.
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{in: bufio.NewReader(in), out: out}
}

type answer struct {
	line string
	err  error
}

// Ask writes question and blocks until a full line is read or ctx is done.
// The returned line has its terminator stripped. A final unterminated line
// is returned as is; end of input after that is an apperr.ErrInput.
func (l *Lines) Ask(ctx context.Context, question string) (string, error) {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return "", fmt.Errorf("%w: prompt closed", apperr.ErrInput)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrInput, err)
	}

	if _, err := io.WriteString(l.out, question); err != nil {
		return "", fmt.Errorf("%w: write prompt: %w", apperr.ErrInput, err)
	}

	ch := make(chan answer, 1)
	go func() {
		line, err := l.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", apperr.ErrInput, ctx.Err())
	case a := <-ch:
		if a.err != nil && !(errors.Is(a.err, io.EOF) && a.line != "") {
			return "", fmt.Errorf("%w: read: %w", apperr.ErrInput, a.err)
		}
		return strings.TrimRight(a.line, "\r\n"), nil
	}
}

// Close releases the prompter. Further calls to Ask fail.
func (l *Lines) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}
