package builder

import (
	"context"
	"strings"

	"github.com/starford/recipes/internal/prompt"
)

type collectState int

const (
	stateCollecting collectState = iota
	stateDone
)

// lineCollector gathers non-blank answers until the first blank one.
type lineCollector struct {
	question string
	state    collectState
	lines    []string
}

func newLineCollector(question string) *lineCollector {
	return &lineCollector{question: question, lines: []string{}}
}

// feed advances the machine with one answer. A blank answer moves it to
// stateDone and is not recorded.
func (c *lineCollector) feed(answer string) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		c.state = stateDone
		return
	}
	c.lines = append(c.lines, answer)
}

func (c *lineCollector) run(ctx context.Context, p prompt.Prompter) ([]string, error) {
	for c.state == stateCollecting {
		answer, err := p.Ask(ctx, c.question)
		if err != nil {
			return nil, err
		}
		c.feed(answer)
	}
	return c.lines, nil
}

// collectLines asks question repeatedly until a blank answer.
func collectLines(ctx context.Context, p prompt.Prompter, question string) ([]string, error) {
	return newLineCollector(question).run(ctx, p)
}
