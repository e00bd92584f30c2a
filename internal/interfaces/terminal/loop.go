package terminal

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

// RenderFunc produces one fresh dashboard.
type RenderFunc func(ctx context.Context) (usecase.Dashboard, error)

const prompt = "\n[Enter] refresh  [q] quit\n"

// Run renders once, then again on every line read from in, until in is
// exhausted, a line reads "q", or ctx is done. A render that fails outright ends
// the loop with its error.
func Run(ctx context.Context, in io.Reader, out io.Writer, render RenderFunc, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for renders := 1; ; renders++ {
		d, err := render(ctx)
		if err != nil {
			return err
		}
		if err := Write(out, d); err != nil {
			return err
		}
		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}
		logger.Debug("dashboard drawn", "league", d.League.ID, "renders", renders)

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if cmd := strings.ToLower(strings.TrimSpace(line)); cmd == "q" || cmd == "quit" {
				return nil
			}
		}
	}
}
