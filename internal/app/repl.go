package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vk/argv/internal/ctxlog"
)

// repl is the interactive loop: each line is split into tokens,
// classified, and rendered. Lines are split on whitespace only; shell-style
// quoting belongs to a real shell and the one-shot mode.
func (a *App) repl(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "argq> ",
		Stdout: a.outW,
	})
	if err != nil {
		return fmt.Errorf("failed to start interactive session: %w", err)
	}
	defer rl.Close()

	logger.Debug("Interactive session started.")
	if a.spec != nil {
		fmt.Fprint(a.outW, a.spec.Usage())
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C clears the line; Ctrl-D ends the session.
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				logger.Debug("Interactive session ended.")
				return nil
			}
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			logger.Debug("Interactive session ended.")
			return nil
		}

		tokens := strings.Fields(line)
		if err := a.classify(ctx, tokens); err != nil {
			// A classification error (e.g. a missing required option)
			// is feedback, not a reason to kill the session.
			fmt.Fprintf(a.outW, "error: %v\n", err)
		}
	}
}
