package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/argv"
	"github.com/vk/argv/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `argq - inspect how a command line is classified.

Usage:
  argq [options] -- TOKEN...
  argq [options] --interactive

The tokens after the -- separator are the command line to classify; argq's
own options never collide with them. With no tokens and no --interactive,
this help is printed. Unknown argq options are ignored.

Options:
  --argfile, -f PATH     .hcl file or directory of option declarations
                         (aliases, defaults, required checks)
  --interactive, -i      classify lines read from an interactive prompt
  --output, -o FORMAT    result format: 'text' (default) or 'json'
  --log-level LEVEL      'debug', 'info' (default), 'warn', or 'error'
  --log-format FORMAT    log output format: 'text' (default) or 'json'
  --help, -h             print this help
`

// Parse processes argq's own command-line arguments with the argv library
// itself. It returns a populated app.Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	a := argv.New(args)
	for _, group := range [][]string{
		{"argfile", "f"},
		{"interactive", "i"},
		{"output", "o"},
		{"help", "h"},
	} {
		if err := a.Alias(group[0], group[1:]...); err != nil {
			// Static registrations; a collision here is a programmer error.
			return nil, false, err
		}
	}

	if argv.GetOr(a, "help", false) {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	logFormat := strings.ToLower(argv.GetOr(a, "log-format", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(argv.GetOr(a, "log-level", "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	// The tokens to classify are the verbatim tail after the -- separator.
	// Bare positionals work too, for token lists with no dashes at all.
	tokens := a.Skipped()
	if len(tokens) == 0 {
		tokens = a.Positionals()
	}

	interactive := argv.GetOr(a, "interactive", false)
	if !interactive && len(tokens) == 0 {
		slog.Debug("No tokens to classify, printing usage and exiting.")
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		ArgfilePath: argv.GetOr(a, "argfile", ""),
		Interactive: interactive,
		Output:      strings.ToLower(argv.GetOr(a, "output", "text")),
		Tokens:      tokens,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
