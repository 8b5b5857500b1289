package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/argv/argfile"
	"github.com/vk/argv/internal/ctxlog"
)

// App encapsulates the inspector's dependencies, configuration, and
// lifecycle. Classification output goes to outW; logs go to logW so that
// piped output stays clean.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	spec   *argfile.Spec // nil when no argfile was given
}

// New constructs a fully initialized App, including its own isolated
// logger and, when configured, the loaded argfile declarations.
func New(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var spec *argfile.Spec
	if cfg.ArgfilePath != "" {
		info, err := os.Stat(cfg.ArgfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read argfile path: %w", err)
		}
		if info.IsDir() {
			spec, err = argfile.LoadDir(ctx, cfg.ArgfilePath)
		} else {
			spec, err = argfile.Load(ctx, cfg.ArgfilePath)
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("Argfile loaded.", "path", cfg.ArgfilePath, "options", len(spec.Options))
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		spec:   spec,
	}, nil
}

// Run executes the inspector: a readline session in interactive mode, or a
// single classification of the configured tokens otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Interactive {
		return a.repl(ctx)
	}
	return a.classify(ctx, a.config.Tokens)
}
