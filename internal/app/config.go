package app

import "fmt"

// Config holds all the settings the inspector needs for one invocation.
type Config struct {
	LogLevel  string
	LogFormat string

	ArgfilePath string // optional .hcl file or directory of option declarations
	Interactive bool
	Output      string // "text" or "json"

	Tokens []string // the command line to classify (one-shot mode)
}

// NewConfig validates a Config and returns it. Flag-level validation (log
// level and format keywords) happens in the cli package; this covers the
// fields the app itself consumes.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Output {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.Output)
	}
	return &cfg, nil
}
