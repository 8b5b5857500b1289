package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vk/argv"
	"github.com/vk/argv/internal/ctxlog"
)

// occurrence is the JSON projection of one option occurrence. A bare flag
// has HasValue false.
type occurrence struct {
	Value    string `json:"value"`
	HasValue bool   `json:"has_value"`
}

// report is the renderable projection of one classification pass.
type report struct {
	Options     map[string][]occurrence `json:"options"`
	Positionals []string                `json:"positionals"`
	Skipped     []string                `json:"skipped"`
}

// classify runs tokens through the parser — via the argfile declarations
// when present, so aliases and required checks apply — and renders the
// result in the configured output format.
func (a *App) classify(ctx context.Context, tokens []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Classifying tokens.", "count", len(tokens))

	var parsed *argv.Args
	if a.spec != nil {
		var err error
		parsed, err = a.spec.Bind(tokens)
		if err != nil {
			return err
		}
	} else {
		parsed = argv.New(tokens)
	}

	rep := buildReport(parsed.Result())
	if a.config.Output == "json" {
		return a.renderJSON(rep)
	}
	return a.renderText(rep)
}

func buildReport(res *argv.Result) *report {
	rep := &report{
		Options:     make(map[string][]occurrence, len(res.Options)),
		Positionals: res.Positionals,
		Skipped:     res.Skipped,
	}
	for name, vals := range res.Options {
		occs := make([]occurrence, len(vals))
		for i, v := range vals {
			occs[i] = occurrence{Value: v.Raw, HasValue: v.HasValue}
		}
		rep.Options[name] = occs
	}
	return rep
}

func (a *App) renderJSON(rep *report) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func (a *App) renderText(rep *report) error {
	names := make([]string, 0, len(rep.Options))
	for name := range rep.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(a.outW, "options (%d):\n", len(names))
	for _, name := range names {
		for _, occ := range rep.Options[name] {
			if occ.HasValue {
				fmt.Fprintf(a.outW, "  %-16s %q\n", name, occ.Value)
			} else {
				fmt.Fprintf(a.outW, "  %-16s (bare flag)\n", name)
			}
		}
	}

	fmt.Fprintf(a.outW, "positionals (%d):\n", len(rep.Positionals))
	for i, pos := range rep.Positionals {
		fmt.Fprintf(a.outW, "  [%d] %q\n", i, pos)
	}

	fmt.Fprintf(a.outW, "skipped (%d):\n", len(rep.Skipped))
	for _, tok := range rep.Skipped {
		fmt.Fprintf(a.outW, "  %q\n", tok)
	}
	return nil
}
