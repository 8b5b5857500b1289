package argfile

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/argv"
)

// Bind parses tokens with the core parser, registers every declared
// option's aliases, and validates the declarations. Missing required
// options are reported in one aggregate error; the process is never
// exited from here.
func (s *Spec) Bind(tokens []string) (*argv.Args, error) {
	a := argv.New(tokens)
	for _, opt := range s.Options {
		if err := a.Alias(opt.Name, opt.Aliases...); err != nil {
			return nil, err
		}
	}

	var missing []string
	for _, opt := range s.Options {
		if opt.Required && !a.Has(opt.Name) {
			missing = append(missing, opt.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("argfile: missing required option(s): %s", strings.Join(missing, ", "))
	}
	return a, nil
}

// Default returns the declared default of the named option coerced to T.
// Absence covers an unknown option, an option with no default, and a
// default that does not fit T.
func Default[T argv.Scalar](s *Spec, name string) (T, bool) {
	var out T
	opt, ok := s.Lookup(name)
	if !ok || !opt.HasDefault() {
		return out, false
	}
	if err := gocty.FromCtyValue(opt.Default, &out); err != nil {
		return out, false
	}
	return out, true
}

// GetOr retrieves name from a parsed command line, falling back to the
// argfile's declared default, then to the caller's fallback when the
// option declares none.
func GetOr[T argv.Scalar](s *Spec, a *argv.Args, name string, fallback T) T {
	if v, ok := argv.Get[T](a, name); ok {
		return v
	}
	if v, ok := Default[T](s, name); ok {
		return v
	}
	return fallback
}

// Usage renders one line per declared option, in declaration order.
// Rendering lives here so the core accessors stay presentation-free.
func (s *Spec) Usage() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	for _, opt := range s.Options {
		spellings := make([]string, 0, len(opt.Aliases)+1)
		spellings = append(spellings, dashed(opt.Name))
		for _, alias := range opt.Aliases {
			spellings = append(spellings, dashed(alias))
		}

		fmt.Fprintf(&b, "  %s\n", strings.Join(spellings, ", "))
		if opt.Description != "" {
			fmt.Fprintf(&b, "    %s\n", opt.Description)
		}

		var notes []string
		notes = append(notes, opt.Type.FriendlyName())
		if opt.Required {
			notes = append(notes, "required")
		}
		if opt.HasDefault() {
			notes = append(notes, fmt.Sprintf("default %s", formatDefault(opt)))
		}
		fmt.Fprintf(&b, "    (%s)\n", strings.Join(notes, ", "))
	}
	return b.String()
}

// dashed renders a spelling with the conventional dash count: one dash
// for single-character spellings, two otherwise. The parser itself treats
// any dash count the same.
func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func formatDefault(opt *Option) string {
	str, err := convert.Convert(opt.Default, cty.String)
	if err != nil || str.IsNull() {
		return opt.Default.GoString()
	}
	if opt.Type == cty.String {
		return fmt.Sprintf("%q", str.AsString())
	}
	return str.AsString()
}
