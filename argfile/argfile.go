package argfile

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Option is one declared option: its primary name, alternate spellings,
// declared value type, optional default, and usage description.
type Option struct {
	Name        string
	Aliases     []string
	Type        cty.Type
	Default     cty.Value // cty.NilVal when the block declared no default
	Required    bool
	Description string
}

// HasDefault reports whether the option block declared a default value.
func (o *Option) HasDefault() bool {
	return o.Default != cty.NilVal
}

// Spec is a set of declared options in declaration order. Files merge in
// load order; a second declaration of the same option name is an error.
type Spec struct {
	Options []*Option

	byName map[string]*Option
}

// Lookup returns the declared option named name. It matches the primary
// name only, not aliases.
func (s *Spec) Lookup(name string) (*Option, bool) {
	opt, ok := s.byName[name]
	return opt, ok
}

func newSpec() *Spec {
	return &Spec{byName: make(map[string]*Option)}
}

func (s *Spec) add(opt *Option) error {
	if _, ok := s.byName[opt.Name]; ok {
		return fmt.Errorf("argfile: option %q is declared more than once", opt.Name)
	}
	s.Options = append(s.Options, opt)
	s.byName[opt.Name] = opt
	return nil
}

// typeForKeyword maps the argfile `type` keyword to its cty.Type. An empty
// keyword means string.
func typeForKeyword(keyword string) (cty.Type, error) {
	switch keyword {
	case "", "string":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	default:
		return cty.NilType, fmt.Errorf("argfile: unknown option type %q (want string, number, or bool)", keyword)
	}
}

// checkDefault verifies that a declared default is convertible to the
// option's declared type.
func checkDefault(opt *Option) error {
	if !opt.HasDefault() {
		return nil
	}
	converted, err := convert.Convert(opt.Default, opt.Type)
	if err != nil {
		return fmt.Errorf("argfile: option %q: default is not a %s: %w",
			opt.Name, opt.Type.FriendlyName(), err)
	}
	opt.Default = converted
	return nil
}
