package argv

// Value is a single occurrence of an option on the command line. A bare
// flag (an option followed by no value) has HasValue false and an empty
// Raw; an explicit empty value, as in `--name=`, has HasValue true.
type Value struct {
	Raw      string
	HasValue bool
}

// OptionMap maps an option name, leading dashes stripped, to every
// occurrence of that option in appearance order. A key that exists always
// has at least one entry, even when every occurrence was a bare flag.
type OptionMap map[string][]Value

// first returns the earliest occurrence of name.
func (m OptionMap) first(name string) (Value, bool) {
	vals, ok := m[name]
	if !ok || len(vals) == 0 {
		return Value{}, false
	}
	return vals[0], true
}

// Result is the outcome of one parsing pass. It is built once by Parse and
// must be treated as read-only afterwards; callers must not modify the
// map or the slices.
type Result struct {
	Options     OptionMap
	Positionals []string
	Skipped     []string
}
