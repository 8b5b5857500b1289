package argv

// Args is the read-only facade over one parsed command line. It is built
// once by New; aliases may be registered during a configuration phase
// preceding any lookups, after which the whole value is safe for
// concurrent readers.
type Args struct {
	res     *Result
	aliases *aliasTable
}

// New parses tokens once and returns the accessor facade. tokens is
// conventionally os.Args[1:]; stripping the program-name token is the
// caller's concern.
func New(tokens []string) *Args {
	return &Args{
		res:     Parse(tokens),
		aliases: newAliasTable(),
	}
}

// Alias declares alternate spellings for primary, probed in the given
// order after the primary itself. It rejects a spelling that already
// belongs to a different primary. Registration is not synchronized:
// finish all Alias calls before handing the Args to other goroutines.
func (a *Args) Alias(primary string, aliases ...string) error {
	return a.aliases.register(primary, aliases...)
}

// Result exposes the underlying classification. Callers must not modify
// it.
func (a *Args) Result() *Result {
	return a.res
}

// Positionals returns the tokens that were not attached to any option, in
// appearance order.
func (a *Args) Positionals() []string {
	return a.res.Positionals
}

// Skipped returns the verbatim tail that followed a literal Separator
// token, or nil when there was none.
func (a *Args) Skipped() []string {
	return a.res.Skipped
}

// Lookup returns every occurrence of the option named by name or any of
// its registered spellings. The first spelling present in the option map
// wins; later spellings are not merged in.
func (a *Args) Lookup(name string) ([]Value, bool) {
	for _, cand := range a.aliases.candidates(name) {
		if vals, ok := a.res.Options[cand]; ok {
			return vals, true
		}
	}
	return nil, false
}

// Has reports whether name, under any spelling, appeared at all.
func (a *Args) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Occurrences returns how many times name, under the winning spelling,
// appeared.
func (a *Args) Occurrences(name string) int {
	vals, _ := a.Lookup(name)
	return len(vals)
}

// Get coerces the option named name, or any of its aliases, to T. Each
// candidate spelling is probed in order; the first one whose earliest
// occurrence coerces successfully wins. A missing key and an unparseable
// value both report absence.
func Get[T Scalar](a *Args, name string) (T, bool) {
	for _, cand := range a.aliases.candidates(name) {
		v, ok := a.res.Options.first(cand)
		if !ok {
			continue
		}
		if out, ok := coerce[T](v); ok {
			return out, true
		}
	}
	var zero T
	return zero, false
}

// GetOr is Get with def substituted for absence.
func GetOr[T Scalar](a *Args, name string, def T) T {
	if v, ok := Get[T](a, name); ok {
		return v
	}
	return def
}

// Multi coerces every occurrence of name independently, preserving order
// and count: an unparseable occurrence is an absent slot, not a dropped
// one. A missing key yields an empty result.
func Multi[T Scalar](a *Args, name string) []Maybe[T] {
	vals, ok := a.Lookup(name)
	if !ok {
		return nil
	}
	out := make([]Maybe[T], len(vals))
	for i, v := range vals {
		out[i].Val, out[i].OK = coerce[T](v)
	}
	return out
}

// MultiOr is Multi with def substituted into every absent slot.
func MultiOr[T Scalar](a *Args, name string, def T) []T {
	slots := Multi[T](a, name)
	out := make([]T, len(slots))
	for i, s := range slots {
		out[i] = s.Or(def)
	}
	return out
}

// Positional coerces the positional argument at index to T. An index out
// of range is absence, the same as a missing key.
func Positional[T Scalar](a *Args, index int) (T, bool) {
	if index < 0 || index >= len(a.res.Positionals) {
		var zero T
		return zero, false
	}
	return coerce[T](Value{Raw: a.res.Positionals[index], HasValue: true})
}

// PositionalOr is Positional with def substituted for absence.
func PositionalOr[T Scalar](a *Args, index int, def T) T {
	if v, ok := Positional[T](a, index); ok {
		return v
	}
	return def
}
