package argv

import "fmt"

// aliasTable maps a primary option name to its ordered spellings (primary
// first, then aliases in registration order) and every spelling back to
// its primary. A spelling belongs to at most one primary.
type aliasTable struct {
	spellings map[string][]string
	primary   map[string]string
}

func newAliasTable() *aliasTable {
	return &aliasTable{
		spellings: make(map[string][]string),
		primary:   make(map[string]string),
	}
}

// register claims the given aliases for primary. A spelling already owned
// by a different primary is rejected, and a rejected call leaves the table
// exactly as it was. Registering the same spelling under the same primary
// again is a no-op.
func (t *aliasTable) register(primary string, aliases ...string) error {
	if owner, ok := t.primary[primary]; ok && owner != primary {
		return fmt.Errorf("argv: %q is already an alias of %q", primary, owner)
	}
	for _, a := range aliases {
		if owner, ok := t.primary[a]; ok && owner != primary {
			return fmt.Errorf("argv: alias %q is already registered under %q", a, owner)
		}
	}

	if _, ok := t.primary[primary]; !ok {
		t.primary[primary] = primary
		t.spellings[primary] = []string{primary}
	}
	for _, a := range aliases {
		if _, ok := t.primary[a]; ok {
			continue
		}
		t.primary[a] = primary
		t.spellings[primary] = append(t.spellings[primary], a)
	}
	return nil
}

// candidates returns the probe order for name: its primary followed by
// each alias in registration order. Lookups by any spelling of a group
// therefore probe the identical list. An unregistered name probes only
// itself.
func (t *aliasTable) candidates(name string) []string {
	p, ok := t.primary[name]
	if !ok {
		return []string{name}
	}
	return t.spellings[p]
}
