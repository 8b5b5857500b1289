package argv

import "strings"

// Separator ends structured parsing. Every raw token after it is exposed
// verbatim through Result.Skipped, unclassified.
const Separator = "--"

// isOption reports whether tok introduces an option: non-empty with a
// leading dash.
func isOption(tok string) bool {
	return len(tok) > 0 && tok[0] == '-'
}

// trimDashes re-slices tok past its leading dashes. Go strings share their
// backing array, so the stripped name is a view into the original token,
// never a copy.
func trimDashes(tok string) string {
	return strings.TrimLeft(tok, "-")
}

// splitPacked splits the packed `name=value` form at the first '='. The
// value keeps any later '=' characters. packed is false when s has no '='
// at all.
func splitPacked(s string) (name, value string, packed bool) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
