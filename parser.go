package argv

// Parse consumes tokens in a single left-to-right pass and classifies each
// one. It never fails, never reorders, and never mutates the caller's
// slice; any input, including empty tokens, is valid.
//
// The scan keeps one piece of state: the name of an option still waiting
// for its value. The rules, in order:
//
//   - Separator ends the scan. A still-pending option flushes as a bare
//     flag, then every remaining token is copied to Skipped verbatim.
//   - An empty token flushes a pending option as a bare flag and is
//     otherwise dropped; it never becomes a positional.
//   - A dashed token flushes any pending option (two options in a row
//     leave the first one bare), strips its dashes, and either commits
//     immediately in the packed `name=value` form or becomes the new
//     pending option. A token that strips to nothing (`-`, `---`) is
//     dropped.
//   - Anything else is a value: it completes the pending option if there
//     is one, and is a positional otherwise.
//
// A pending option left over at the end of the input flushes as a bare
// flag.
func Parse(tokens []string) *Result {
	res := &Result{Options: make(OptionMap)}

	var pending string
	var hasPending bool

	flush := func() {
		if hasPending {
			res.Options[pending] = append(res.Options[pending], Value{})
			hasPending = false
		}
	}

	for i, tok := range tokens {
		switch {
		case tok == Separator:
			flush()
			res.Skipped = append(res.Skipped, tokens[i+1:]...)
			return res

		case tok == "":
			flush()

		case isOption(tok):
			flush()
			name := trimDashes(tok)
			if name == "" {
				continue
			}
			if n, v, packed := splitPacked(name); packed {
				if n == "" {
					continue
				}
				res.Options[n] = append(res.Options[n], Value{Raw: v, HasValue: true})
				continue
			}
			pending, hasPending = name, true

		case hasPending:
			res.Options[pending] = append(res.Options[pending], Value{Raw: tok, HasValue: true})
			hasPending = false

		default:
			res.Positionals = append(res.Positionals, tok)
		}
	}
	flush()
	return res
}
