// Package argv classifies a raw command-line token sequence into named
// options, positional arguments, and an unclassified tail, and exposes
// typed accessors over the result.
//
// The parser makes a single left-to-right pass over the tokens. A token
// starting with one or more dashes names an option (`-x`, `--x`, and
// `---x` are the same option `x`); the packed form `--name=value` is
// equivalent to the two tokens `--name value`. A token exactly equal to
// `--` ends classification: everything after it is exposed verbatim
// through Skipped. Parsing never fails; every retrieval failure degrades
// to absence (a comma-ok false or an empty slice), never to an error.
//
//	a := argv.New(os.Args[1:])
//	a.Alias("verbose", "v")
//
//	port := argv.GetOr(a, "port", 8080)
//	if on, ok := argv.Get[bool](a, "verbose"); ok && on {
//		...
//	}
//
// An Args value is built once and is read-only afterwards: accessors are
// safe for concurrent readers as long as no goroutine is still
// registering aliases.
package argv
