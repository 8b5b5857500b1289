// Package argfile loads declarative option definitions from HCL and binds
// them to a parsed command line. It is the validation and presentation
// collaborator around package argv: it registers aliases, checks required
// options, carries typed defaults, and renders usage text, while the core
// parser stays free of any of those concerns.
//
// An argfile is a sequence of `option` blocks:
//
//	option "verbose" {
//	  aliases     = ["v"]
//	  type        = "bool"
//	  default     = false
//	  description = "enable verbose output"
//	}
//
//	option "config" {
//	  aliases     = ["c"]
//	  type        = "string"
//	  required    = true
//	  description = "path to the configuration file"
//	}
//
// The `type` keyword is one of `string`, `number`, or `bool` and defaults
// to `string`. A declared `default` must be convertible to the declared
// type; this is checked at load time, not at lookup time.
package argfile
