// Package encode prints IR nodes as JavaScript source.
//
// # Usage
//
//	prog, err := parse.ParseProgram(src)
//	// ... modify prog with the ir mutation helpers
//	err = encode.Encode(prog, os.Stdout)
//
// Nodes which were parsed and not modified are printed from their original
// text. Modified lists are spliced: separators, whitespace and comments
// between untouched members are kept, and inserted members get a separator
// following the layout of the list. Trees built from scratch are printed
// with the style of the source they are attached to, if any.
//
// # Related Packages
//
//   - github.com/signadot/lintcfg/ir - IR representation
//   - github.com/signadot/lintcfg/parse - Parse text to IR
package encode
