// Package parse reads JavaScript configuration modules into [ir.Node]
// trees.
//
// Parsing is done with tree-sitter's JavaScript grammar. Every node of the
// resulting tree records its source range so that the encoder can print
// untouched regions verbatim, and comments are attached to the nearest
// list member in a separate pass.
//
// Constructs which configuration code does not need to understand, such
// as functions, classes or control flow, are kept as [ir.RawType] nodes.
// Any syntax error in the input is reported as a [*token.SyntaxError].
package parse
