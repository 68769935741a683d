// Package eval statically resolves configuration expressions to values.
//
// Resolution is constant propagation only: nothing is executed. Literals,
// array and object literals, const bindings, member access on known values
// and arithmetic, comparison and logical operators on known operands
// resolve. Everything else is unknown, reported as ok == false by
// [Resolve]; unknown is an expected outcome, not an error.
//
// [ModuleScope] collects the bindings declared at the top level of a
// program and [Identifiers] every identifier it refers to.
package eval
