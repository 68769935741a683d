// Package ir provides the expression intermediate representation (IR) for
// JavaScript configuration modules.
//
// # Overview
//
// Configuration modules such as
//
//	module.exports = { extends: ["eslint:recommended"] };
//
// or
//
//	import js from "@eslint/js";
//	export default [js.configs.recommended];
//
// are represented as a tree of [Node] values. The same tree is used for
// expressions built programmatically, for example by a converter
// rebuilding an object literal from a JSON value or by a plugin producing
// the config fragment it wants appended.
//
// # Node Structure
//
// The IR is a recursive tagged union: the Type field selects which of the
// payload and child fields are meaningful.
//
//   - NullType, BoolType, NumberType, StringType: literals, payload in
//     Bool, Number or String, original spelling in Raw.
//   - IdentType: an identifier reference, Name.
//   - ArrayType: Values are the elements.
//   - ObjectType, PatternType: Values are PropertyType (or SpreadType)
//     nodes.
//   - PropertyType: Key, Value, Computed and Shorthand.
//   - SpreadType: X is the spread argument (also used for rest patterns).
//   - CallType: X is the callee, Values the arguments.
//   - MemberType: X is the object, Key the property, Computed for x[k].
//   - UnaryType, BinaryType: Name is the operator, X and Y the operands.
//   - AssignType: X = Y.
//   - ImportType: String is the module source, Values the SpecifierType
//     nodes.
//   - SpecifierType: Spec is the kind, String the imported name and Name
//     the local binding.
//   - VarType: Name is const, let or var, Values are DeclaratorType nodes
//     with Key the binding target and Value the initializer.
//   - ExprStmtType: X is the expression.
//   - ExportType: Name is "default" for export default X, X is the
//     exported expression or declaration.
//   - ProgramType: Values are the statements.
//   - RawType: source kept verbatim. Name is the bound name of a function
//     or class declaration, Refs the identifiers occurring inside.
//
// # Source Ranges
//
// Parsed nodes record a [Range] into the shared source. The mutation
// helpers ([Node.Append], [Node.InsertAt], [Node.SetProp], [Replace] and
// [Node.Touch]) mark every node on the path to the root as modified. The
// printer emits unmodified nodes from their original text and splices
// modified lists, so untouched formatting and comments survive.
//
// # Comments
//
// Leading and Trailing hold the comments attached to a node. Parsing
// attaches comments to the nearest list member: program statement, array
// element, object property or call argument.
package ir
