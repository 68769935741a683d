// Package token provides the lexical helpers shared by the lintcfg parsers
// and printers: byte offset to line/column mapping with quoted source
// snippets, the [SyntaxError] type reported for unparsable input, and the
// JavaScript identifier, keyword and string quoting rules used when keys
// and string literals are generated.
package token
