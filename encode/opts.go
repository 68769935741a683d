package encode

import "strings"

type EncodeOption func(*EncState)

// EncodeIndent sets the indentation unit to n spaces.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.unit = strings.Repeat(" ", n) }
}

// EncodeQuote sets the quote used for string literals, '"' or '\''.
func EncodeQuote(q byte) EncodeOption {
	return func(es *EncState) { es.quote = q }
}

// EncodeSemicolons controls whether statements end with a semicolon.
func EncodeSemicolons(v bool) EncodeOption {
	return func(es *EncState) { es.semi = &v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
