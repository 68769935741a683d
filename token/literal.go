package token

import (
	"unicode"
	"unicode/utf8"
)

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d'
}

// IsIdentifierName reports whether s is an IdentifierName: usable unquoted
// as an object key or after a '.'.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s can be used as a binding name.
func IsIdentifier(s string) bool {
	return IsIdentifierName(s) && !IsReserved(s)
}
