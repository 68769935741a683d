package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quote returns s as a JavaScript string literal delimited by q, which
// should be '"' or '\''.
func Quote(s string, q byte) string {
	if q != '\'' {
		q = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r == rune(q) {
				b.WriteByte('\\')
				b.WriteByte(q)
				continue
			}
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// Unquote decodes a JavaScript string literal, including its delimiters.
// Template literals are accepted when they contain no substitutions.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("%w string %q", ErrUnterminated, lit)
	}
	q := lit[0]
	if (q != '"' && q != '\'' && q != '`') || lit[len(lit)-1] != q {
		return "", fmt.Errorf("%w string %q", ErrUnterminated, lit)
	}
	body := lit[1 : len(lit)-1]
	if q == '`' && strings.Contains(body, "${") {
		return "", fmt.Errorf("%w: template substitution in %q", ErrBadEscape, lit)
	}
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			r, sz := utf8.DecodeRuneInString(body[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("%w: trailing backslash in %q", ErrBadEscape, lit)
		}
		c = body[i]
		i++
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
			// line continuation
		case 'x':
			if i+2 > len(body) {
				return "", fmt.Errorf("%w: short \\x escape in %q", ErrBadEscape, lit)
			}
			v, err := strconv.ParseUint(body[i:i+2], 16, 8)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrBadEscape, err)
			}
			b.WriteRune(rune(v))
			i += 2
		case 'u':
			r, n, err := unicodeEscape(body[i:])
			if err != nil {
				return "", err
			}
			i += n
			if utf16Surrogate(r) && strings.HasPrefix(body[i:], `\u`) {
				lo, n2, err := unicodeEscape(body[i+2:])
				if err == nil && lo >= 0xdc00 && lo <= 0xdfff {
					r = (r-0xd800)<<10 + (lo - 0xdc00) + 0x10000
					i += 2 + n2
				}
			}
			b.WriteRune(r)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func utf16Surrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdbff
}

func unicodeEscape(d string) (rune, int, error) {
	if strings.HasPrefix(d, "{") {
		j := strings.IndexByte(d, '}')
		if j == -1 {
			return 0, 0, fmt.Errorf("%w: unterminated \\u{", ErrBadUnicode)
		}
		v, err := strconv.ParseUint(d[1:j], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, fmt.Errorf("%w: \\u{%s}", ErrBadUnicode, d[1:j])
		}
		return rune(v), j + 1, nil
	}
	if len(d) < 4 {
		return 0, 0, fmt.Errorf("%w: short \\u escape", ErrBadUnicode)
	}
	v, err := strconv.ParseUint(d[:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: \\u%s", ErrBadUnicode, d[:4])
	}
	return rune(v), 4, nil
}
