package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/lintcfg/token"
)

// ParseJSON strictly parses a single JSON value, keeping object member
// order.
func ParseJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err == nil {
		if _, terr := dec.Token(); terr != io.EOF {
			err = fmt.Errorf("%w: trailing data", ErrJSON)
		}
	}
	if err != nil {
		return nil, jsonSyntaxError(d, dec, err)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrJSON)
		}
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			obj := Object{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v", ErrJSON, kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(k, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("%w: unexpected %v", ErrJSON, x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return f, nil
	case string, bool, nil:
		return x, nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}

func jsonSyntaxError(d []byte, dec *json.Decoder, err error) error {
	off := int(dec.InputOffset())
	var se *json.SyntaxError
	if errors.As(err, &se) {
		off = int(se.Offset)
	}
	off = min(max(off, 0), len(d))
	res := token.NewSyntaxError("json", token.NewPosDoc(d).Pos(off), "")
	res.Err = err
	return res
}

// EncodeJSON encodes v as JSON text. When indent is not empty, arrays and
// objects are written one member per line.
func EncodeJSON(v any, indent string) string {
	buf := bytes.NewBuffer(nil)
	encodeJSON(buf, v, indent, "")
	return buf.String()
}

func encodeJSON(buf *bytes.Buffer, v any, indent, cur string) {
	inner := cur + indent
	nl := func() {
		if indent != "" {
			buf.WriteString("\n" + inner)
		}
	}
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case float64:
		buf.WriteString(FormatNumber(x))
	case string:
		buf.WriteString(quoteJSON(x))
	case []any:
		if len(x) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			nl()
			encodeJSON(buf, e, indent, inner)
		}
		if indent != "" {
			buf.WriteString("\n" + cur)
		}
		buf.WriteByte(']')
	case Object:
		if len(x) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, m := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			nl()
			buf.WriteString(quoteJSON(m.Key))
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			encodeJSON(buf, m.Value, indent, inner)
		}
		if indent != "" {
			buf.WriteString("\n" + cur)
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(quoteJSON(fmt.Sprint(x)))
	}
}

func quoteJSON(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// FormatNumber formats f the way JSON.stringify does.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return "null"
	case f == 0:
		return "0"
	}
	a := math.Abs(f)
	if a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = strings.Replace(s, "e-0", "e-", 1)
	s = strings.Replace(s, "e+0", "e+", 1)
	return s
}
