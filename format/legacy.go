package format

import "fmt"

// LegacyFormat is the encoding of a legacy (single object) configuration.
type LegacyFormat int

const (
	LegacyJSON LegacyFormat = iota
	LegacyYAML
	LegacyCJS
)

func ParseLegacyFormat(v string) (LegacyFormat, error) {
	f, ok := map[string]LegacyFormat{
		"json": LegacyJSON,
		"yaml": LegacyYAML,
		"yml":  LegacyYAML,
		"cjs":  LegacyCJS,
		"js":   LegacyCJS,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q is not a legacy format", ErrBadFormat, v)
}

func (f LegacyFormat) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f LegacyFormat) MarshalText() ([]byte, error) {
	switch f {
	case LegacyJSON:
		return []byte("json"), nil
	case LegacyYAML:
		return []byte("yaml"), nil
	case LegacyCJS:
		return []byte("cjs"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a legacy format>", f)
	}
}

func (f *LegacyFormat) UnmarshalText(d []byte) error {
	pf, err := ParseLegacyFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Format returns the conversion format with the same encoding.
func (f LegacyFormat) Format() Format {
	switch f {
	case LegacyYAML:
		return YAMLFormat
	case LegacyCJS:
		return ModuleFormat
	default:
		return JSONFormat
	}
}
