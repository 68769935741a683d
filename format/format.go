package format

import (
	"errors"
	"fmt"
)

// Format is one of the three encodings a configuration can be converted
// between.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	ModuleFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":             JSONFormat,
		"json":          JSONFormat,
		"y":             YAMLFormat,
		"yaml":          YAMLFormat,
		"yml":           YAMLFormat,
		"m":             ModuleFormat,
		"js":            ModuleFormat,
		"module":        ModuleFormat,
		"module-export": ModuleFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case ModuleFormat:
		return []byte("module"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }
func (f Format) IsModule() bool { return f == ModuleFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case ModuleFormat:
		return ".js"
	default:
		return ""
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, ModuleFormat}
}
