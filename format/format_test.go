package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip %s got %s", f, g)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("module-export")); err != nil || f != ModuleFormat {
		t.Errorf("unmarshal module-export: %v %s", err, f)
	}
}

func TestLegacyFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": JSONFormat,
		"yaml": YAMLFormat,
		"cjs":  ModuleFormat,
	} {
		lf, err := ParseLegacyFormat(in)
		if err != nil {
			t.Fatal(err)
		}
		if lf.String() != in {
			t.Errorf("%s printed as %s", in, lf)
		}
		if lf.Format() != want {
			t.Errorf("%s maps to %s, want %s", in, lf.Format(), want)
		}
	}
	if _, err := ParseLegacyFormat("flat"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
