package token

import "testing"

func TestIsIdentifier(t *testing.T) {
	for s, want := range map[string]bool{
		"jsdoc":          true,
		"_jsdoc":         true,
		"$":              true,
		"pluginSecurity": true,
		"ünïcode":        true,
		"a1":             true,
		"1a":             false,
		"":               false,
		"no-dash":        false,
		"@scope/x":       false,
		"default":        false,
		"const":          false,
	} {
		if got := IsIdentifier(s); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", s, got, want)
		}
	}
	if !IsIdentifierName("default") {
		t.Errorf("reserved words are valid property names")
	}
}

func TestPosLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\n\nef"))
	for off, want := range map[int][2]int{
		0: {0, 0},
		1: {0, 1},
		3: {1, 0},
		4: {1, 1},
		6: {2, 0},
		7: {3, 0},
	} {
		ln, col := doc.LineCol(off)
		if ln != want[0] || col != want[1] {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", off, ln, col, want[0], want[1])
		}
	}
	if got := NewPosDoc([]byte("a\n    b")).Indent(6); got != "    " {
		t.Errorf("Indent = %q", got)
	}
}
