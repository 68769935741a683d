package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	IdentType
	ArrayType
	ObjectType
	PropertyType
	SpreadType
	CallType
	MemberType
	UnaryType
	BinaryType
	AssignType
	ImportType
	SpecifierType
	VarType
	DeclaratorType
	PatternType
	ExprStmtType
	ExportType
	ProgramType
	RawType
)

var typeNames = map[Type]string{
	NullType:       "Null",
	BoolType:       "Bool",
	NumberType:     "Number",
	StringType:     "String",
	IdentType:      "Ident",
	ArrayType:      "Array",
	ObjectType:     "Object",
	PropertyType:   "Property",
	SpreadType:     "Spread",
	CallType:       "Call",
	MemberType:     "Member",
	UnaryType:      "Unary",
	BinaryType:     "Binary",
	AssignType:     "Assign",
	ImportType:     "Import",
	SpecifierType:  "Specifier",
	VarType:        "Var",
	DeclaratorType: "Declarator",
	PatternType:    "Pattern",
	ExprStmtType:   "ExprStmt",
	ExportType:     "Export",
	ProgramType:    "Program",
	RawType:        "Raw",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	res := make([]Type, 0, len(typeNames))
	for t := NullType; t <= RawType; t++ {
		res = append(res, t)
	}
	return res
}

// IsLiteral reports whether t is a null, boolean, number or string literal.
func (t Type) IsLiteral() bool {
	switch t {
	case NullType, BoolType, NumberType, StringType:
		return true
	default:
		return false
	}
}

// IsList reports whether nodes of type t hold an ordered member list in
// Values whose separators the printer can splice.
func (t Type) IsList() bool {
	switch t {
	case ArrayType, ObjectType, PatternType, CallType, ProgramType:
		return true
	default:
		return false
	}
}

// IsStatement reports whether t is a statement type.
func (t Type) IsStatement() bool {
	switch t {
	case ImportType, VarType, ExprStmtType, ExportType:
		return true
	default:
		return false
	}
}

// SpecKind is the shape of an import specifier.
type SpecKind int

const (
	DefaultSpec SpecKind = iota
	NamespaceSpec
	NamedSpec
)

func (k SpecKind) String() string {
	switch k {
	case DefaultSpec:
		return "default"
	case NamespaceSpec:
		return "namespace"
	case NamedSpec:
		return "named"
	default:
		return "<unknown spec>"
	}
}

func (k SpecKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SpecKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "default":
		*k = DefaultSpec
	case "namespace":
		*k = NamespaceSpec
	case "named":
		*k = NamedSpec
	default:
		return fmt.Errorf("unrecognized specifier kind %q", d)
	}
	return nil
}
