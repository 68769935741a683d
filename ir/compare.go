package ir

// Equal reports whether a and b are structurally equal, ignoring source
// ranges, comments, parentheses and literal spelling.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case IdentType:
		return a.Name == b.Name
	case RawType:
		return rawText(a) == rawText(b)
	case SpecifierType:
		return a.Spec == b.Spec && a.String == b.String && a.Name == b.Name
	}
	if a.Name != b.Name || a.String != b.String || a.Computed != b.Computed {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return Equal(a.Key, b.Key) && Equal(a.Value, b.Value) &&
		Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

func rawText(y *Node) string {
	if y.Range != nil && y.Raw == "" {
		return y.Range.Text()
	}
	return y.Raw
}
