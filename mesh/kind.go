package mesh

// Kind identifies the value kind of an attribute array. The set is
// closed: arrays hold integers, floats or booleans, nothing else.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "invalid"
	}
}

// parseKind is the inverse of Kind.String for the valid kinds.
func parseKind(s string) (Kind, bool) {
	switch s {
	case "integer":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "boolean":
		return KindBool, true
	default:
		return KindInvalid, false
	}
}

// widen returns the kind two kinds can be safely unified to. Integers
// widen to floats; booleans widen to nothing.
func widen(a, b Kind) (Kind, bool) {
	if a == b {
		return a, true
	}
	if (a == KindInt && b == KindFloat) || (a == KindFloat && b == KindInt) {
		return KindFloat, true
	}
	return KindInvalid, false
}
