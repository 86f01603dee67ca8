package ast

// Type is a primitive value type of the language.
type Type uint8

const (
	TypeInt Type = iota
	TypeFloat
)

var typeNames = [...]string{
	TypeInt:   "int",
	TypeFloat: "float",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(?)"
}

// LookupType maps a type name as written in source ("int", "float") to a Type.
func LookupType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), true //nolint:gosec // index of a short array
		}
	}
	return 0, false
}

// BinaryOperator is an arithmetic operator.
type BinaryOperator uint8

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}
