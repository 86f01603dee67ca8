package token

import (
	"fmt"
	"strconv"

	"paf/internal/source"
)

// Token represents a single source token with its location and literal payload.
// Only the payload field matching Kind is meaningful: Text for Ident,
// Int for IntLit, Float for FloatLit.
type Token struct {
	Kind  Kind
	Row   uint32 // 0-based
	Col   uint32 // 0-based, display columns
	Span  source.Span
	Text  string
	Int   int32
	Float float32
}

// Pos returns the display position of the token's first character.
func (t Token) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, LParen, RParen, LBrace, RBrace, Bar, Semicolon, Colon, Comma, Dot, Assign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwLet:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Same compares kind and payload, ignoring position.
func (t Token) Same(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Ident:
		return t.Text == o.Text
	case IntLit:
		return t.Int == o.Int
	case FloatLit:
		return t.Float == o.Float
	default:
		return true
	}
}

// Payload renders the literal payload, or "" for kinds without one.
func (t Token) Payload() string {
	switch t.Kind {
	case Ident:
		return strconv.Quote(t.Text)
	case IntLit:
		return strconv.FormatInt(int64(t.Int), 10)
	case FloatLit:
		return strconv.FormatFloat(float64(t.Float), 'g', -1, 32)
	default:
		return ""
	}
}

// String renders the token as Kind(payload)@row:col.
func (t Token) String() string {
	if p := t.Payload(); p != "" {
		return fmt.Sprintf("%s(%s)@%d:%d", t.Kind, p, t.Row, t.Col)
	}
	return fmt.Sprintf("%s@%d:%d", t.Kind, t.Row, t.Col)
}

// Pos is a zero-based display position.
type Pos struct {
	Row uint32
	Col uint32
}

// Less orders positions row-major.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}
