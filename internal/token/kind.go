package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let

	// IntLit represents the integer literal token (32-bit signed).
	IntLit
	// FloatLit represents the float literal token (32-bit).
	FloatLit

	// Plus represents the plus operator token.
	Plus // +

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Bar represents the bar token.
	Bar // |
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Assign represents the equal sign token.
	Assign // =
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Identifier",
	KwFn:      "Function",
	KwLet:     "Let",
	IntLit:    "Integer",
	FloatLit:  "Float",
	Plus:      "Plus",
	LParen:    "OpenParen",
	RParen:    "CloseParen",
	LBrace:    "OpenBrace",
	RBrace:    "CloseBrace",
	Bar:       "Bar",
	Semicolon: "Semicolon",
	Colon:     "Colon",
	Comma:     "Comma",
	Dot:       "Dot",
	Assign:    "Equal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }
