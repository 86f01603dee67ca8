package token

var keywords = map[string]Kind{
	"fn":  KwFn,
	"let": KwLet,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: "Fn" и "LET" остаются идентификаторами.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// punct maps every single-character symbol/operator to its kind.
var punct = [128]Kind{
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'|': Bar,
	';': Semicolon,
	':': Colon,
	',': Comma,
	'.': Dot,
	'=': Assign,
	'+': Plus,
}

// LookupPunct returns the kind of a one-byte symbol or operator.
func LookupPunct(b byte) (Kind, bool) {
	if b >= 128 {
		return Invalid, false
	}
	k := punct[b]
	return k, k != Invalid
}
