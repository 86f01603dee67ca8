package lexer

import (
	"paf/internal/token"
)

// scanPunct consumes a single-byte symbol already classified by token.LookupPunct.
// No lookahead: "==" is two Assign tokens.
func (lx *Lexer) scanPunct(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(kind, start)
}
