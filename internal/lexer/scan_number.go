package lexer

import (
	"strconv"
	"strings"

	"paf/internal/token"
)

// scanNumber сканирует [0-9][0-9_.]* с не более чем одной точкой.
// Вторая точка не съедается: "1.2.3" → Float(1.2), Dot, Integer(3).
// '_' разделяет группы цифр и удаляется перед разбором; "1." это валидный Float(1.0).
// Переполнение int32/float32 даёт ошибку ErrNumberParse.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	seenDot := false

scan:
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b), b == '_':
		case b == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.IntLit, start)
	digits := strings.ReplaceAll(tok.Text, "_", "")

	if seenDot {
		v, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return token.Token{Kind: token.Invalid}, lx.badNumber(tok, err)
		}
		tok.Kind = token.FloatLit
		tok.Float = float32(v)
		return tok, nil
	}

	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return token.Token{Kind: token.Invalid}, lx.badNumber(tok, err)
	}
	tok.Int = int32(v)
	return tok, nil
}

func (lx *Lexer) badNumber(tok token.Token, err error) error {
	return lx.fail(&Error{
		Kind: ErrNumberParse,
		Text: tok.Text,
		Row:  tok.Row,
		Col:  tok.Col,
		Span: tok.Span,
		Err:  err,
	})
}
