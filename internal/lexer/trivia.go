package lexer

// skipTrivia пропускает пробелы и комментарии, пока что-то пропускается:
// любая смесь "  // ..\n /* .. */\t" съедается целиком до начала токена.
// - пробельные символы двигают строку/колонку по одному (см. Cursor.Bump)
// - //... до \n (сам \n остаётся пробелом для следующего круга)
// - /* ... */ до первого */ (без вложенности; незакрытый комментарий это ошибка)
func (lx *Lexer) skipTrivia() error {
	for {
		before := lx.cursor.Off
		lx.skipWhitespace()
		if err := lx.skipComment(); err != nil {
			return err
		}
		if lx.cursor.Off == before {
			return nil
		}
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isSpaceRune(r) {
			return
		}
		lx.cursor.Bump()
	}
}

// skipComment consumes at most one comment at the cursor.
func (lx *Lexer) skipComment() error {
	switch {
	case lx.cursor.HasPrefix("//"):
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return nil

	case lx.cursor.HasPrefix("/*"):
		start := lx.cursor.Mark()
		lx.cursor.BumpN(2)
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.BumpN(2)
				return nil
			}
			lx.cursor.Bump()
		}
		return lx.fail(&Error{
			Kind: ErrUnexpectedEOF,
			Text: "unterminated block comment",
			Row:  start.Row,
			Col:  start.Col,
			Span: lx.cursor.SpanFrom(start),
		})
	}
	return nil
}
