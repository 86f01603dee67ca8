package lexer

import (
	"paf/internal/source"
	"paf/internal/token"
)

// Lexer turns one source.File into tokens. It is not safe for concurrent use;
// independent Lexers over independent files need no coordination.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	err    error        // первая ошибка, после неё Next всегда её возвращает
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF; после ошибки всегда возвращает ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}
	if lx.err != nil {
		return token.Token{Kind: token.Invalid}, lx.err
	}

	if err := lx.skipTrivia(); err != nil {
		return token.Token{Kind: token.Invalid}, err
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Row:  lx.cursor.Row,
			Col:  lx.cursor.Col,
			Span: lx.emptySpan(),
		}, nil
	}

	// Порядок важен: символы, затем числа, затем идентификаторы.
	ch := lx.cursor.Peek()
	if kind, ok := token.LookupPunct(ch); ok {
		return lx.scanPunct(kind), nil
	}
	if isDec(ch) {
		return lx.scanNumber()
	}
	if r, _ := lx.cursor.PeekRune(); isIdentStartRune(r) {
		return lx.scanIdentOrKeyword(), nil
	}
	return token.Token{Kind: token.Invalid}, lx.unknownChar()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return t, err
	}
	lx.look = &t
	return t, nil
}

// Pos returns the display position the next scan starts from.
func (lx *Lexer) Pos() token.Pos {
	return lx.cursor.Pos()
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// emit builds a token for everything consumed since start.
// Row/Col come from the mark, i.e. the position before consumption.
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Row:  start.Row,
		Col:  start.Col,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) unknownChar() error {
	start := lx.cursor.Mark()
	r := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Reset(start)
	return lx.fail(&Error{
		Kind: ErrUnknownCharacter,
		Char: r,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Row:  start.Row,
		Col:  start.Col,
		Span: sp,
	})
}
