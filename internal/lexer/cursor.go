package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"paf/internal/source"
	"paf/internal/token"
)

// tabWidth is a flat column advance, not a tab stop.
const tabWidth = 4

// Cursor представляет собой позицию в файле: смещение в байтах плюс
// отображаемые строка/колонка. Двигается только вперёд (кроме Reset).
type Cursor struct {
	File *source.File
	Off  uint32
	Row  uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// PeekRune decodes the rune at the cursor; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.File.Content[c.Off]; b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
}

// Rest returns the unconsumed suffix of the input. Do not modify it.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.Limit]
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.Rest(), []byte(s))
}

// Bump consumes one whole rune and advances the display position:
// '\n' starts a new row, '\t' adds tabWidth columns, everything else adds one.
func (c *Cursor) Bump() rune {
	r, sz := c.PeekRune()
	if sz == 0 {
		return 0
	}
	c.Off += uint32(sz) //nolint:gosec // utf8 rune size is at most 4
	switch r {
	case '\n':
		c.Row++
		c.Col = 0
	case '\t':
		c.Col += tabWidth
	default:
		c.Col++
	}
	return r
}

// BumpN consumes n runes.
func (c *Cursor) BumpN(n int) {
	for range n {
		c.Bump()
	}
}

// Pos returns the current display position.
func (c *Cursor) Pos() token.Pos {
	return token.Pos{Row: c.Row, Col: c.Col}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
// и восстанавливать позицию вместе со строкой/колонкой.
type Mark struct {
	Off uint32
	Row uint32
	Col uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Row: c.Row, Col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.Off,
		End:   c.Off,
	}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Row, c.Col = m.Off, m.Row, m.Col
}
