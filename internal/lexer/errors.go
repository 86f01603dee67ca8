package lexer

import (
	"errors"
	"fmt"

	"paf/internal/diag"
	"paf/internal/source"
)

var (
	// ErrUnexpectedEOF: input ended inside a construct that needs a terminator.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrUnknownCharacter: a character that starts no token.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrNumberParse: a digit run that does not fit its literal type.
	ErrNumberParse = errors.New("malformed numeric literal")
)

// Error describes the lexical failure that aborted tokenization.
// It matches one of the sentinel errors above via errors.Is; for
// number failures errors.As also reaches the *strconv.NumError.
type Error struct {
	Kind error // one of the sentinels
	Char rune  // offending character, ErrUnknownCharacter only
	Text string
	Row  uint32
	Col  uint32
	Span source.Span
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownCharacter:
		return fmt.Sprintf("%d:%d: unknown character %q", e.Row, e.Col, e.Char)
	case ErrNumberParse:
		return fmt.Sprintf("%d:%d: malformed numeric literal %q: %v", e.Row, e.Col, e.Text, e.Err)
	case ErrUnexpectedEOF:
		if e.Text != "" {
			return fmt.Sprintf("%d:%d: unexpected end of input: %s", e.Row, e.Col, e.Text)
		}
		return fmt.Sprintf("%d:%d: unexpected end of input", e.Row, e.Col)
	}
	return fmt.Sprintf("%d:%d: lexical error", e.Row, e.Col)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Code maps the error onto its diagnostic code.
func (e *Error) Code() diag.Code {
	switch e.Kind {
	case ErrUnknownCharacter:
		return diag.LexUnknownChar
	case ErrNumberParse:
		return diag.LexBadNumber
	case ErrUnexpectedEOF:
		if e.Text != "" {
			return diag.LexUnterminatedBlockComment
		}
		return diag.LexUnexpectedEOF
	}
	return diag.UnknownCode
}

// fail records err, reports it and makes it sticky.
func (lx *Lexer) fail(err *Error) error {
	lx.report(err.Code(), err.Span, err.Error())
	lx.err = err
	return err
}
