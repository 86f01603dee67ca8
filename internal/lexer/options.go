package lexer

import (
	"paf/internal/diag"
	"paf/internal/source"
)

type Options struct {
	// Reporter receives a diagnostic for the error that stops the lexer.
	// May be nil: the error is still returned from Next.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
