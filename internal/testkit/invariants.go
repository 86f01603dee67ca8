package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"paf/internal/source"
	"paf/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a token stream of sf:
// 1) every span is non-empty, belongs to sf and lies within content bounds
// 2) Text is exactly the source bytes covered by Span
// 3) spans are strictly increasing and never overlap
// 4) Row/Col positions are strictly increasing row-major
// 5) EOF and Invalid never appear in the stream
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	for i, tok := range tokens {
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return fmt.Errorf("token %d: unexpected kind %s", i, tok.Kind)
		}
		sp := tok.Span
		if sp.Empty() || sp.End < sp.Start {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		if prev.Span.Overlaps(sp) || prev.Span.End > sp.Start {
			return fmt.Errorf("token %d: span %v overlaps or precedes %v", i, sp, prev.Span)
		}
		if !prev.Pos().Less(tok.Pos()) {
			return fmt.Errorf("token %d: position %s is not after %s", i, tok.Pos(), prev.Pos())
		}
	}
	return nil
}
