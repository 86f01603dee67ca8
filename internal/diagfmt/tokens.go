package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"paf/internal/source"
	"paf/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Row   uint32      `json:"row"`
	Col   uint32      `json:"col"`
	Text  string      `json:"text,omitempty"`
	Int   *int32      `json:"int,omitempty"`
	Float *float32    `json:"float,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, вид, значение и позиция row:col (с нуля, как у лексера).
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		line := fmt.Sprintf("%3d: %-10s %-8s", i+1, tok.Kind.String(), tok.Pos())
		if p := tok.Payload(); p != "" {
			line += " " + p
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TokenOutputs converts tokens into their JSON shape, stopping at EOF.
func TokenOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Row:  tok.Row,
			Col:  tok.Col,
			Span: tok.Span,
		}
		switch tok.Kind {
		case token.Ident:
			out.Text = tok.Text
		case token.IntLit:
			v := tok.Int
			out.Int = &v
		case token.FloatLit:
			v := tok.Float
			out.Float = &v
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	return writeJSON(w, TokenOutputs(tokens))
}

// FileTokensOutput is the per-file entry of directory mode JSON output.
type FileTokensOutput struct {
	Path   string        `json:"path"`
	Cached bool          `json:"cached,omitempty"`
	Error  string        `json:"error,omitempty"`
	Tokens []TokenOutput `json:"tokens"`
}

// FormatFileTokensJSON выводит токены нескольких файлов одним JSON массивом.
func FormatFileTokensJSON(w io.Writer, files []FileTokensOutput) error {
	for i := range files {
		if files[i].Tokens == nil {
			files[i].Tokens = []TokenOutput{}
		}
	}
	return writeJSON(w, files)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
