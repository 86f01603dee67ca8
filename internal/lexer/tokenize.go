package lexer

import (
	"paf/internal/source"
	"paf/internal/token"
)

// Tokenize converts src into its token sequence. The first lexical error
// aborts the run and no tokens are returned with it.
func Tokenize(src string) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return TokenizeFile(fs.Get(id), Options{})
}

// TokenizeFile runs a Lexer over file until EOF. The EOF token is not included.
func TokenizeFile(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
