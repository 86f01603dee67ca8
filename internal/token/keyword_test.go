package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":  KwFn,
		"let": KwLet,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{"Fn", "FN", "LET", "fnx", "lets", "int", "float", "", "_"}
	for _, s := range notKw {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want !ok", s, k)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	cases := map[byte]Kind{
		'(': LParen, ')': RParen, '{': LBrace, '}': RBrace, '|': Bar,
		';': Semicolon, ':': Colon, ',': Comma, '.': Dot, '=': Assign, '+': Plus,
	}
	for b, want := range cases {
		got, ok := LookupPunct(b)
		if !ok || got != want {
			t.Errorf("LookupPunct(%q) = %v,%v want %v", b, got, ok, want)
		}
	}
	for _, b := range []byte{'@', '-', '*', '/', 'a', '0', 0xC3} {
		if _, ok := LookupPunct(b); ok {
			t.Errorf("LookupPunct(%q) should fail", b)
		}
	}
}
