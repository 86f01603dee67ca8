package diag

import (
	"testing"

	"paf/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	userFile := fs.AddVirtual("sample.paf", []byte("a\nb @\n"))

	diags := []Diagnostic{
		NewError(LexUnknownChar, source.Span{File: userFile, Start: 4, End: 5}, "unknown character '@'").
			WithNote(source.Span{File: userFile, Start: 0, End: 1}, "first\nline"),
		New(SevWarning, LexInfo, source.Span{File: userFile, Start: 0, End: 1}, "heads up"),
	}

	expected := "note LEX1001 sample.paf:1:1 first line\n" +
		"warning LEX1000 sample.paf:1:1 heads up\n" +
		"error LEX1001 sample.paf:2:3 unknown character '@'"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
