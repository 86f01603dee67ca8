package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"paf/internal/diag"
	"paf/internal/source"
)

func prettyString(t *testing.T, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	return buf.String()
}

// TestPrettyCaret проверяет заголовок, строку исходника и позицию ^
func TestPrettyCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.paf", []byte("let x = 1;\nlet y = @;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 19, End: 20}, "unknown character '@'"))

	out := prettyString(t, bag, fs, PrettyOpts{})
	want := "" +
		"main.paf:2:9: ERROR LEX1001: unknown character '@'\n" +
		"2 | let y = @;\n" +
		"  |         ^\n"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestPrettyUnderlineAndContext(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.paf", []byte("a\nlet n = 99999999999;\nb\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexBadNumber, source.Span{File: fileID, Start: 10, End: 21}, "malformed numeric literal"))

	out := prettyString(t, bag, fs, PrettyOpts{Context: 1})
	for _, line := range []string{
		"1 | a\n",
		"2 | let n = 99999999999;\n",
		"  |         ^~~~~~~~~~~\n",
		"3 | b\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

// Табуляция раскрывается в 4 пробела, широкие символы занимают две колонки
func TestPrettyTabsAndWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("wide.paf", []byte("\t日本 @"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 9}, "unknown character '@'"))

	out := prettyString(t, bag, fs, PrettyOpts{})
	if !strings.Contains(out, "1 |     日本 @\n") {
		t.Errorf("tabs not expanded:\n%s", out)
	}
	// 4 (tab) + 4 (два широких символа) + 1 (пробел)
	if !strings.Contains(out, "  | "+strings.Repeat(" ", 9)+"^\n") {
		t.Errorf("caret misaligned:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.paf", []byte("/* open"))

	d := diag.NewError(diag.LexUnterminatedBlockComment, source.Span{File: fileID, Start: 0, End: 7}, "unterminated block comment").
		WithNote(source.Span{File: fileID, Start: 0, End: 2}, "comment starts here")
	bag := diag.NewBag(10)
	bag.Add(d)

	withNotes := prettyString(t, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(withNotes, "note: n.paf:1:1: comment starts here") {
		t.Errorf("note missing:\n%s", withNotes)
	}
	withoutNotes := prettyString(t, bag, fs, PrettyOpts{})
	if strings.Contains(withoutNotes, "note:") {
		t.Errorf("note printed with ShowNotes=false:\n%s", withoutNotes)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.paf", []byte("@"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "unknown character '@'"))

	if out := prettyString(t, bag, fs, PrettyOpts{Color: true}); !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes with Color=true:\n%q", out)
	}
	if out := prettyString(t, bag, fs, PrettyOpts{Color: false}); strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected ANSI escapes with Color=false:\n%q", out)
	}
}
