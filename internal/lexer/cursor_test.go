package lexer

import (
	"testing"

	"paf/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.paf", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	for i, want := range []rune{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := cursor.Peek(); rune(got) != want {
			t.Errorf("step %d: peek %q, want %q", i, got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("step %d: bump %q, want %q", i, got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("Expected peek 0 at EOF, got %q", cursor.Peek())
	}
	if cursor.Bump() != 0 {
		t.Error("Expected bump 0 at EOF")
	}
	if cursor.Off != 3 {
		t.Errorf("Expected Off=3, got %d", cursor.Off)
	}
}

func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("ab"))

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = (%q, %q, %v), want ('a', 'b', true)", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 must fail with one byte left")
	}
}

// TestPositionStep проверяет правило шага: \n → новая строка, \t → +4, остальное → +1
func TestPositionStep(t *testing.T) {
	cursor := NewCursor(createFile("a\tb\nc\u00e9d"))

	type step struct{ row, col uint32 }
	want := []step{
		{0, 1}, // a
		{0, 5}, // \t
		{0, 6}, // b
		{1, 0}, // \n
		{1, 1}, // c
		{1, 2}, // é (два байта, одна колонка)
		{1, 3}, // d
	}
	for i, w := range want {
		cursor.Bump()
		if cursor.Row != w.row || cursor.Col != w.col {
			t.Errorf("step %d: got %d:%d, want %d:%d", i, cursor.Row, cursor.Col, w.row, w.col)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF")
	}
}

func TestSpanFromResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.paf", []byte("let x\n  = 1"))
	cursor := NewCursor(fs.Get(id))

	cursor.BumpN(6) // "let x\n"
	cursor.BumpN(2) // "  "
	m := cursor.Mark()
	cursor.BumpN(3) // "= 1"

	sp := cursor.SpanFrom(m)
	if sp.Start != 8 || sp.End != 11 {
		t.Fatalf("span = %s, want 8-11", sp)
	}
	start, end := fs.Resolve(sp)
	if start.Line != 2 || start.Col != 3 {
		t.Errorf("start = %d:%d, want 2:3", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("end = %d:%d, want 2:6", end.Line, end.Col)
	}
}

func TestHasPrefix(t *testing.T) {
	cursor := NewCursor(createFile("/* x */"))
	if !cursor.HasPrefix("/*") {
		t.Error("Expected /* prefix")
	}
	if cursor.HasPrefix("//") {
		t.Error("Unexpected // prefix")
	}
	cursor.BumpN(5)
	if !cursor.HasPrefix("*/") {
		t.Error("Expected */ prefix")
	}
	cursor.BumpN(2)
	if cursor.HasPrefix("*/") {
		t.Error("Prefix must not match at EOF")
	}
}

func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("ab\ncd"))

	cursor.Bump()
	m := cursor.Mark()
	cursor.BumpN(3)
	if cursor.Row != 1 || cursor.Col != 1 {
		t.Fatalf("before reset: %d:%d", cursor.Row, cursor.Col)
	}

	cursor.Reset(m)
	if cursor.Off != 1 || cursor.Row != 0 || cursor.Col != 1 {
		t.Errorf("after reset: off=%d pos=%d:%d, want off=1 pos=0:1", cursor.Off, cursor.Row, cursor.Col)
	}
	if cursor.Peek() != 'b' {
		t.Errorf("Expected 'b' after reset, got %q", cursor.Peek())
	}
}
