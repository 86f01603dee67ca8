package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 6}) {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must be a no-op, got %v", got)
	}
}

func TestSpanOverlaps(t *testing.T) {
	cases := []struct {
		a, b Span
		want bool
	}{
		{Span{Start: 0, End: 2}, Span{Start: 2, End: 3}, false}, // смежные
		{Span{Start: 0, End: 3}, Span{Start: 2, End: 4}, true},
		{Span{Start: 1, End: 1}, Span{Start: 0, End: 4}, false}, // пустой
		{Span{File: 1, Start: 0, End: 3}, Span{Start: 0, End: 3}, false},
	}
	for _, tc := range cases {
		if got := tc.a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSpanLenAndString(t *testing.T) {
	s := Span{File: 3, Start: 10, End: 14}
	if s.Len() != 4 || s.Empty() {
		t.Fatalf("unexpected len/empty for %v", s)
	}
	if s.String() != "3:10-14" {
		t.Fatalf("String = %q", s.String())
	}
}
