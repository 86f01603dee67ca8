package diag

import (
	"testing"

	"paf/internal/source"
)

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		added := b.Add(NewError(LexUnknownChar, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x"))
		if want := i < 2; added != want {
			t.Fatalf("Add #%d = %v, want %v", i, added, want)
		}
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("unexpected len/cap %d/%d", b.Len(), b.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatalf("empty bag must not report errors")
	}
	b.Add(New(SevWarning, ObsTimings, source.Span{}, "slow"))
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("warning-only bag misreported")
	}
	b.Add(NewError(LexBadNumber, source.Span{}, "bad"))
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(LexBadNumber, source.Span{File: 1, Start: 0, End: 1}, "b"))
	b.Add(New(SevWarning, LexInfo, source.Span{File: 0, Start: 5, End: 6}, "w"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 5, End: 6}, "e"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 5, End: 6}, "dup"))

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexUnknownChar || items[1].Code != LexInfo || items[2].Code != LexBadNumber {
		t.Fatalf("unexpected order: %v %v %v", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, source.Span{}, "a"))
	other := NewBag(2)
	other.Add(NewError(LexBadNumber, source.Span{}, "b"))
	other.Add(NewError(LexBadNumber, source.Span{}, "c"))

	a.Merge(other)
	if a.Len() != 3 || a.Cap() < 3 {
		t.Fatalf("merge lost diagnostics: len=%d cap=%d", a.Len(), a.Cap())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:   "LEX1001",
		LexUnexpectedEOF: "LEX1006",
		IOLoadFileError:  "IO4001",
		ObsTimings:       "OBS6001",
		Code(9999):       "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", c, got, want)
		}
	}
	if LexBadNumber.String() != "[LEX1004]: Malformed numeric literal" {
		t.Errorf("unexpected String: %q", LexBadNumber.String())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	rb := ReportError(r, LexUnknownChar, source.Span{Start: 1, End: 2}, "unknown character '@'").
		WithNote(source.Span{Start: 0, End: 1}, "previous token here")
	rb.Emit()
	rb.Emit()

	if b.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", b.Len())
	}
	if got := b.Items()[0]; len(got.Notes) != 1 || got.Severity != SevError {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
}

func TestSeverityLabels(t *testing.T) {
	cases := map[Severity]string{
		SevInfo:      "INFO",
		SevWarning:   "WARNING",
		SevError:     "ERROR",
		SevError + 1: "UNKNOWN",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", uint8(sev), got, want)
		}
	}
	if !(SevInfo < SevWarning && SevWarning < SevError) {
		t.Fatalf("severities must be ordered info < warning < error")
	}
}
