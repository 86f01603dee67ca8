package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeNFC(t *testing.T) {
	decomposed := []byte("cafe\u0301") // e + combining acute
	out, flags := Normalize(decomposed)
	if string(out) != "caf\u00e9" {
		t.Fatalf("expected precomposed form, got %q", out)
	}
	if !flags.Has(FileNormalizedNFC) {
		t.Fatalf("expected NFC flag")
	}

	plain := []byte("let x = 1")
	out, flags = Normalize(plain)
	if string(out) != "let x = 1" || flags != 0 {
		t.Fatalf("ASCII input must pass through untouched, got %q flags=%b", out, flags)
	}
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if string(out) != "a\rb\nc" || !changed {
		t.Fatalf("got %q changed=%v", out, changed)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}

	target := filepath.Join(otherDir, "file.paf")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := t.TempDir()
	target := filepath.Join(baseDir, "nested", "file.paf")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.paf"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
