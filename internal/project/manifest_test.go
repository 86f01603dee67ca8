package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadManifest_Full(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[tokenize]
format = "json"
jobs = 4
cache = true

[diagnostics]
color = "off"
max = 5
format = "short"

[trace]
level = "detail"
output = "trace.ndjson"
format = "ndjson"
`)
	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Dir(path), m.Root)

	cfg := m.Config
	require.Equal(t, "json", cfg.Tokenize.Format)
	require.Equal(t, 4, cfg.Tokenize.Jobs)
	require.True(t, cfg.Tokenize.Cache)
	require.Equal(t, "off", cfg.Diagnostics.Color)
	require.Equal(t, 5, cfg.Diagnostics.Max)
	require.Equal(t, "short", cfg.Diagnostics.Format)
	require.Equal(t, "detail", cfg.Trace.Level)
	require.Equal(t, "trace.ndjson", cfg.Trace.Output)

	require.True(t, m.IsDefined("tokenize.jobs"))
	require.False(t, m.IsDefined("tokenize.ui"))
}

// Отсутствующие ключи берутся из Defaults
func TestLoadManifest_PartialKeepsDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[tokenize]\njobs = 2\n")
	m, err := LoadManifest(path)
	require.NoError(t, err)

	want := Defaults()
	want.Tokenize.Jobs = 2
	require.Equal(t, want, m.Config)
}

func TestLoadManifest_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":      "[tokenize\n",
		"unknown key": "[tokenize]\nspeed = 1\n",
		"bad format":  "[tokenize]\nformat = \"xml\"\n",
		"bad color":   "[diagnostics]\ncolor = \"always\"\n",
		"bad level":   "[trace]\nlevel = \"loud\"\n",
		"neg jobs":    "[tokenize]\njobs = -1\n",
		"neg max":     "[diagnostics]\nmax = -3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, t.TempDir(), body))
			require.Error(t, err)
		})
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[diagnostics]\nmax = 7\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, ok, err := Discover(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, m.Config.Diagnostics.Max)

	projectRoot, ok, err := FindProjectRoot(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, m.Root, projectRoot)
}

func TestDigest(t *testing.T) {
	a := DigestOf("a")
	b := DigestOf("b")
	require.False(t, a.IsZero())
	require.True(t, Digest{}.IsZero())
	require.NotEqual(t, Combine(a, b), Combine(b, a))
	require.Equal(t, Combine(a, b), Combine(a, b))
	require.Len(t, a.String(), 64)
}
