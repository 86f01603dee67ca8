package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors paf.toml. Zero values mean "not set"; use Defaults for the baseline.
type Config struct {
	Tokenize    TokenizeConfig    `toml:"tokenize"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Trace       TraceConfig       `toml:"trace"`
}

type TokenizeConfig struct {
	Format string `toml:"format"` // pretty|json
	Jobs   int    `toml:"jobs"`   // 0 = GOMAXPROCS
	Cache  bool   `toml:"cache"`
	UI     string `toml:"ui"` // auto|on|off
}

type DiagnosticsConfig struct {
	Color  string `toml:"color"` // auto|on|off
	Max    int    `toml:"max"`
	Format string `toml:"format"` // pretty|json|short
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
	Mode   string `toml:"mode"`
}

// Manifest is a decoded paf.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// defined keeps track of keys present in the file, e.g. "tokenize.cache".
	defined map[string]bool
}

// Defaults returns the configuration used when no paf.toml exists.
func Defaults() Config {
	return Config{
		Tokenize:    TokenizeConfig{Format: "pretty", UI: "auto"},
		Diagnostics: DiagnosticsConfig{Color: "auto", Max: 100, Format: "pretty"},
		Trace:       TraceConfig{Level: "off", Format: "auto", Mode: "stream"},
	}
}

// LoadManifest decodes and validates the manifest at path.
// Keys missing from the file keep their Defaults values.
func LoadManifest(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	defined := make(map[string]bool)
	for _, k := range meta.Keys() {
		defined[k.String()] = true
	}
	return &Manifest{
		Path:    path,
		Root:    filepath.Dir(path),
		Config:  cfg,
		defined: defined,
	}, nil
}

// Discover finds paf.toml upward from startDir and loads it.
// ok=false without error means there is no manifest.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = LoadManifest(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// IsDefined reports whether the dotted key ("tokenize.jobs") was written in the file.
func (m *Manifest) IsDefined(key string) bool {
	return m != nil && m.defined[key]
}

func oneOf(section, key, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("[%s].%s: invalid value %q (expected: %s)", section, key, value, strings.Join(allowed, "|"))
}

// Validate checks enumerated fields and numeric ranges.
func (c Config) Validate() error {
	checks := []error{
		oneOf("tokenize", "format", c.Tokenize.Format, "pretty", "json"),
		oneOf("tokenize", "ui", c.Tokenize.UI, "auto", "on", "off"),
		oneOf("diagnostics", "color", c.Diagnostics.Color, "auto", "on", "off"),
		oneOf("diagnostics", "format", c.Diagnostics.Format, "pretty", "json", "short"),
		oneOf("trace", "level", strings.ToLower(c.Trace.Level), "off", "error", "phase", "detail", "debug"),
		oneOf("trace", "format", c.Trace.Format, "auto", "text", "ndjson"),
		oneOf("trace", "mode", c.Trace.Mode, "stream", "ring", "both"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if c.Tokenize.Jobs < 0 {
		return fmt.Errorf("[tokenize].jobs: must be >= 0, got %d", c.Tokenize.Jobs)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max: must be >= 0, got %d", c.Diagnostics.Max)
	}
	return nil
}
