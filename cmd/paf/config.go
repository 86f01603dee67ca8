package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paf/internal/project"
)

// settings is paf.toml merged with explicitly set command-line flags.
type settings struct {
	cfg      project.Config
	manifest *project.Manifest // nil без paf.toml
}

type settingsKey struct{}

func withSettings(ctx context.Context, st *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, st)
}

func settingsFrom(ctx context.Context) *settings {
	if st, ok := ctx.Value(settingsKey{}).(*settings); ok && st != nil {
		return st
	}
	return &settings{cfg: project.Defaults()}
}

// loadSettings читает paf.toml (--config или поиск вверх от cwd) и
// накладывает поверх флаги, заданные явно.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	st := &settings{cfg: project.Defaults()}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	switch {
	case configPath != "":
		m, err := project.LoadManifest(configPath)
		if err != nil {
			return nil, err
		}
		st.manifest = m
	default:
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		m, ok, err := project.Discover(wd)
		if err != nil {
			return nil, err
		}
		if ok {
			st.manifest = m
		}
	}
	if st.manifest != nil {
		st.cfg = st.manifest.Config
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"color", &st.cfg.Diagnostics.Color},
		{"trace", &st.cfg.Trace.Output},
		{"trace-level", &st.cfg.Trace.Level},
		{"trace-format", &st.cfg.Trace.Format},
		{"trace-mode", &st.cfg.Trace.Mode},
		{"format", &st.cfg.Tokenize.Format},
		{"diag-format", &st.cfg.Diagnostics.Format},
		{"ui", &st.cfg.Tokenize.UI},
	}
	for _, o := range overrides {
		if flags.Lookup(o.flag) == nil || !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if st.cfg.Diagnostics.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if st.cfg.Tokenize.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Lookup("cache") != nil && flags.Changed("cache") {
		if st.cfg.Tokenize.Cache, err = flags.GetBool("cache"); err != nil {
			return nil, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}

	if err := st.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return st, nil
}
