package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
)

func valid() Config {
	cfg := Config{
		Keyword:      "acme",
		TLDFile:      "tlds.txt",
		CompoundFile: "words.txt",
		ResolverFile: "resolvers.txt",
		OutputDir:    ".",
		MassDNSPath:  "massdns",
		LogFile:      "run.log",
	}
	return cfg
}

func TestDefaultFromEnvironment(t *testing.T) {
	t.Setenv(EnvMassDNSBinary, "/opt/massdns/bin/massdns")
	t.Setenv(EnvLogFile, "")

	cfg := Default()
	if cfg.MassDNSPath != "/opt/massdns/bin/massdns" {
		t.Errorf("MassDNSPath = %q", cfg.MassDNSPath)
	}
	if cfg.LogFile != core.DefaultLogFile {
		t.Errorf("LogFile = %q; want %q", cfg.LogFile, core.DefaultLogFile)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"No keyword", func(c *Config) { c.Keyword = "" }, "--domain"},
		{"Blank keyword", func(c *Config) { c.Keyword = "  " }, "--domain"},
		{"No TLD file", func(c *Config) { c.TLDFile = "" }, "--tlds"},
		{"No compound file", func(c *Config) { c.CompoundFile = "" }, "--compounds"},
		{"No resolver file", func(c *Config) { c.ResolverFile = "" }, "--resolver"},
		{"No output dir", func(c *Config) { c.OutputDir = "" }, "output directory"},
		{"No log file", func(c *Config) { c.LogFile = "" }, "log file"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestResultAndGeneratedFiles(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.OutputDir = "out"
	if got, want := cfg.ResultsFile(), filepath.Join("out", "acme-results.txt"); got != want {
		t.Errorf("ResultsFile = %q; want %q", got, want)
	}
	if got, want := cfg.GeneratedFile(), filepath.Join("out", "acme-generated.txt"); got != want {
		t.Errorf("GeneratedFile = %q; want %q", got, want)
	}
}
