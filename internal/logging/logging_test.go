package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewAppendsToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("earlier run\n"), 0644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	logger, closer, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("Starting Similar Domain Bruteforcer")
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.HasPrefix(got, "earlier run\n") {
		t.Fatalf("log file was truncated: %q", got)
	}
	if !strings.Contains(got, "level=info") || !strings.Contains(got, "Starting Similar Domain Bruteforcer") {
		t.Fatalf("missing info record: %q", got)
	}
	if !strings.Contains(got, "time=") {
		t.Fatalf("missing timestamp: %q", got)
	}
	if strings.Contains(got, "hidden at info level") {
		t.Fatalf("debug record written at info level")
	}
}

func TestNewDebugAndVerbose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.log")
	var stderr bytes.Buffer
	logger, closer, err := New(Options{File: path, Debug: true, Verbose: true, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v; want debug", logger.GetLevel())
	}
	logger.Debug("wrote candidate list")

	if !strings.Contains(stderr.String(), "wrote candidate list") {
		t.Fatalf("record not mirrored to stderr: %q", stderr.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "wrote candidate list") {
		t.Fatalf("record not written to file: %q", b)
	}
}

func TestNewUnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "run.log")
	if _, _, err := New(Options{File: path}); err == nil {
		t.Fatalf("expected error for log file in a missing directory")
	}
}
