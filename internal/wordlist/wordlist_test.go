package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadStripsSeparator(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	got, err := Load(logger, writeList(t, ".com\n.net\n"), true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"com", "net"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %q; want %q", got, want)
	}
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("unexpected log entries: %v", hook.AllEntries())
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		strip bool
		want  []string
	}{
		{"Trims whitespace", "  shop \n\tmail\r\n", false, []string{"shop", "mail"}},
		{"Keeps blank lines", "shop\n\n   \nmail\n", false, []string{"shop", "", "", "mail"}},
		{"No trailing newline", "shop\nmail", false, []string{"shop", "mail"}},
		{"Strip off keeps dot", ".com\n", false, []string{".com"}},
		{"Strip removes a single dot", "..com\n", true, []string{".com"}},
		{"Strip after trim", "  .co.uk  \n", true, []string{"co.uk"}},
		{"Strip on bare entry", "com\n", true, []string{"com"}},
		{"Duplicates kept", "shop\nshop\n", false, []string{"shop", "shop"}},
		{"Empty input", "", true, []string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(strings.NewReader(tc.input), tc.strip)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLoadMissingFileDegrades(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	missing := filepath.Join(t.TempDir(), "nope.txt")

	got, err := Load(logger, missing, false)
	if err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error-level log entry, got %v", entry)
	}
	if entry.Message != "File not found: "+missing {
		t.Fatalf("unexpected message %q", entry.Message)
	}
}

func TestReadMissingFileIsNotFatal(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"), false)
	if !errors.Is(err, core.ErrInputMissing) {
		t.Fatalf("expected ErrInputMissing, got %v", err)
	}
	if core.IsFatal(err) {
		t.Fatalf("missing input must not be fatal")
	}
}

func TestLoadDirectoryIsFatal(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	// Opening a directory succeeds but reading it does not.
	_, err := Load(logger, t.TempDir(), false)
	if err == nil {
		t.Fatalf("expected error reading a directory")
	}
	if errors.Is(err, core.ErrInputMissing) {
		t.Fatalf("directory should not be reported as missing: %v", err)
	}
}
