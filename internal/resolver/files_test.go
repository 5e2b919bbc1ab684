package resolver

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
)

func TestResultsAndGeneratedPaths(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		dir, keyword  string
		wantResults   string
		wantGenerated string
	}{
		{"Current dir", ".", "acme", "acme-results.txt", "acme-generated.txt"},
		{"Output dir", "out", "acme", filepath.Join("out", "acme-results.txt"), filepath.Join("out", "acme-generated.txt")},
		{"Dotted keyword", ".", "acme.corp", "acme.corp-results.txt", "acme.corp-generated.txt"},
		{"Unsafe keyword", ".", "a/b", "a_b-results.txt", "a_b-generated.txt"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			results := ResultsPath(tc.dir, tc.keyword)
			if results != tc.wantResults {
				t.Errorf("ResultsPath = %q; want %q", results, tc.wantResults)
			}
			if got := GeneratedPath(results); got != tc.wantGenerated {
				t.Errorf("GeneratedPath(%q) = %q; want %q", results, got, tc.wantGenerated)
			}
		})
	}
}

func TestGeneratedPathWithoutSuffix(t *testing.T) {
	t.Parallel()

	if got := GeneratedPath("answers.txt"); got != "answers.txt-generated.txt" {
		t.Fatalf("GeneratedPath = %q", got)
	}
	// Only the trailing suffix is replaced.
	if got := GeneratedPath("x-results.txt-results.txt"); got != "x-results.txt-generated.txt" {
		t.Fatalf("GeneratedPath = %q", got)
	}
}

func TestWriteCandidatesRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "acme-generated.txt")
	set := core.GenerateCandidates("acme", []string{"com", "net"}, []string{"shop", "mail"})

	n, err := WriteCandidates(path, set)
	if err != nil {
		t.Fatalf("WriteCandidates: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if int64(len(b)) != n {
		t.Fatalf("reported %d bytes, file has %d", n, len(b))
	}
	if !strings.HasSuffix(string(b), "\n") {
		t.Fatalf("expected trailing newline")
	}
	if _, err := os.Stat(path + ".tmp"); err == nil {
		t.Fatalf("temp file left behind")
	}

	readBack := core.NewCandidateSet()
	sc := bufio.NewScanner(strings.NewReader(string(b)))
	var prev string
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if !set.Contains(name) {
			t.Errorf("%q is not a candidate", name)
		}
		if name < prev {
			t.Errorf("file not sorted: %q after %q", name, prev)
		}
		prev = name
		readBack.Add(name)
	}
	if len(readBack) != len(set) {
		t.Fatalf("read back %d names; want %d", len(readBack), len(set))
	}
}

func TestWriteCandidatesMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "acme-generated.txt")
	if _, err := WriteCandidates(path, core.NewCandidateSet("acme.com")); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}
