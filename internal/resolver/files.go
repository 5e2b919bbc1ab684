package resolver

/*
Similar-Domain-Bruteforcer — look-alike domain generation and resolution
Copyright (C) 2025  Pepijn van der Stap <rxtls@vanderstap.info>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/util"
)

// ResultsPath names the massdns output file for keyword inside dir.
func ResultsPath(dir, keyword string) string {
	return filepath.Join(dir, util.SanitizeFilename(keyword)+core.ResultsSuffix)
}

// GeneratedPath derives the candidate file from a results file by swapping
// the "-results.txt" suffix for "-generated.txt". A name without that suffix
// gets "-generated.txt" appended so the two never coincide.
func GeneratedPath(resultsPath string) string {
	dir, base := filepath.Split(resultsPath)
	if stem, ok := strings.CutSuffix(base, core.ResultsSuffix); ok {
		return dir + stem + core.GeneratedSuffix
	}
	return dir + base + core.GeneratedSuffix
}

// WriteCandidates writes the set to path, sorted, one name per line with a
// trailing newline. Data goes to "<path>.tmp" first and is renamed into place
// once flushed, so massdns never sees a half-written list.
func WriteCandidates(path string, candidates core.CandidateSet) (int64, error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		metrics.GetMetrics().RecordDiskError("generated", "create")
		return 0, fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	w := bufio.NewWriterSize(f, core.DefaultWriteBufferSize)
	var written int64
	for _, name := range candidates.Sorted() {
		n, err := w.WriteString(name + "\n")
		written += int64(n)
		if err != nil {
			f.Close()
			os.Remove(tmp)
			metrics.GetMetrics().RecordDiskError("generated", "write")
			return written, fmt.Errorf("failed writing %s: %w", tmp, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		metrics.GetMetrics().RecordDiskError("generated", "flush")
		return written, fmt.Errorf("failed flushing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		metrics.GetMetrics().RecordDiskError("generated", "close")
		return written, fmt.Errorf("failed closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		metrics.GetMetrics().RecordDiskError("generated", "rename")
		return written, fmt.Errorf("failed to rename %s to %s: %w", tmp, path, err)
	}

	metrics.GetMetrics().RecordDiskWrite("generated", written)
	return written, nil
}
