// Package wordlist loads the newline-delimited TLD and compound-word files.
package wordlist

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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
)

// Load reads the list at path. A path that does not exist is not fatal: the
// error is logged and an empty list returned so the run continues with
// whatever input it has. With stripSeparator set, one leading "." is removed
// from every entry (".com" becomes "com"). Entry counts are recorded under
// the file's base name.
func Load(log logrus.FieldLogger, path string, stripSeparator bool) ([]string, error) {
	list := filepath.Base(path)
	lines, err := Read(path, stripSeparator)
	if err != nil {
		if core.IsFatal(err) {
			metrics.GetMetrics().RecordDiskError(list, "read")
			return nil, err
		}
		log.WithError(err).Errorf("File not found: %s", path)
		metrics.GetMetrics().RecordWordlist(list, 0, true)
		return []string{}, nil
	}
	metrics.GetMetrics().RecordWordlist(list, len(lines), false)
	return lines, nil
}

// Read is Load without the logging; a missing file comes back as a wrapped
// core.ErrInputMissing.
func Read(path string, stripSeparator bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, core.ErrInputMissing)
		}
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()

	lines, err := Parse(f, stripSeparator)
	if err != nil {
		return nil, fmt.Errorf("failed reading word list %q: %w", path, err)
	}
	return lines, nil
}

// Parse splits r into whitespace-trimmed lines. Blank lines are kept as empty
// strings; nothing else is validated.
func Parse(r io.Reader, stripSeparator bool) ([]string, error) {
	lines := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if stripSeparator {
			line = strings.TrimPrefix(line, core.LabelSeparator)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
