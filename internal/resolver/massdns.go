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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
)

// stderrTailSize is how much of massdns' stderr is kept for the debug log.
// massdns redraws its progress table there, so only the tail is useful.
const stderrTailSize = 4 * 1024

// MassDNS resolves candidates by running the massdns binary.
type MassDNS struct {
	// Binary is the massdns executable, a path or a name looked up on PATH.
	Binary string
	// ResultsFile is where massdns writes its answers. The candidate file
	// sits next to it, see GeneratedPath.
	ResultsFile string

	log logrus.FieldLogger
}

// NewMassDNS creates a MassDNS resolver. An empty binary means "massdns".
func NewMassDNS(binary, resultsFile string, log logrus.FieldLogger) *MassDNS {
	if binary == "" {
		binary = core.DefaultMassDNSBinary
	}
	return &MassDNS{
		Binary:      binary,
		ResultsFile: resultsFile,
		log:         log,
	}
}

// Args returns the massdns argument list for one run:
//
//	-r <resolverConfig> -o S -w <results> <input>
func (m *MassDNS) Args(resolverConfig, input string) []string {
	return []string{"-r", resolverConfig, "-o", core.MassDNSShortOutput, "-w", m.ResultsFile, input}
}

// Resolve writes the candidates, runs massdns to completion and parses what
// it wrote. The exit status of massdns is logged but never decides the
// outcome: if the results file can be read, its contents are the answer; if
// it cannot, the run fails with core.ErrResultsUnavailable.
func (m *MassDNS) Resolve(ctx context.Context, candidates core.CandidateSet, resolverConfig string) (*Result, error) {
	input := GeneratedPath(m.ResultsFile)
	written, err := WriteCandidates(input, candidates)
	if err != nil {
		return nil, err
	}
	m.log.WithFields(logrus.Fields{
		"file":  input,
		"bytes": written,
	}).Debug("Wrote candidate list")

	// A results file left over from an earlier run would otherwise be read
	// back as if this run had produced it.
	if err := os.Remove(m.ResultsFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		m.log.WithError(err).Warnf("Could not remove stale results file %s", m.ResultsFile)
	}

	m.preflight(resolverConfig)
	m.run(ctx, resolverConfig, input)

	f, err := os.Open(m.ResultsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrResultsUnavailable, err)
	}
	defer f.Close()

	res, err := ParseResults(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.ResultsFile, err)
	}
	metrics.GetMetrics().RecordResults(res.CountByType(), len(res.Resolved))
	return res, nil
}

// preflight warns about problems massdns is going to trip over. It never
// stops the run.
func (m *MassDNS) preflight(resolverConfig string) {
	if _, err := exec.LookPath(m.Binary); err != nil {
		m.log.WithError(err).Warnf("Resolver binary %q not found", m.Binary)
	}
	if err := checkReadable(resolverConfig); err != nil {
		m.log.WithError(err).Warn("Resolver configuration file check failed")
	}
}

// run blocks until massdns exits.
func (m *MassDNS) run(ctx context.Context, resolverConfig, input string) {
	args := m.Args(resolverConfig, input)
	cmd := exec.CommandContext(ctx, m.Binary, args...)
	stderr := &tailBuffer{limit: stderrTailSize}
	cmd.Stderr = stderr

	name := filepath.Base(m.Binary)
	m.log.WithField("args", strings.Join(args, " ")).Infof("Running %s", name)

	done := metrics.MeasureDuration(metrics.GetMetrics().ResolverDuration, prometheus.Labels{"resolver": name})
	err := cmd.Run()
	done()

	if err != nil {
		errorType := "start"
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			errorType = "exit"
		}
		metrics.GetMetrics().RecordResolverExit(name, errorType)
		m.log.WithError(err).Warnf("%s did not exit cleanly", name)
	}
	if tail := strings.TrimSpace(stderr.String()); tail != "" {
		m.log.WithField("stderr", tail).Debugf("%s stderr", name)
	}
}

// tailBuffer is an io.Writer that keeps only the last limit bytes.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
