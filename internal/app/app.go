/*
Package app runs one similar-domain search from loaded word lists to the
printed report.

The pipeline is strictly linear: load the TLD and compound lists, generate the
candidate set, hand it to a resolver.Resolver, and report what resolved. It
runs on a single worker goroutine which Run joins before returning.
*/
package app

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
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/config"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/resolver"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/wordlist"
)

// App holds the collaborators of a run.
type App struct {
	cfg      config.Config
	log      logrus.FieldLogger
	resolver resolver.Resolver
	out      io.Writer
}

// New returns an App that prints resolved domains to out.
func New(cfg config.Config, log logrus.FieldLogger, r resolver.Resolver, out io.Writer) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		resolver: r,
		out:      out,
	}
}

// Run executes the pipeline on one worker and waits for it.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.search(gctx)
	})
	return g.Wait()
}

func (a *App) search(ctx context.Context) error {
	a.log.Info("Starting Similar Domain Bruteforcer")

	candidates, err := a.generate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.OutputDir, 0755); err != nil {
		metrics.GetMetrics().RecordDiskError("output", "mkdir")
		return fmt.Errorf("failed to create output directory %s: %w", a.cfg.OutputDir, err)
	}

	done := stage("resolve")
	result, err := a.resolver.Resolve(ctx, candidates, a.cfg.ResolverFile)
	done()
	if err != nil {
		return fmt.Errorf("resolving %d candidates: %w", len(candidates), err)
	}

	done = stage("report")
	err = core.Report(a.log, a.out, result.Resolved)
	done()
	if err != nil {
		return err
	}

	a.log.Infof("Found %d active domains", len(result.Resolved))
	a.log.Info("Process completed")
	return nil
}

// generate loads both lists and builds the candidate set.
func (a *App) generate() (core.CandidateSet, error) {
	done := stage("load")
	tlds, err := wordlist.Load(a.log, a.cfg.TLDFile, true)
	if err != nil {
		done()
		return nil, err
	}
	compounds, err := wordlist.Load(a.log, a.cfg.CompoundFile, false)
	done()
	if err != nil {
		return nil, err
	}

	done = stage("generate")
	defer done()

	candidates := core.GenerateCandidates(a.cfg.Keyword, tlds, compounds)
	if a.cfg.Punycode {
		var failures []*core.ConversionError
		candidates, failures = core.ToASCII(candidates)
		for _, f := range failures {
			a.log.WithError(f.Err).Warnf("Keeping %s unconverted", f.Name)
		}
		metrics.GetMetrics().RecordIDNAFailures(len(failures))
	}
	metrics.GetMetrics().RecordCandidates(len(candidates), core.MaxCandidates(len(tlds), len(compounds)))

	a.log.WithFields(logrus.Fields{
		"tlds":        len(tlds),
		"compounds":   len(compounds),
		"fingerprint": fmt.Sprintf("%016x", candidates.Fingerprint()),
	}).Infof("Generated %d potential domains", len(candidates))
	return candidates, nil
}

func stage(name string) func() {
	return metrics.MeasureDuration(metrics.GetMetrics().StageDuration, prometheus.Labels{"stage": name})
}
