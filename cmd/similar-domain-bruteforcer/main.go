/*
Package main is the entry point for the similar-domain-bruteforcer command.

The command builds look-alike domain candidates from a keyword, a TLD list and
a list of compound words, resolves them all with massdns and prints the ones
that answered, one per line and sorted, on standard output. Progress is
written to a log file.

	similar-domain-bruteforcer -d acme -t tlds.txt -c words.txt -r resolvers.txt

The Cobra library handles flag parsing. Prometheus metrics can be served while
the run executes (--metrics-addr) or written to a file once it finishes
(--metrics-file).
*/
package main

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
	"time"

	"github.com/spf13/cobra"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/app"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/config"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/logging"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/resolver"
)

func newRootCmd(stdout io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "similar-domain-bruteforcer",
		Short:         "Generate look-alike domains for a keyword and resolve them with massdns",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Keyword, "domain", "d", "", "Keyword to build candidates from (e.g. acme)")
	flags.StringVarP(&cfg.TLDFile, "tlds", "t", "", "File with one TLD per line; a leading dot is ignored")
	flags.StringVarP(&cfg.CompoundFile, "compounds", "c", "", "File with one compound word per line")
	flags.StringVarP(&cfg.ResolverFile, "resolver", "r", "", "Resolvers file passed to massdns -r")
	for _, name := range []string{"domain", "tlds", "compounds", "resolver"} {
		_ = cmd.MarkFlagRequired(name)
	}

	flags.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory for the generated and results files")
	flags.StringVar(&cfg.MassDNSPath, "massdns", cfg.MassDNSPath, "massdns binary (env "+config.EnvMassDNSBinary+")")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file, appended to (env "+config.EnvLogFile+")")
	flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Mirror log records to stderr")
	flags.BoolVar(&cfg.Punycode, "punycode", false, "Convert internationalized candidates to punycode before resolving")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run (e.g. :9090)")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file after the run")

	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closer, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Debug:   cfg.Debug,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.MetricsAddr != "" || cfg.MetricsFile != "" {
		metrics.EnableMetrics()
	}
	if err := metrics.StartMetricsServer(cfg.MetricsAddr); err != nil {
		logger.WithError(err).Warn("Failed to start metrics server")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metrics.ShutdownMetricsServer(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Metrics server shutdown failed")
		}
	}()

	massdns := resolver.NewMassDNS(cfg.MassDNSPath, cfg.ResultsFile(), logger)
	runErr := app.New(cfg, logger, massdns, stdout).Run(ctx)
	if runErr != nil {
		logger.WithError(runErr).Error("Run failed")
	}

	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.WithError(err).Warnf("Failed to write metrics to %s", cfg.MetricsFile)
	}
	return runErr
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
