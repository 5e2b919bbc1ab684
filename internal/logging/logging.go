/*
Package logging builds the process logger.

Every run appends timestamped records to one log file. Standard output is left
alone because it carries the resolved domains; with Verbose set the records are
mirrored to standard error as well.
*/
package logging

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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/metrics"
)

// Options controls where and how much the logger writes.
type Options struct {
	// File is opened in append mode and created if missing.
	File string
	// Debug lowers the level from info to debug.
	Debug bool
	// Verbose mirrors every record to Stderr.
	Verbose bool
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// New opens the log file and returns a logger writing to it. The returned
// closer releases the file and must be called once logging is finished.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		metrics.GetMetrics().RecordDiskError("log", "open")
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	var out io.Writer = f
	if opts.Verbose {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		out = io.MultiWriter(f, stderr)
	}
	logger.SetOutput(out)

	logger.SetLevel(logrus.InfoLevel)
	if opts.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger, f, nil
}
