package config

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
	"os"
	"strings"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/resolver"
)

// Environment variables consulted for defaults.
const (
	EnvMassDNSBinary = "SDB_MASSDNS_BIN"
	EnvLogFile       = "SDB_LOG_FILE"
)

// Config holds everything one run needs.
type Config struct {
	Keyword      string
	TLDFile      string
	CompoundFile string
	ResolverFile string

	OutputDir   string
	MassDNSPath string
	LogFile     string

	MetricsAddr string
	MetricsFile string

	Punycode bool
	Debug    bool
	Verbose  bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Default returns a Config with the optional settings filled in from the
// environment or built-in defaults. The four inputs are left empty.
func Default() Config {
	return Config{
		OutputDir:   ".",
		MassDNSPath: getenv(EnvMassDNSBinary, core.DefaultMassDNSBinary),
		LogFile:     getenv(EnvLogFile, core.DefaultLogFile),
	}
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	required := []struct {
		flag  string
		value string
	}{
		{"domain", c.Keyword},
		{"tlds", c.TLDFile},
		{"compounds", c.CompoundFile},
		{"resolver", c.ResolverFile},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: --%s must not be empty", core.ErrInvalidConfig, r.flag)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory must not be empty", core.ErrInvalidConfig)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: log file must not be empty", core.ErrInvalidConfig)
	}
	return nil
}

// ResultsFile is the massdns output path for this run.
func (c Config) ResultsFile() string {
	return resolver.ResultsPath(c.OutputDir, c.Keyword)
}

// GeneratedFile is the candidate list path handed to massdns.
func (c Config) GeneratedFile() string {
	return resolver.GeneratedPath(c.ResultsFile())
}
