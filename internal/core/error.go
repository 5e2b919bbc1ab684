/*
Package core holds the domain logic of the bruteforcer: the candidate set and
its generator, the report writer, and the error values shared by the pipeline.
*/
package core

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

import "errors"

// customError is an error type that carries a fatal flag.
// A fatal error ends the run; a non-fatal one is logged and the pipeline
// continues with degraded input.
type customError struct {
	message string
	fatal   bool
}

// NewError creates a new customError with the given message and fatal status.
//
// Parameters:
//
//	msg: The textual description of the error.
//	fatal: Whether the condition terminates the run.
func NewError(msg string, fatal bool) error {
	return &customError{
		message: msg,
		fatal:   fatal,
	}
}

// Error implements the standard Go `error` interface.
func (e *customError) Error() string {
	return e.message
}

// IsFatal reports whether the error terminates the run.
func (e *customError) IsFatal() bool {
	return e.fatal
}

// IsFatal walks the wrap chain of err looking for a *customError and returns
// its fatal flag. Errors of any other type are fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ce *customError
	if errors.As(err, &ce) {
		return ce.IsFatal()
	}
	return true
}

// Errors shared by the loader, the resolver adapter and the pipeline.
var (
	// ErrInputMissing marks a word list path that does not exist. The loader
	// logs it and carries on with an empty list.
	ErrInputMissing = NewError("input file not found", false)
	// ErrResultsUnavailable is returned when the resolver output file cannot
	// be opened after the subprocess exits, usually because massdns failed to
	// start or crashed before writing anything.
	ErrResultsUnavailable = NewError("resolver results unavailable", true)
	// ErrMalformedLine is returned when a results line has no
	// whitespace-delimited token to read a domain from.
	ErrMalformedLine = NewError("malformed resolver output line", true)
	// ErrInvalidConfig is returned when required settings are missing.
	ErrInvalidConfig = NewError("invalid configuration", true)
)
