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

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// ConversionError records a candidate that could not be mapped to its ASCII
// (punycode) form. The unconverted name stays in the set.
type ConversionError struct {
	Name string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("idna conversion of %q: %v", e.Name, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ToASCII maps every candidate through the IDNA lookup profile so that
// internationalised keywords or compound words reach massdns as xn-- labels.
// ASCII names skip IDNA entirely and are kept byte for byte. Names that fail
// conversion are copied over unchanged and reported.
func ToASCII(candidates CandidateSet) (CandidateSet, []*ConversionError) {
	out := make(CandidateSet, len(candidates))
	var failed []*ConversionError
	for _, name := range candidates.Sorted() {
		if isASCII(name) {
			out.Add(name)
			continue
		}
		ascii, err := idna.Lookup.ToASCII(name)
		if err != nil {
			failed = append(failed, &ConversionError{Name: name, Err: err})
			out.Add(name)
			continue
		}
		out.Add(ascii)
	}
	return out, failed
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
