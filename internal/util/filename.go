package util

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

import "strings"

// maxStemLength keeps "<stem>-generated.txt" well under common NAME_MAX limits.
const maxStemLength = 200

// SanitizeFilename turns a keyword into a file stem that is safe to join onto
// an output directory. Path separators and shell-hostile characters become
// underscores; everything else, including dots, is left alone so that plain
// keywords map to themselves.
func SanitizeFilename(input string) string {
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(input))
	if replaced == "" || replaced == "." || replaced == ".." {
		return strings.Repeat("_", max(len(replaced), 1))
	}
	if len(replaced) > maxStemLength {
		return replaced[:maxStemLength]
	}
	return replaced
}
