/*
Package core constants shared by the loader, the resolver adapter and the CLI.
The file-name suffixes form the contract with the external resolver run:
anything that reads an earlier run's output relies on them.
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

const (
	// --- Naming ---

	// ResultsSuffix is appended to the keyword to name the massdns output file.
	ResultsSuffix = "-results.txt"

	// GeneratedSuffix replaces ResultsSuffix to name the candidate list handed to massdns.
	GeneratedSuffix = "-generated.txt"

	// DefaultLogFile matches the log name the tool has always used.
	DefaultLogFile = "SimilarDomainBruteforcer.log"

	// --- Domain syntax ---

	// LabelSeparator joins labels; it is stripped once from the front of TLD
	// entries and once from the end of resolver answers.
	LabelSeparator = "."

	// --- Resolver ---

	// DefaultMassDNSBinary is looked up on PATH when no explicit binary is configured.
	DefaultMassDNSBinary = "massdns"

	// MassDNSShortOutput selects massdns' "simple text" output, where the
	// first token of every line is the queried name.
	MassDNSShortOutput = "S"

	// DefaultWriteBufferSize is the bufio size used for the candidate file.
	DefaultWriteBufferSize = 256 * 1024 // 256KB
)
