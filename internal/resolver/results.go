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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/miekg/dns"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
)

// maxLineSize bounds a single results line; massdns never comes close.
const maxLineSize = 64 * 1024

// ParseLine decodes one line of massdns short output, e.g.
//
//	acme.com. A 192.0.2.10
//	www.acme.com. CNAME acme.com.
//
// Only the first token is required. A line with no token at all is
// core.ErrMalformedLine.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, core.ErrMalformedLine
	}

	rec := Record{
		Name: strings.TrimSuffix(fields[0], core.LabelSeparator),
		Type: dns.TypeNone,
	}
	if len(fields) > 1 {
		if t, ok := dns.StringToType[strings.ToUpper(fields[1])]; ok {
			rec.Type = t
		}
		rec.Data = strings.Join(fields[2:], " ")
	}
	return rec, nil
}

// ParseResults reads a whole results stream. Every line contributes its name
// to the resolved set; the first malformed line aborts the parse.
func ParseResults(r io.Reader) (*Result, error) {
	res := &Result{Resolved: core.NewCandidateSet()}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rec, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res.Resolved.Add(rec.Name)
		res.Records = append(res.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return res, nil
}
