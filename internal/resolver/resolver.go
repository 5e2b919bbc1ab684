/*
Package resolver hands candidate domains to an external mass DNS resolver and
reads back which of them answered.

The only implementation is MassDNS, which shells out to the massdns binary
using the two-file convention the tool has always used:

	<dir>/<keyword>-generated.txt   candidates, one per line (input)
	<dir>/<keyword>-results.txt     massdns "-o S" output (output)

Callers depend on the Resolver interface so tests can substitute a fake.
*/
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

	"github.com/miekg/dns"

	"github.com/bolbolabadi/Similar-Domain-Bruteforcer/internal/core"
)

// Resolver turns a candidate set into the subset that has DNS records.
// resolverConfig is passed through to the underlying tool untouched.
type Resolver interface {
	Resolve(ctx context.Context, candidates core.CandidateSet, resolverConfig string) (*Result, error)
}

// Record is one answer line from the resolver output.
type Record struct {
	Name string // queried name, one trailing dot removed
	Type uint16 // dns.TypeNone when the line carried no recognised type
	Data string // everything after the type, space-joined
}

// TypeString returns the mnemonic for r.Type, or "NONE" for unknown types.
func (r Record) TypeString() string {
	if r.Type != dns.TypeNone {
		if s, ok := dns.TypeToString[r.Type]; ok {
			return s
		}
	}
	return "NONE"
}

// Result is what a resolver run produced.
type Result struct {
	Resolved core.CandidateSet
	Records  []Record
}

// CountByType tallies Records per record type mnemonic.
func (r *Result) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, rec := range r.Records {
		counts[rec.TypeString()]++
	}
	return counts
}
