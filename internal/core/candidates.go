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
	"sort"

	"github.com/zeebo/xxh3"
)

// CandidateSet is a set of fully-qualified domain names. It is used both for
// the generated candidates and for the subset massdns reports as resolved.
type CandidateSet map[string]struct{}

// NewCandidateSet returns a set holding the given names.
func NewCandidateSet(names ...string) CandidateSet {
	s := make(CandidateSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s CandidateSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is a member of the set.
func (s CandidateSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending byte order.
func (s CandidateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsSubsetOf reports whether every member of s is also in other.
func (s CandidateSet) IsSubsetOf(other CandidateSet) bool {
	for name := range s {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// Fingerprint is an order-independent, NON-CRYPTOGRAPHIC digest of the set.
// Member hashes are summed so that map iteration order does not matter; two
// runs with the same inputs log the same value.
func (s CandidateSet) Fingerprint() uint64 {
	var sum uint64
	for name := range s {
		sum += xxh3.HashString(name)
	}
	return sum
}

// MaxCandidates is the size of the candidate set before any collisions are
// collapsed: one bare name per TLD plus two compounds per (TLD, word) pair.
func MaxCandidates(numTLDs, numCompounds int) int {
	return numTLDs + 2*numTLDs*numCompounds
}

// GenerateCandidates builds every permutation of keyword with the given TLDs
// and compound words:
//
//	keyword.tld
//	keyword+word.tld
//	word+keyword.tld
//
// Words are joined to the keyword with no separator. Duplicate inputs and
// colliding outputs (an empty word, or a word equal to the keyword) collapse
// through the set.
func GenerateCandidates(keyword string, tlds, compounds []string) CandidateSet {
	candidates := make(CandidateSet, MaxCandidates(len(tlds), len(compounds)))
	for _, tld := range tlds {
		suffix := LabelSeparator + tld
		candidates.Add(keyword + suffix)
		for _, word := range compounds {
			candidates.Add(keyword + word + suffix)
			candidates.Add(word + keyword + suffix)
		}
	}
	return candidates
}
