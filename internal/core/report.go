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
	"io"

	"github.com/sirupsen/logrus"
)

// Report emits the resolved domains in ascending order. Each domain gets an
// info record in the process log and a line of its own on w.
func Report(log logrus.FieldLogger, w io.Writer, resolved CandidateSet) error {
	for _, domain := range resolved.Sorted() {
		log.Infof("Active domain: %s", domain)
		if _, err := fmt.Fprintln(w, domain); err != nil {
			return fmt.Errorf("writing %s to report output: %w", domain, err)
		}
	}
	return nil
}
