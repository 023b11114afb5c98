// scent - a compiler from the HLDSL/LLIL document languages to PDF
// Copyright (C) 2024 scent contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package eval

import "github.com/canidlogic/scent/scenterr"

// pageOps implements begin_page/end_page, driving the Lowerer (C7) and
// tracking the page register so Finish can assert no page is left open
// (spec.md §4.5/§4.7).
func pageOps() map[string]opFunc {
	return map[string]opFunc{
		"begin_page": func(e *Evaluator) error {
			if e.pageOpen {
				return scenterr.New(scenterr.State, "begin_page: a page is already open")
			}
			ream, err := e.popReam()
			if err != nil {
				return err
			}
			if err := e.lower.BeginPage(ream); err != nil {
				return err
			}
			e.pageOpen = true
			e.pageReam = ream
			return nil
		},
		"end_page": func(e *Evaluator) error {
			if !e.pageOpen {
				return scenterr.New(scenterr.State, "end_page: no page is open")
			}
			if err := e.lower.EndPage(); err != nil {
				return err
			}
			e.pageOpen = false
			e.pageReam = nil
			return nil
		},
	}
}
