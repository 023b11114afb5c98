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

import "github.com/canidlogic/scent/builder"

// colorOps implements gray, cmyk, fgray, fcmyk (spec.md §4: the "f"
// prefix takes fixed-point 0-1 channel operands rather than 0-255
// integers; both collapse to the same CMYK Color value).
func colorOps() map[string]opFunc {
	return map[string]opFunc{
		"cmyk": func(e *Evaluator) error {
			k, err := e.popInt()
			if err != nil {
				return err
			}
			y, err := e.popInt()
			if err != nil {
				return err
			}
			m, err := e.popInt()
			if err != nil {
				return err
			}
			c, err := e.popInt()
			if err != nil {
				return err
			}
			col, err := builder.BuildColorCMYK(c, m, y, k)
			if err != nil {
				return err
			}
			e.Push(col)
			return nil
		},
		"gray": func(e *Evaluator) error {
			g, err := e.popInt()
			if err != nil {
				return err
			}
			col, err := builder.BuildColorGray(g)
			if err != nil {
				return err
			}
			e.Push(col)
			return nil
		},
		"fcmyk": func(e *Evaluator) error {
			k, err := e.popUnitChannel()
			if err != nil {
				return err
			}
			y, err := e.popUnitChannel()
			if err != nil {
				return err
			}
			m, err := e.popUnitChannel()
			if err != nil {
				return err
			}
			c, err := e.popUnitChannel()
			if err != nil {
				return err
			}
			col, err := builder.BuildColorCMYK(c, m, y, k)
			if err != nil {
				return err
			}
			e.Push(col)
			return nil
		},
		"fgray": func(e *Evaluator) error {
			g, err := e.popUnitChannel()
			if err != nil {
				return err
			}
			col, err := builder.BuildColorGray(g)
			if err != nil {
				return err
			}
			e.Push(col)
			return nil
		},
	}
}

// popUnitChannel pops a fixed-point value in [0,1] and scales it to a
// 0-255 integer channel, rounding to nearest.
func (e *Evaluator) popUnitChannel() (int, error) {
	f, err := e.popFixed()
	if err != nil {
		return 0, err
	}
	n := int(f.Float()*255 + 0.5)
	return n, nil
}
