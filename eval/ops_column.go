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

import (
	"github.com/canidlogic/scent/builder"
	"github.com/canidlogic/scent/value"
)

func (e *Evaluator) popColumn() (*value.Column, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	c, ok := v.(*value.Column)
	if !ok {
		return nil, scenterrTypeError("column", v)
	}
	return c, nil
}

// columnOps implements Dialect B's accumulator-based text column
// construction, including the nested line sub-machine.
func columnOps() map[string]opFunc {
	return map[string]opFunc{
		"start_column": func(e *Evaluator) error {
			return e.startAccumulator("start_column", builder.NewPartialColumn())
		},
		"start_line": func(e *Evaluator) error {
			p, err := e.wantColumn("start_line")
			if err != nil {
				return err
			}
			baseline, err := e.popPoint()
			if err != nil {
				return err
			}
			return p.StartLine(baseline)
		},
		"line_span": func(e *Evaluator) error {
			p, err := e.wantColumn("line_span")
			if err != nil {
				return err
			}
			style, err := e.popStyle()
			if err != nil {
				return err
			}
			text, err := e.popString()
			if err != nil {
				return err
			}
			return p.LineSpan(text, style)
		},
		"finish_line": func(e *Evaluator) error {
			p, err := e.wantColumn("finish_line")
			if err != nil {
				return err
			}
			return p.FinishLine()
		},
		"finish_column": func(e *Evaluator) error {
			p, err := e.wantColumn("finish_column")
			if err != nil {
				return err
			}
			col, err := builder.FinishColumn(p)
			if err != nil {
				return err
			}
			e.Accumulator = nil
			e.Push(col)
			return nil
		},
	}
}
