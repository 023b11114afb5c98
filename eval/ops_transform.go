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

func (e *Evaluator) popTransform() (value.Transform, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return value.Transform{}, err
	}
	t, ok := v.(value.Transform)
	if !ok {
		return value.Transform{}, scenterrTypeError("transform", v)
	}
	return t, nil
}

// transformOps implements tx_identity/tx_translate/tx_rotate/tx_scale,
// built straight from the component, and tx_seq, which concatenates a
// counted run of previously built transforms (spec.md §3).
func transformOps() map[string]opFunc {
	return map[string]opFunc{
		"tx_identity": func(e *Evaluator) error {
			e.Push(value.Identity())
			return nil
		},
		"tx_translate": func(e *Evaluator) error {
			ty, err := e.popFixed()
			if err != nil {
				return err
			}
			tx, err := e.popFixed()
			if err != nil {
				return err
			}
			t, err := builder.TranslateRotateScaleSkew(&tx, &ty, nil, nil, nil, nil)
			if err != nil {
				return err
			}
			e.Push(t)
			return nil
		},
		"tx_rotate": func(e *Evaluator) error {
			angle, err := e.popFixed()
			if err != nil {
				return err
			}
			t, err := builder.TranslateRotateScaleSkew(nil, nil, &angle, nil, nil, nil)
			if err != nil {
				return err
			}
			e.Push(t)
			return nil
		},
		"tx_scale": func(e *Evaluator) error {
			sy, err := e.popFixed()
			if err != nil {
				return err
			}
			sx, err := e.popFixed()
			if err != nil {
				return err
			}
			t, err := builder.TranslateRotateScaleSkew(nil, nil, nil, &sx, &sy, nil)
			if err != nil {
				return err
			}
			e.Push(t)
			return nil
		},
		"tx_seq": func(e *Evaluator) error {
			n, err := e.popInt()
			if err != nil {
				return err
			}
			ts := make([]value.Transform, n)
			for i := n - 1; i >= 0; i-- {
				t, err := e.popTransform()
				if err != nil {
					return err
				}
				ts[i] = t
			}
			e.Push(builder.Concat(ts...))
			return nil
		},
	}
}
