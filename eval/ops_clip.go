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

func (e *Evaluator) popClipShape() (value.ClipShape, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case *value.Path:
		return s, nil
	case *value.Column:
		return s, nil
	default:
		return nil, scenterrTypeError("path or column", v)
	}
}

// clipOps implements the single "clip" op: it consumes a preceding
// "[ ... ]" array frame holding 2*n entries (shape, transform pairs,
// transform on top) and builds a Clipping.
func clipOps() map[string]opFunc {
	return map[string]opFunc{
		"clip": func(e *Evaluator) error {
			n, err := e.popInt()
			if err != nil {
				return err
			}
			if n%2 != 0 {
				return scenterrTypeError("even-length (shape, transform) array", value.Integer(n))
			}
			pairs := n / 2
			components := make([]value.ClipComponent, pairs)
			for i := pairs - 1; i >= 0; i-- {
				t, err := e.popTransform()
				if err != nil {
					return err
				}
				shape, err := e.popClipShape()
				if err != nil {
					return err
				}
				components[i] = value.ClipComponent{Shape: shape, Transform: t}
			}
			c, err := builder.BuildClipping(components)
			if err != nil {
				return err
			}
			e.Push(c)
			return nil
		},
	}
}

func (e *Evaluator) popClippingOrNull() (*value.Clipping, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if _, ok := v.(value.Null); ok {
		return nil, nil
	}
	c, ok := v.(*value.Clipping)
	if !ok {
		return nil, scenterrTypeError("clipping or null", v)
	}
	return c, nil
}
