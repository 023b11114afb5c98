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
	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/internal/validate"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

func contentStringValidator(s string) error {
	return validate.ContentString(s)
}

// popFixed pops a value and coerces it to fixed.Value, promoting an
// in-range Integer per spec.md §4.5.
func (e *Evaluator) popFixed() (fixed.Value, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return 0, err
	}
	f, ok := value.AsFixed(v)
	if !ok {
		return 0, scenterr.New(scenterr.Type, "expected a fixed-point (or promotable integer) value, got %s", v.Kind())
	}
	return f, nil
}

// popInt pops a value that must be exactly an Integer (no fixed
// demotion).
func (e *Evaluator) popInt() (int, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Integer)
	if !ok {
		return 0, scenterr.New(scenterr.Type, "expected an integer, got %s", v.Kind())
	}
	return int(n), nil
}

// popAtom pops a value that must be exactly an Atom.
func (e *Evaluator) popAtom() (value.Atom, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return "", err
	}
	a, ok := v.(value.Atom)
	if !ok {
		return "", scenterr.New(scenterr.Type, "expected an atom, got %s", v.Kind())
	}
	return a, nil
}

// popString pops a value that must be exactly a String.
func (e *Evaluator) popString() (string, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return "", err
	}
	s, ok := v.(value.String)
	if !ok {
		return "", scenterr.New(scenterr.Type, "expected a string, got %s", v.Kind())
	}
	return string(s), nil
}

// popDict pops a value that must be exactly a Dict.
func (e *Evaluator) popDict() (value.Dict, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	d, ok := v.(value.Dict)
	if !ok {
		return nil, scenterr.New(scenterr.Type, "expected a dictionary, got %s", v.Kind())
	}
	return d, nil
}

// popPoint pops an (x, y) pair as two fixed-points, y on top of x (the
// second-popped value is x, consistent with the PostScript-style
// "x y" operand order used throughout the operation inventory).
func (e *Evaluator) popPoint() (value.Point, error) {
	y, err := e.popFixed()
	if err != nil {
		return value.Point{}, err
	}
	x, err := e.popFixed()
	if err != nil {
		return value.Point{}, err
	}
	return value.Point{X: x, Y: y}, nil
}

// scenterrTypeError is a shorthand for the common "wanted kind, got
// this value's kind" TypeError.
func scenterrTypeError(want string, got value.Value) error {
	return scenterr.New(scenterr.Type, "expected a %s, got %s", want, got.Kind())
}

// scenterrDomainError is a shorthand for "this field, this raw text is
// not a recognised member of its enumeration" DomainError.
func scenterrDomainError(field, got string) error {
	return scenterr.New(scenterr.Domain, "unrecognised %s %q", field, got)
}

// popFixedArray pops an array-count Integer (as pushed by a "[ ... ]"
// array entity) followed by that many fixed-point values, returned in
// original push order.
func (e *Evaluator) popFixedArray() ([]fixed.Value, error) {
	n, err := e.popInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, scenterr.New(scenterr.Type, "array count is negative")
	}
	out := make([]fixed.Value, n)
	for i := n - 1; i >= 0; i-- {
		f, err := e.popFixed()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

