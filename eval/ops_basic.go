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
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// basicOps implements pop, dup, null, dict: the stack-manipulation
// primitives common to both dialects.
func basicOps() map[string]opFunc {
	return map[string]opFunc{
		"pop": func(e *Evaluator) error {
			_, err := e.Stack.Pop()
			return err
		},
		"dup": func(e *Evaluator) error {
			v, err := e.Stack.Top()
			if err != nil {
				return err
			}
			e.Push(v)
			return nil
		},
		"null": func(e *Evaluator) error {
			e.Push(value.Null{})
			return nil
		},
		"dict": func(e *Evaluator) error {
			return e.buildDict()
		},
	}
}

// buildDict pops an array count (pushed by a preceding "[ ... ]"), then
// that many values in atom-key/value pairs, and pushes the resulting
// Dict.
func (e *Evaluator) buildDict() error {
	n, err := e.popInt()
	if err != nil {
		return err
	}
	if n%2 != 0 {
		return scenterr.New(scenterr.Type, "dict requires an even number of array entries, got %d", n)
	}
	vals := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := e.Stack.Pop()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	d := value.Dict{}
	for i := 0; i < n; i += 2 {
		key, ok := vals[i].(value.Atom)
		if !ok {
			return scenterr.New(scenterr.Type, "dict key must be an atom, got %s", vals[i].Kind())
		}
		if _, dup := d[key]; dup {
			return scenterr.New(scenterr.Domain, "duplicate dict key %q", key)
		}
		d[key] = vals[i+1]
	}
	e.Push(d)
	return nil
}

// sepConcatOps implements Dialect B's sep/concat string-building ops.
// sep is a no-op marker; concat joins the two strings below it.
func sepConcatOps() map[string]opFunc {
	return map[string]opFunc{
		"sep": func(e *Evaluator) error {
			return nil
		},
		"concat": func(e *Evaluator) error {
			b, err := e.popString()
			if err != nil {
				return err
			}
			a, err := e.popString()
			if err != nil {
				return err
			}
			e.Push(value.String(a + b))
			return nil
		},
	}
}
