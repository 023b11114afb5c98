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
	"github.com/canidlogic/scent/scenterr"
)

// startAccumulator installs p as the evaluator's accumulator register,
// failing if one is already open (spec.md §4.5: only one accumulator
// may be open at a time).
func (e *Evaluator) startAccumulator(op string, p builder.Partial) error {
	if e.Accumulator != nil {
		return scenterr.New(scenterr.State, "%s: an accumulator of kind %s is already open", op, e.Accumulator.BuilderKind())
	}
	e.Accumulator = p
	return nil
}

// wantReam returns the open accumulator as a *PartialReam.
func (e *Evaluator) wantReam(op string) (*builder.PartialReam, error) {
	p, ok := e.Accumulator.(*builder.PartialReam)
	if !ok {
		return nil, scenterr.New(scenterr.State, "%s: requires an open ream accumulator", op)
	}
	return p, nil
}

func (e *Evaluator) wantStroke(op string) (*builder.PartialStroke, error) {
	p, ok := e.Accumulator.(*builder.PartialStroke)
	if !ok {
		return nil, scenterr.New(scenterr.State, "%s: requires an open stroke accumulator", op)
	}
	return p, nil
}

func (e *Evaluator) wantPath(op string) (*builder.PartialPath, error) {
	p, ok := e.Accumulator.(*builder.PartialPath)
	if !ok {
		return nil, scenterr.New(scenterr.State, "%s: requires an open path accumulator", op)
	}
	return p, nil
}

func (e *Evaluator) wantStyle(op string) (*builder.PartialStyle, error) {
	p, ok := e.Accumulator.(*builder.PartialStyle)
	if !ok {
		return nil, scenterr.New(scenterr.State, "%s: requires an open style accumulator", op)
	}
	return p, nil
}

func (e *Evaluator) wantColumn(op string) (*builder.PartialColumn, error) {
	p, ok := e.Accumulator.(*builder.PartialColumn)
	if !ok {
		return nil, scenterr.New(scenterr.State, "%s: requires an open column accumulator", op)
	}
	return p, nil
}
