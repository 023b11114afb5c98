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

// Package eval implements the HLDSL evaluator (spec.md §4.5): the
// dispatch loop over the entity stream, the operand stack with group
// and array framing, the namespace, the accumulator register, and the
// page register. It dispatches operation entities against the
// dialect-appropriate operation table (package builder supplies the
// object construction semantics; package lowering and a caller-supplied
// Lowerer supply page/drawing semantics).
package eval

import (
	"fmt"

	"github.com/canidlogic/scent/builder"
	"github.com/canidlogic/scent/entity"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// Lowerer is the narrow interface the evaluator drives for page and
// drawing operations (spec.md §4.7, component C7). It is implemented by
// package lowering; eval depends only on this interface so the compiler
// core stays decoupled from the LLIL/PDF-writer backend.
type Lowerer interface {
	BeginPage(ream *value.Ream) error
	EndPage() error
	PageOpen() bool
	DrawPath(path *value.Path, transform value.Transform, stroke *value.Stroke, fill *value.Color, clip *value.Clipping) error
	DrawText(col *value.Column, transform value.Transform, clip *value.Clipping) error
	DrawImage(img *value.Image, transform value.Transform, clip *value.Clipping) error
	DrawEmbed(src string, bx, by, bw, bh int, transform value.Transform, clip *value.Clipping) error
}

// ResourceLoader loads externally-validated font/image resources
// (component C9's font loader / image loader contracts).
type ResourceLoader interface {
	LoadFontFile(path, assignedName string) (*value.Font, error)
	LoadImage(path string, format value.ImageFormat) (*value.Image, error)
}

// Evaluator is the HLDSL interpreter instance. Exactly one Evaluator
// owns its stack, namespace, page register, and accumulator; it is
// never shared across goroutines (spec.md §5).
type Evaluator struct {
	Dialect entity.Dialect

	Stack     Stack
	arrays    ArrayFrames
	ns        *Namespace
	fonts     map[string]*value.Font
	images    map[string]*value.Image

	Accumulator builder.Partial

	pageOpen bool
	pageReam *value.Ream

	lower Lowerer
	res   ResourceLoader

	ops map[string]opFunc
}

type opFunc func(*Evaluator) error

// New creates an Evaluator for the given dialect, backed by lower for
// page/drawing operations and res for font/image resource loading.
func New(dialect entity.Dialect, lower Lowerer, res ResourceLoader) *Evaluator {
	e := &Evaluator{
		Dialect: dialect,
		ns:      NewNamespace(),
		fonts:   make(map[string]*value.Font),
		images:  make(map[string]*value.Image),
		lower:   lower,
		res:     res,
	}
	e.ops = e.buildOpTable()
	return e
}

// Push is a convenience wrapper for use by op implementations.
func (e *Evaluator) Push(v value.Value) { e.Stack.Push(v) }

// buildOpTable assembles the dialect-appropriate operation dispatch
// table: common ops plus whichever of the Dialect A / Dialect B
// families apply (spec.md §9: "flag operations from the other dialect
// as StateError").
func (e *Evaluator) buildOpTable() map[string]opFunc {
	table := map[string]opFunc{}
	merge := func(m map[string]opFunc) {
		for k, v := range m {
			table[k] = v
		}
	}
	merge(basicOps())
	merge(colorOps())
	merge(fontOps())
	merge(imageOps())
	merge(transformOps())
	merge(clipOps())
	merge(pageOps())
	merge(drawOps())
	merge(strokeCommonOps())
	merge(pathOps())
	merge(styleOps())
	merge(columnOps())

	switch e.Dialect {
	case entity.DialectA:
		merge(reamDialectAOps())
		merge(strokeDialectAOps())
		merge(fontSyntheticOps())
	case entity.DialectB:
		merge(reamDialectBOps())
		merge(strokeDialectBOps())
		merge(sepConcatOps())
		merge(drawEmbedOps())
	}
	return table
}

// Eval consumes entities from l until EOF, dispatching each to the
// evaluator. It does not itself check end-of-program invariants; call
// Finish after Eval returns nil error.
func (e *Evaluator) Eval(l *entity.Lexer) error {
	for {
		ent, err := l.Next()
		if err != nil {
			return scenterr.Wrap(scenterr.Syntax, err, "tokenising failed")
		}
		if ent.Kind == entity.KindEOF {
			return nil
		}
		if err := e.dispatch(ent); err != nil {
			return err
		}
	}
}

func (e *Evaluator) dispatch(ent entity.Entity) error {
	switch ent.Kind {
	case entity.KindString:
		if err := validateContentString(ent.Text); err != nil {
			return err
		}
		e.Push(value.String(ent.Text))
		return nil
	case entity.KindAtomLit:
		e.Push(value.Atom(ent.Text))
		return nil
	case entity.KindNumeric:
		if ent.Number < -(1<<31) || ent.Number > (1<<31-1) {
			return scenterr.New(scenterr.Domain, "numeric literal %d does not fit in a 32-bit Integer", ent.Number)
		}
		e.Push(value.Integer(ent.Number))
		return nil
	case entity.KindVarDecl:
		return e.opDeclare(ent.Text, false)
	case entity.KindConstDecl:
		return e.opDeclare(ent.Text, true)
	case entity.KindAssign:
		return e.opAssign(ent.Text)
	case entity.KindGet:
		return e.opGet(ent.Text)
	case entity.KindBeginGroup:
		e.Stack.BeginGroup()
		return nil
	case entity.KindEndGroup:
		return e.Stack.EndGroup()
	case entity.KindBeginArray:
		e.arrays.Begin(e.Stack.Len())
		return nil
	case entity.KindEndArray:
		n, err := e.arrays.End(e.Stack.Len())
		if err != nil {
			return err
		}
		e.Push(value.Integer(n))
		return nil
	case entity.KindOperation:
		fn, ok := e.ops[ent.Text]
		if !ok {
			return scenterr.New(scenterr.State, "unknown operation %q (not defined in this dialect)", ent.Text)
		}
		if err := fn(e); err != nil {
			return fmt.Errorf("op %q: %w", ent.Text, err)
		}
		return nil
	default:
		return scenterr.New(scenterr.Syntax, "unexpected entity in program body")
	}
}

func (e *Evaluator) opDeclare(name string, constant bool) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	return e.ns.Declare(name, v, constant)
}

func (e *Evaluator) opAssign(name string) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	return e.ns.Assign(name, v)
}

func (e *Evaluator) opGet(name string) error {
	v, err := e.ns.Get(name)
	if err != nil {
		return err
	}
	e.Push(v)
	return nil
}

func validateContentString(s string) error {
	if err := contentStringValidator(s); err != nil {
		return scenterr.Wrap(scenterr.Domain, err, "invalid content string")
	}
	return nil
}

// Finish asserts the end-of-program invariants from spec.md §4.5: the
// stack must be empty, the page register must be Null, and the
// accumulator must be Null.
func (e *Evaluator) Finish() error {
	if e.Stack.Len() != 0 {
		return scenterr.New(scenterr.State, "program ended with %d value(s) left on the stack", e.Stack.Len())
	}
	if e.pageOpen {
		return scenterr.New(scenterr.State, "program ended with a page still open")
	}
	if e.Accumulator != nil {
		return scenterr.New(scenterr.State, "program ended with an open %s accumulator", e.Accumulator.BuilderKind())
	}
	return nil
}
