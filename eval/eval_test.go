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
	"testing"

	"github.com/canidlogic/scent/builder"
	"github.com/canidlogic/scent/entity"
	"github.com/canidlogic/scent/value"
	"github.com/stretchr/testify/require"
)

// fakeLowerer is a no-op double for Lowerer, recording nothing beyond
// what individual tests need.
type fakeLowerer struct{}

func (fakeLowerer) BeginPage(ream *value.Ream) error { return nil }
func (fakeLowerer) EndPage() error                   { return nil }
func (fakeLowerer) PageOpen() bool                   { return false }
func (fakeLowerer) DrawPath(path *value.Path, transform value.Transform, stroke *value.Stroke, fill *value.Color, clip *value.Clipping) error {
	return nil
}
func (fakeLowerer) DrawText(col *value.Column, transform value.Transform, clip *value.Clipping) error {
	return nil
}
func (fakeLowerer) DrawImage(img *value.Image, transform value.Transform, clip *value.Clipping) error {
	return nil
}
func (fakeLowerer) DrawEmbed(src string, bx, by, bw, bh int, transform value.Transform, clip *value.Clipping) error {
	return nil
}

type fakeResourceLoader struct{}

func (fakeResourceLoader) LoadFontFile(path, assignedName string) (*value.Font, error) {
	return &value.Font{Variant: value.FontFile, Path: path, AssignedName: assignedName}, nil
}
func (fakeResourceLoader) LoadImage(path string, format value.ImageFormat) (*value.Image, error) {
	return &value.Image{Format: format}, nil
}

func newTestEvaluator(t *testing.T, src string) (*Evaluator, *entity.Lexer) {
	t.Helper()
	l := entity.NewLexer(src)
	header, err := entity.ReadHeader(l)
	require.NoError(t, err)
	require.Equal(t, entity.DialectA, header.Dialect)
	return New(header.Dialect, fakeLowerer{}, fakeResourceLoader{}), l
}

func TestEvalAtomDeclareGetPop(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} "foo" ::x $x pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalRedeclareFails(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} "a" ::x "b" ::x pop pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalAssignToConstantFails(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} "a" ::x "b" =x pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalAssignToUndeclaredFails(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} "b" =x pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalVariableReassignable(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} "a" :x "b" =x $x pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalGroupRequiresExactlyOneValue(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} ( "x" "y" ) pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalGroupLeavesOneValue(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} ( "x" ) pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalArrayBuildsDict(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} [ "a" 1 "b" 2 ] dict pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalDictRejectsOddEntryCount(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} [ "a" 1 "b" ] dict pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalDictRejectsNonAtomKey(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} [ 1 2 ] dict pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalDupPushesCopy(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} 1 dup pop pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalNullPushesNull(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} null pop ##`)
	require.NoError(t, e.Eval(l))
	require.NoError(t, e.Finish())
}

func TestEvalUnknownOperationFails(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} bogusop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestEvalNumericOutOfRangeFails(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} 99999999999 pop ##`)
	err := e.Eval(l)
	require.Error(t, err)
}

func TestFinishFailsOnNonEmptyStack(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} 1 2 ##`)
	require.NoError(t, e.Eval(l))
	err := e.Finish()
	require.Error(t, err)
}

func TestFinishFailsOnOpenPage(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} ##`)
	require.NoError(t, e.Eval(l))
	e.pageOpen = true
	err := e.Finish()
	require.Error(t, err)
}

func TestFinishFailsOnOpenAccumulator(t *testing.T) {
	e, l := newTestEvaluator(t, `%{ scent 1.0 %} ##`)
	require.NoError(t, e.Eval(l))
	e.Accumulator = &fakeAccumulator{}
	err := e.Finish()
	require.Error(t, err)
}

type fakeAccumulator struct{}

func (fakeAccumulator) BuilderKind() builder.Kind { return builder.KindPath }
