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

package llil

import (
	"testing"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/stretchr/testify/require"
)

// recordingAssembler implements Assembler and records the op name of
// every call it receives, for asserting dispatch without caring about
// pdfwriter's own behaviour.
type recordingAssembler struct {
	calls []string
}

func (r *recordingAssembler) record(name string) { r.calls = append(r.calls, name) }

func (r *recordingAssembler) FontStandard(name string) error       { r.record("FontStandard"); return nil }
func (r *recordingAssembler) FontFile(name, path string) error     { r.record("FontFile"); return nil }
func (r *recordingAssembler) ImageJPEG(name, path string) error    { r.record("ImageJPEG"); return nil }
func (r *recordingAssembler) ImagePNG(name, path string) error     { r.record("ImagePNG"); return nil }
func (r *recordingAssembler) BeginPage() error                     { r.record("BeginPage"); return nil }
func (r *recordingAssembler) EndPage() error                       { r.record("EndPage"); return nil }
func (r *recordingAssembler) Dim(w, h fixed.Value) error           { r.record("Dim"); return nil }
func (r *recordingAssembler) BoundaryBox(k string, x0, y0, x1, y1 fixed.Value) error {
	r.record("BoundaryBox")
	return nil
}
func (r *recordingAssembler) ViewRotate(d int) error { r.record("ViewRotate"); return nil }
func (r *recordingAssembler) Body() error            { r.record("Body"); return nil }
func (r *recordingAssembler) Save() error            { r.record("Save"); return nil }
func (r *recordingAssembler) Restore() error         { r.record("Restore"); return nil }
func (r *recordingAssembler) Matrix(a, b, c, d, e, f fixed.Value) error {
	r.record("Matrix")
	return nil
}
func (r *recordingAssembler) Image(name string) error    { r.record("Image"); return nil }
func (r *recordingAssembler) LineWidth(v fixed.Value) error { r.record("LineWidth"); return nil }
func (r *recordingAssembler) LineCap(k string) error     { r.record("LineCap"); return nil }
func (r *recordingAssembler) LineJoin(k string, limit fixed.Value, have bool) error {
	r.record("LineJoin")
	return nil
}
func (r *recordingAssembler) LineDash(phase fixed.Value, pairs []fixed.Value) error {
	r.record("LineDash")
	return nil
}
func (r *recordingAssembler) LineUndash() error         { r.record("LineUndash"); return nil }
func (r *recordingAssembler) StrokeColor(c Color) error { r.record("StrokeColor"); return nil }
func (r *recordingAssembler) FillColor(c Color) error   { r.record("FillColor"); return nil }
func (r *recordingAssembler) BeginPath(stroke, fill, clip bool) error {
	r.record("BeginPath")
	return nil
}
func (r *recordingAssembler) Move(x, y fixed.Value) error { r.record("Move"); return nil }
func (r *recordingAssembler) Line(x, y fixed.Value) error { r.record("Line"); return nil }
func (r *recordingAssembler) Curve(x1, y1, x2, y2, x3, y3 fixed.Value) error {
	r.record("Curve")
	return nil
}
func (r *recordingAssembler) Close() error { r.record("Close"); return nil }
func (r *recordingAssembler) Rect(x, y, w, h fixed.Value) error {
	r.record("Rect")
	return nil
}
func (r *recordingAssembler) EndPath() error  { r.record("EndPath"); return nil }
func (r *recordingAssembler) BeginText() error { r.record("BeginText"); return nil }
func (r *recordingAssembler) CSpace(v fixed.Value) error { r.record("CSpace"); return nil }
func (r *recordingAssembler) WSpace(v fixed.Value) error { r.record("WSpace"); return nil }
func (r *recordingAssembler) HScale(v fixed.Value) error { r.record("HScale"); return nil }
func (r *recordingAssembler) Lead(v fixed.Value) error   { r.record("Lead"); return nil }
func (r *recordingAssembler) Font(name string, size fixed.Value) error {
	r.record("Font")
	return nil
}
func (r *recordingAssembler) TextRender(mode int) error { r.record("TextRender"); return nil }
func (r *recordingAssembler) Rise(v fixed.Value) error  { r.record("Rise"); return nil }
func (r *recordingAssembler) Advance(dx, dy fixed.Value, haveOffset bool) error {
	r.record("Advance")
	return nil
}
func (r *recordingAssembler) Write(s string) error { r.record("Write"); return nil }
func (r *recordingAssembler) EndText() error       { r.record("EndText"); return nil }

func num(t *testing.T, s string) Arg {
	t.Helper()
	v, err := fixed.Parse(s)
	require.NoError(t, err)
	return Number(v)
}

// minimalPage returns the instruction sequence for one empty page with
// no path or text content, leaving the processor back at top level.
func minimalPage(t *testing.T) []Instruction {
	return []Instruction{
		{Op: "begin_page"},
		{Op: "dim", Args: []Arg{num(t, "595"), num(t, "842")}},
		{Op: "body"},
		{Op: "end_page"},
	}
}

func TestProcessorMinimalDocument(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.False(t, p.CanStop())
	for _, ins := range minimalPage(t) {
		require.NoError(t, p.Exec(ins))
	}
	require.True(t, p.CanStop())
	require.Equal(t, []string{"BeginPage", "Dim", "Body", "EndPage"}, asm.calls)
}

func TestProcessorBeginPageTwiceFails(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	err := p.Exec(Instruction{Op: "begin_page"})
	require.Error(t, err)
}

func TestProcessorBodyRequiresDim(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	err := p.Exec(Instruction{Op: "body"})
	require.Error(t, err)
}

func TestProcessorBoxExceedingPageDimsFails(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	require.NoError(t, p.Exec(Instruction{Op: "dim", Args: []Arg{num(t, "100"), num(t, "100")}}))
	require.NoError(t, p.Exec(Instruction{Op: "art_box", Args: []Arg{num(t, "0"), num(t, "0"), num(t, "200"), num(t, "100")}}))
	err := p.Exec(Instruction{Op: "body"})
	require.Error(t, err)
}

func TestProcessorBoxExactlyAtPageDimsFails(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	require.NoError(t, p.Exec(Instruction{Op: "dim", Args: []Arg{num(t, "100"), num(t, "100")}}))
	require.NoError(t, p.Exec(Instruction{Op: "art_box", Args: []Arg{num(t, "0"), num(t, "0"), num(t, "100"), num(t, "50")}}))
	err := p.Exec(Instruction{Op: "body"})
	require.Error(t, err)
}

func TestProcessorBoxStrictlyInsidePageDimsSucceeds(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	require.NoError(t, p.Exec(Instruction{Op: "dim", Args: []Arg{num(t, "100"), num(t, "100")}}))
	require.NoError(t, p.Exec(Instruction{Op: "art_box", Args: []Arg{num(t, "0"), num(t, "0"), num(t, "99"), num(t, "99")}}))
	require.NoError(t, p.Exec(Instruction{Op: "body"}))
}

func TestProcessorLineJoinMiterRequiresLimit(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	err := p.Exec(Instruction{Op: "line_join", Args: []Arg{Name("miter")}})
	require.Error(t, err)

	require.NoError(t, p.Exec(Instruction{Op: "line_join", Args: []Arg{Name("miter"), num(t, "10")}}))

	err = p.Exec(Instruction{Op: "line_join", Args: []Arg{Name("round"), num(t, "10")}})
	require.Error(t, err)
	require.NoError(t, p.Exec(Instruction{Op: "line_join", Args: []Arg{Name("round")}}))
}

func TestProcessorLineDashRequiresOddCount(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	err := p.Exec(Instruction{Op: "line_dash", Args: []Arg{num(t, "0"), num(t, "2")}})
	require.Error(t, err)

	require.NoError(t, p.Exec(Instruction{Op: "line_dash", Args: []Arg{num(t, "0"), num(t, "2"), num(t, "2")}}))
}

func TestProcessorBeginPathRequiresAFlag(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	err := p.Exec(Instruction{Op: "begin_path", Args: []Arg{Name("false"), Name("false"), Name("false")}})
	require.Error(t, err)

	require.NoError(t, p.Exec(Instruction{Op: "begin_path", Args: []Arg{Name("true"), Name("false"), Name("false")}}))
	require.NoError(t, p.Exec(Instruction{Op: "move", Args: []Arg{num(t, "0"), num(t, "0")}}))
	require.NoError(t, p.Exec(Instruction{Op: "line", Args: []Arg{num(t, "10"), num(t, "10")}}))
	require.NoError(t, p.Exec(Instruction{Op: "end_path"}))
}

// TestProcessorFontSelectedSurvivesRestore covers scenario S7: the
// font-selected flag is the one piece of graphics state that crosses a
// save/restore pair, so `write` stays legal after a restore even though
// the restore otherwise resets to the saved gstate.
func TestProcessorFontSelectedSurvivesRestore(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	require.NoError(t, p.Exec(Instruction{Op: "begin_text"}))
	require.NoError(t, p.Exec(Instruction{Op: "font", Args: []Arg{Name("Helvetica"), num(t, "12")}}))
	require.NoError(t, p.Exec(Instruction{Op: "write", Args: []Arg{Str("hi")}}))
	require.NoError(t, p.Exec(Instruction{Op: "end_text"}))

	require.NoError(t, p.Exec(Instruction{Op: "save"}))
	require.NoError(t, p.Exec(Instruction{Op: "restore"}))

	require.NoError(t, p.Exec(Instruction{Op: "begin_text"}))
	require.NoError(t, p.Exec(Instruction{Op: "write", Args: []Arg{Str("still selected")}}))
	require.NoError(t, p.Exec(Instruction{Op: "end_text"}))
}

func TestProcessorWriteWithoutFontFails(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	require.NoError(t, p.Exec(Instruction{Op: "begin_text"}))
	err := p.Exec(Instruction{Op: "write", Args: []Arg{Str("nope")}})
	require.Error(t, err)
}

func TestProcessorEndTextRequiresAWrite(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	require.NoError(t, p.Exec(Instruction{Op: "begin_text"}))
	err := p.Exec(Instruction{Op: "end_text"})
	require.Error(t, err)
}

func TestProcessorEndPageRequiresBalancedSaveRestore(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)

	require.NoError(t, p.Exec(Instruction{Op: "save"}))
	err := p.Exec(Instruction{Op: "end_page"})
	require.Error(t, err)
}

func TestProcessorAdvanceTakesZeroOrTwoArgs(t *testing.T) {
	asm := &recordingAssembler{}
	p := NewProcessor(asm)
	openBody(t, p)
	require.NoError(t, p.Exec(Instruction{Op: "begin_text"}))
	require.NoError(t, p.Exec(Instruction{Op: "advance"}))
	require.NoError(t, p.Exec(Instruction{Op: "advance", Args: []Arg{num(t, "1"), num(t, "2")}}))
	err := p.Exec(Instruction{Op: "advance", Args: []Arg{num(t, "1")}})
	require.Error(t, err)
}

// openBody drives the processor from Top through the page header into
// an open page body, without emitting a path or text block.
func openBody(t *testing.T, p *Processor) {
	t.Helper()
	require.NoError(t, p.Exec(Instruction{Op: "begin_page"}))
	require.NoError(t, p.Exec(Instruction{Op: "dim", Args: []Arg{num(t, "595"), num(t, "842")}}))
	require.NoError(t, p.Exec(Instruction{Op: "body"}))
}
