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

package pdfwriter

import (
	"bytes"
	"fmt"
)

// contentStreamWriter builds one page's content stream operator by
// operator, mirroring the way the Assembler methods are invoked by
// llil.Processor. One instance is created per page.
type contentStreamWriter struct {
	buf bytes.Buffer
}

func newContentStreamWriter() *contentStreamWriter {
	return &contentStreamWriter{}
}

func (c *contentStreamWriter) Bytes() []byte { return c.buf.Bytes() }

func (c *contentStreamWriter) op(operands string, operator string) {
	if operands != "" {
		c.buf.WriteString(operands)
		c.buf.WriteByte(' ')
	}
	c.buf.WriteString(operator)
	c.buf.WriteByte('\n')
}

func (c *contentStreamWriter) Save()    { c.op("", "q") }
func (c *contentStreamWriter) Restore() { c.op("", "Q") }

func (c *contentStreamWriter) Matrix(a, b, cc, d, e, f float64) {
	c.op(fmt.Sprintf("%s %s %s %s %s %s", fnum(a), fnum(b), fnum(cc), fnum(d), fnum(e), fnum(f)), "cm")
}

func (c *contentStreamWriter) LineWidth(w float64)   { c.op(fnum(w), "w") }
func (c *contentStreamWriter) LineCap(style int)     { c.op(fmt.Sprintf("%d", style), "J") }
func (c *contentStreamWriter) LineJoin(style int)    { c.op(fmt.Sprintf("%d", style), "j") }
func (c *contentStreamWriter) MiterLimit(limit float64) { c.op(fnum(limit), "M") }

func (c *contentStreamWriter) Dash(pattern []float64, phase float64) {
	parts := make([]string, len(pattern))
	for i, p := range pattern {
		parts[i] = fnum(p)
	}
	arr := "["
	for i, p := range parts {
		if i > 0 {
			arr += " "
		}
		arr += p
	}
	arr += "]"
	c.op(fmt.Sprintf("%s %s", arr, fnum(phase)), "d")
}

func (c *contentStreamWriter) StrokeColor(cc, m, y, k float64) {
	c.op(fmt.Sprintf("%s %s %s %s", fnum(cc), fnum(m), fnum(y), fnum(k)), "K")
}

func (c *contentStreamWriter) FillColor(cc, m, y, k float64) {
	c.op(fmt.Sprintf("%s %s %s %s", fnum(cc), fnum(m), fnum(y), fnum(k)), "k")
}

func (c *contentStreamWriter) Move(x, y float64)  { c.op(fmt.Sprintf("%s %s", fnum(x), fnum(y)), "m") }
func (c *contentStreamWriter) Line(x, y float64)  { c.op(fmt.Sprintf("%s %s", fnum(x), fnum(y)), "l") }

func (c *contentStreamWriter) Curve(x1, y1, x2, y2, x3, y3 float64) {
	c.op(fmt.Sprintf("%s %s %s %s %s %s", fnum(x1), fnum(y1), fnum(x2), fnum(y2), fnum(x3), fnum(y3)), "c")
}

func (c *contentStreamWriter) ClosePath() { c.op("", "h") }

func (c *contentStreamWriter) Rect(x, y, w, h float64) {
	c.op(fmt.Sprintf("%s %s %s %s", fnum(x), fnum(y), fnum(w), fnum(h)), "re")
}

// PaintPath emits the appropriate path-painting operator for the
// combination of stroke/fill/clip flags that opened the path, and the
// path's fill rule (spec.md §3: nonzero vs even-odd).
func (c *contentStreamWriter) PaintPath(stroke, fill, clip, evenOdd bool) {
	suffix := ""
	if evenOdd {
		suffix = "*"
	}
	if clip {
		c.op("", "W"+suffix)
	}
	switch {
	case stroke && fill:
		c.op("", "B"+suffix)
	case fill:
		c.op("", "f"+suffix)
	case stroke:
		c.op("", "S")
	default:
		c.op("", "n")
	}
}

func (c *contentStreamWriter) Image(name string) {
	c.op(fmt.Sprintf("/%s Do", name), "")
}

func (c *contentStreamWriter) BeginText() { c.op("", "BT") }
func (c *contentStreamWriter) EndText()   { c.op("", "ET") }

func (c *contentStreamWriter) CharSpace(v float64) { c.op(fnum(v), "Tc") }
func (c *contentStreamWriter) WordSpace(v float64) { c.op(fnum(v), "Tw") }
func (c *contentStreamWriter) HScale(v float64)    { c.op(fnum(v*100), "Tz") }
func (c *contentStreamWriter) Leading(v float64)   { c.op(fnum(v), "TL") }
func (c *contentStreamWriter) Rise(v float64)      { c.op(fnum(v), "Ts") }
func (c *contentStreamWriter) RenderMode(m int)    { c.op(fmt.Sprintf("%d", m), "Tr") }

func (c *contentStreamWriter) Font(name string, size float64) {
	c.op(fmt.Sprintf("/%s %s", name, fnum(size)), "Tf")
}

func (c *contentStreamWriter) Advance(dx, dy float64) {
	c.op(fmt.Sprintf("%s %s", fnum(dx), fnum(dy)), "Td")
}

func (c *contentStreamWriter) NextLine() { c.op("", "T*") }

func (c *contentStreamWriter) ShowText(s string) {
	c.op(Str(s).pdfBytes(), "Tj")
}

func fnum(f float64) string {
	return Num(f).pdfBytes()
}
