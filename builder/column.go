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

package builder

import "github.com/canidlogic/scent/value"

// ColumnMode is the column builder's nested line sub-machine state.
type ColumnMode int

const (
	ColumnInitial ColumnMode = iota
	ColumnLine
)

// PartialColumn is the accumulator state built by start_column and its
// modifier ops, including the nested line sub-machine.
type PartialColumn struct {
	Mode  ColumnMode
	Lines []value.Line

	curLine value.Line
}

func (*PartialColumn) BuilderKind() Kind { return KindColumn }

// NewPartialColumn starts a fresh column accumulator.
func NewPartialColumn() *PartialColumn { return &PartialColumn{Mode: ColumnInitial} }

// StartLine is start_line: Initial -> Line.
func (p *PartialColumn) StartLine(baseline value.Point) error {
	if p.Mode != ColumnInitial {
		return &StateError{Op: "start_line", Msg: "requires the column builder to be in its initial mode"}
	}
	p.Mode = ColumnLine
	p.curLine = value.Line{Baseline: baseline}
	return nil
}

// LineSpan is line_span: requires Line mode, appends a span.
func (p *PartialColumn) LineSpan(text string, style *value.Style) error {
	if p.Mode != ColumnLine {
		return &StateError{Op: "line_span", Msg: "requires an open line"}
	}
	p.curLine.Spans = append(p.curLine.Spans, value.Span{Text: text, Style: style})
	return nil
}

// FinishLine is finish_line: requires Line mode with >=1 span -> Initial.
func (p *PartialColumn) FinishLine() error {
	if p.Mode != ColumnLine {
		return &StateError{Op: "finish_line", Msg: "requires an open line"}
	}
	if len(p.curLine.Spans) == 0 {
		return &StateError{Op: "finish_line", Msg: "a line requires at least one span"}
	}
	p.Lines = append(p.Lines, p.curLine)
	p.curLine = value.Line{}
	p.Mode = ColumnInitial
	return nil
}

// FinishColumn requires Initial mode with >=1 line.
func FinishColumn(p *PartialColumn) (*value.Column, error) {
	if p.Mode != ColumnInitial {
		return nil, &StateError{Op: "finish_column", Msg: "an open line must be finished first"}
	}
	if len(p.Lines) == 0 {
		return nil, &StateError{Op: "finish_column", Msg: "a column requires at least one line"}
	}
	return &value.Column{Lines: append([]value.Line(nil), p.Lines...)}, nil
}
