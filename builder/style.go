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

import (
	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/value"
)

// PartialStyle is the accumulator state built by start_style and its
// modifier ops.
type PartialStyle struct {
	Font      *value.Font
	Size      fixed.Value
	HaveSize  bool
	CharSpace fixed.Value
	WordSpace fixed.Value
	Rise      fixed.Value
	HScale    fixed.Value
	HaveHScale bool
	Stroke    *value.Stroke
	Fill      *value.Color
}

func (*PartialStyle) BuilderKind() Kind { return KindStyle }

// NewPartialStyle starts a fresh style accumulator; HScale defaults to
// 1.0 (100%) as in unscaled text.
func NewPartialStyle() *PartialStyle {
	one, _ := fixed.FromInt(1)
	return &PartialStyle{HScale: one, HaveHScale: true}
}

func (p *PartialStyle) SetFont(f *value.Font)     { p.Font = f }
func (p *PartialStyle) SetStroke(s *value.Stroke) { p.Stroke = s }
func (p *PartialStyle) SetFill(c *value.Color)    { p.Fill = c }
func (p *PartialStyle) SetRise(r fixed.Value)      { p.Rise = r }

func (p *PartialStyle) SetSize(sz fixed.Value) error {
	if sz <= 0 {
		return &DomainError{Op: "style_size", Msg: "size must be > 0"}
	}
	p.Size, p.HaveSize = sz, true
	return nil
}

func (p *PartialStyle) SetCharSpace(v fixed.Value) error {
	if v < 0 {
		return &DomainError{Op: "style_cspace", Msg: "character spacing must be >= 0"}
	}
	p.CharSpace = v
	return nil
}

func (p *PartialStyle) SetWordSpace(v fixed.Value) error {
	if v < 0 {
		return &DomainError{Op: "style_wspace", Msg: "word spacing must be >= 0"}
	}
	p.WordSpace = v
	return nil
}

func (p *PartialStyle) SetHScale(v fixed.Value) error {
	if v <= 0 {
		return &DomainError{Op: "style_hscale", Msg: "horizontal scale must be > 0"}
	}
	p.HScale, p.HaveHScale = v, true
	return nil
}

// SetWC is style_setwc: a convenience modifier that sets character and
// word spacing together from a single pair of operands.
func (p *PartialStyle) SetWC(charSpace, wordSpace fixed.Value) error {
	if err := p.SetCharSpace(charSpace); err != nil {
		return err
	}
	return p.SetWordSpace(wordSpace)
}

// SetW is style_setw: a convenience modifier that sets the style's
// stroke width in place, requiring a stroke to already be set.
func (p *PartialStyle) SetW(width fixed.Value) error {
	if p.Stroke == nil {
		return &StateError{Op: "style_setw", Msg: "requires style_stroke to have been called first"}
	}
	if width <= 0 {
		return &DomainError{Op: "style_setw", Msg: "width must be > 0"}
	}
	cp := *p.Stroke
	cp.Width = width
	p.Stroke = &cp
	return nil
}

// Derive is style_derive.
func (p *PartialStyle) Derive(s *value.Style) {
	p.Font = s.Font
	p.Size, p.HaveSize = s.Size, true
	p.CharSpace = s.CharSpace
	p.WordSpace = s.WordSpace
	p.Rise = s.Rise
	p.HScale, p.HaveHScale = s.HScale, true
	p.Stroke = s.Stroke
	p.Fill = s.Fill
}

// FinishStyle validates completeness.
func FinishStyle(p *PartialStyle) (*value.Style, error) {
	if p.Font == nil {
		return nil, &StateError{Op: "finish_style", Msg: "font was never set"}
	}
	if !p.HaveSize {
		return nil, &StateError{Op: "finish_style", Msg: "size was never set"}
	}
	if !p.HaveHScale {
		return nil, &StateError{Op: "finish_style", Msg: "horizontal scale was never set"}
	}
	return &value.Style{
		Font: p.Font, Size: p.Size, CharSpace: p.CharSpace, WordSpace: p.WordSpace,
		Rise: p.Rise, HScale: p.HScale, Stroke: p.Stroke, Fill: p.Fill,
	}, nil
}
