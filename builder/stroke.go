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

// PartialStroke is the accumulator state built by start_stroke and its
// modifier ops.
type PartialStroke struct {
	Color       value.Color
	HaveColor   bool
	Width       fixed.Value
	HaveWidth   bool
	Cap         value.LineCap
	Join        value.LineJoin
	MiterLimit  fixed.Value
	HasMiter    bool
	DashPattern []fixed.Value
	DashPhase   fixed.Value
}

func (*PartialStroke) BuilderKind() Kind { return KindStroke }

// NewPartialStroke starts a fresh stroke accumulator with PDF's own
// default cap/join (Butt/Miter).
func NewPartialStroke() *PartialStroke {
	return &PartialStroke{Cap: value.CapButt, Join: value.JoinMiter}
}

func (p *PartialStroke) SetWidth(w fixed.Value) error {
	if w <= 0 {
		return &DomainError{Op: "stroke_width", Msg: "width must be > 0"}
	}
	p.Width, p.HaveWidth = w, true
	return nil
}

func (p *PartialStroke) SetColor(c value.Color) {
	p.Color, p.HaveColor = c, true
}

func (p *PartialStroke) SetCap(c value.LineCap) { p.Cap = c }

// SetJoin is stroke_join (non-miter forms: Round, Bevel); a miter limit
// must not be supplied with these (spec.md §4.8, `line_join`).
func (p *PartialStroke) SetJoin(j value.LineJoin) error {
	if j == value.JoinMiter {
		return &DomainError{Op: "stroke_join", Msg: "use stroke_join_r to select the miter join"}
	}
	p.Join = j
	p.HasMiter = false
	return nil
}

// SetJoinMiter is stroke_join_r: selects the miter join with an
// explicit miter limit.
func (p *PartialStroke) SetJoinMiter(limit fixed.Value) error {
	if limit <= 0 {
		return &DomainError{Op: "stroke_join_r", Msg: "miter limit must be > 0"}
	}
	p.Join = value.JoinMiter
	p.MiterLimit = limit
	p.HasMiter = true
	return nil
}

// SetDash is stroke_dash. Dialect A permits a single-element dash array
// (the "one HLDSL form" of spec.md §3); Dialect B requires length 0 or
// >=2 with an even count (spec.md §9, open question 2).
func (p *PartialStroke) SetDash(dashes []fixed.Value, phase fixed.Value, allowSingle bool) error {
	for _, d := range dashes {
		if d <= 0 {
			return &DomainError{Op: "stroke_dash", Msg: "dash array entries must each be > 0"}
		}
	}
	if phase < 0 {
		return &DomainError{Op: "stroke_dash", Msg: "dash phase must be >= 0"}
	}
	switch {
	case len(dashes) == 0:
	case len(dashes) == 1:
		if !allowSingle {
			return &DomainError{Op: "stroke_dash", Msg: "a single-element dash array is not permitted in this dialect"}
		}
	default:
		if len(dashes)%2 != 0 {
			return &DomainError{Op: "stroke_dash", Msg: "dash array must have an even number of elements"}
		}
	}
	p.DashPattern = append([]fixed.Value(nil), dashes...)
	p.DashPhase = phase
	return nil
}

// Unset is stroke_undash.
func (p *PartialStroke) Unset() {
	p.DashPattern = nil
	p.DashPhase = 0
}

// Derive is stroke_derive.
func (p *PartialStroke) Derive(s *value.Stroke) {
	p.Color, p.HaveColor = s.Color, true
	p.Width, p.HaveWidth = s.Width, true
	p.Cap = s.Cap
	p.Join = s.Join
	p.MiterLimit = s.MiterLimit
	p.HasMiter = s.HasMiter
	p.DashPattern = append([]fixed.Value(nil), s.DashPattern...)
	p.DashPhase = s.DashPhase
}

// FinishStroke validates completeness and produces the immutable
// Stroke value.
func FinishStroke(p *PartialStroke) (*value.Stroke, error) {
	if !p.HaveColor {
		return nil, &StateError{Op: "finish_stroke", Msg: "color was never set"}
	}
	if !p.HaveWidth {
		return nil, &StateError{Op: "finish_stroke", Msg: "width was never set"}
	}
	if p.Join == value.JoinMiter && !p.HasMiter {
		return nil, &StateError{Op: "finish_stroke", Msg: "miter join requires a miter limit"}
	}
	if p.Join != value.JoinMiter && p.HasMiter {
		return nil, &StateError{Op: "finish_stroke", Msg: "miter limit is only valid with the miter join"}
	}
	return &value.Stroke{
		Color: p.Color, Width: p.Width, Cap: p.Cap, Join: p.Join,
		MiterLimit: p.MiterLimit, HasMiter: p.HasMiter,
		DashPattern: append([]fixed.Value(nil), p.DashPattern...),
		DashPhase:   p.DashPhase,
	}, nil
}
