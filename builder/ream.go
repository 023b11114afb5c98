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

// PartialReam is the accumulator state built by start_ream and its
// modifier ops (spec.md §4.6 Dialect B).
type PartialReam struct {
	Width, Height fixed.Value
	HaveDim       bool
	Rotation      value.Rotation
	ArtBox        *value.Margins
	TrimBox       *value.Margins
	BleedBox      *value.Margins
}

func (*PartialReam) BuilderKind() Kind { return KindReam }

// NewPartialReam starts a fresh ream accumulator.
func NewPartialReam() *PartialReam {
	return &PartialReam{}
}

// SetDim is ream_dim.
func (p *PartialReam) SetDim(w, h fixed.Value) error {
	if w <= 0 || h <= 0 {
		return &DomainError{Op: "ream_dim", Msg: "width and height must be > 0"}
	}
	p.Width, p.Height, p.HaveDim = w, h, true
	return nil
}

// SetRotation is ream_rotate.
func (p *PartialReam) SetRotation(r int) error {
	switch r {
	case 0, 90, 180, 270:
		p.Rotation = value.Rotation(r)
		return nil
	default:
		return &DomainError{Op: "ream_rotate", Msg: "rotation must be one of {0,90,180,270}"}
	}
}

// BoxKind selects which boundary box a ream_bound/ream_unbound call
// targets.
type BoxKind int

const (
	BoxArt BoxKind = iota
	BoxTrim
	BoxBleed
)

// SetBound is ream_bound: defines a boundary box with the given margins.
func (p *PartialReam) SetBound(box BoxKind, m value.Margins) error {
	if m.Left <= 0 || m.Right <= 0 || m.Top <= 0 || m.Bottom <= 0 {
		return &DomainError{Op: "ream_bound", Msg: "margins must each be > 0"}
	}
	switch box {
	case BoxArt:
		p.ArtBox = &m
	case BoxTrim:
		p.TrimBox = &m
	case BoxBleed:
		p.BleedBox = &m
	}
	return nil
}

// Unset is ream_unbound: removes a previously set boundary box.
func (p *PartialReam) Unset(box BoxKind) {
	switch box {
	case BoxArt:
		p.ArtBox = nil
	case BoxTrim:
		p.TrimBox = nil
	case BoxBleed:
		p.BleedBox = nil
	}
}

// Derive replaces p's fields with a deep copy of an existing Ream
// (ream_derive).
func (p *PartialReam) Derive(r *value.Ream) {
	p.Width, p.Height, p.HaveDim = r.Width, r.Height, true
	p.Rotation = r.Rotation
	p.ArtBox = copyMargins(r.ArtBox)
	p.TrimBox = copyMargins(r.TrimBox)
	p.BleedBox = copyMargins(r.BleedBox)
}

func copyMargins(m *value.Margins) *value.Margins {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

// allowBothArtAndTrim controls whether FinishReam permits a ream to
// define both ArtBox and TrimBox simultaneously. Dialect A permits this;
// Dialect B forbids it (spec.md §9, open question 1).
func FinishReam(p *PartialReam, allowBothArtAndTrim bool) (*value.Ream, error) {
	if !p.HaveDim {
		return nil, &StateError{Op: "finish_ream", Msg: "dimensions were never set"}
	}
	haveArt := p.ArtBox != nil
	haveTrim := p.TrimBox != nil
	if !haveArt && !haveTrim {
		return nil, &StateError{Op: "finish_ream", Msg: "exactly one of ArtBox/TrimBox is required"}
	}
	if haveArt && haveTrim && !allowBothArtAndTrim {
		return nil, &StateError{Op: "finish_ream", Msg: "ArtBox and TrimBox may not both be set in this dialect"}
	}

	r := &value.Ream{
		Width: p.Width, Height: p.Height, Rotation: p.Rotation,
		ArtBox: p.ArtBox, TrimBox: p.TrimBox, BleedBox: p.BleedBox,
	}
	if err := ValidateReam(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ValidateReam checks the completion-time geometry invariants from
// spec.md §3: for each defined box, left+right < width and
// top+bottom < height; if both an art/trim box and a bleed box are
// present, each art/trim margin exceeds the corresponding bleed margin.
func ValidateReam(r *value.Ream) error {
	check := func(name string, m *value.Margins) error {
		if m == nil {
			return nil
		}
		if m.Left+m.Right >= r.Width {
			return &DomainError{Op: "finish_ream", Msg: name + ": left+right margins must be < width"}
		}
		if m.Top+m.Bottom >= r.Height {
			return &DomainError{Op: "finish_ream", Msg: name + ": top+bottom margins must be < height"}
		}
		return nil
	}
	if err := check("ArtBox", r.ArtBox); err != nil {
		return err
	}
	if err := check("TrimBox", r.TrimBox); err != nil {
		return err
	}
	if err := check("BleedBox", r.BleedBox); err != nil {
		return err
	}

	if r.BleedBox != nil {
		artOrTrim := r.ArtBox
		if artOrTrim == nil {
			artOrTrim = r.TrimBox
		}
		if artOrTrim != nil {
			b := r.BleedBox
			if artOrTrim.Left <= b.Left || artOrTrim.Right <= b.Right ||
				artOrTrim.Top <= b.Top || artOrTrim.Bottom <= b.Bottom {
				return &DomainError{Op: "finish_ream", Msg: "art/trim margins must each exceed the corresponding bleed margin"}
			}
		}
	}
	return nil
}
