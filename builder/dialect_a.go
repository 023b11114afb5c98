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
	"math"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/value"
)

// Transform composition, shared by both dialects (spec.md §3: "built
// from translate/rotate/scale/skew composed in the fixed order
// translate->rotate->scale->skew when specified together, or from a
// concatenation of existing transforms").

// TranslateRotateScaleSkew builds a single Transform from the subset of
// components supplied (each a pointer, nil meaning "omitted"), applied
// in the fixed order translate -> rotate -> scale -> skew.
func TranslateRotateScaleSkew(tx, ty *fixed.Value, angleDeg *fixed.Value, sx, sy *fixed.Value, skewDeg *fixed.Value) (value.Transform, error) {
	m := value.Identity()
	if tx != nil || ty != nil {
		dx, dy := zero(tx), zero(ty)
		m = mul(m, translateMatrix(dx, dy))
	}
	if angleDeg != nil {
		m = mul(m, rotateMatrix(angleDeg.Float()))
	}
	if sx != nil || sy != nil {
		x, y := one(sx), one(sy)
		m = mul(m, scaleMatrix(x, y))
	}
	if skewDeg != nil {
		m = mul(m, skewMatrix(skewDeg.Float()))
	}
	return m, nil
}

// Concat concatenates a sequence of existing transforms in order
// (tx_seq).
func Concat(ts ...value.Transform) value.Transform {
	m := value.Identity()
	for _, t := range ts {
		m = mul(m, t)
	}
	return m
}

func zero(v *fixed.Value) float64 {
	if v == nil {
		return 0
	}
	return v.Float()
}

func one(v *fixed.Value) float64 {
	if v == nil {
		return 1
	}
	return v.Float()
}

func translateMatrix(dx, dy float64) value.Transform {
	return floatsToTransform(1, 0, 0, 1, dx, dy)
}

func scaleMatrix(sx, sy float64) value.Transform {
	return floatsToTransform(sx, 0, 0, sy, 0, 0)
}

func rotateMatrix(deg float64) value.Transform {
	r := deg * math.Pi / 180
	return floatsToTransform(math.Cos(r), math.Sin(r), -math.Sin(r), math.Cos(r), 0, 0)
}

func skewMatrix(deg float64) value.Transform {
	r := deg * math.Pi / 180
	return floatsToTransform(1, 0, math.Tan(r), 1, 0, 0)
}

func floatsToTransform(a, b, c, d, e, f float64) value.Transform {
	fa, _ := fixed.FromFloat(a)
	fb, _ := fixed.FromFloat(b)
	fc, _ := fixed.FromFloat(c)
	fd, _ := fixed.FromFloat(d)
	fe, _ := fixed.FromFloat(e)
	ff, _ := fixed.FromFloat(f)
	return value.Transform{A: fa, B: fb, C: fc, D: fd, E: fe, F: ff}
}

// mul composes two transforms as m1 followed by m2 (row-vector, PDF
// convention: [x y 1] * M).
func mul(m1, m2 value.Transform) value.Transform {
	a1, b1, c1, d1, e1, f1 := m1.A.Float(), m1.B.Float(), m1.C.Float(), m1.D.Float(), m1.E.Float(), m1.F.Float()
	a2, b2, c2, d2, e2, f2 := m2.A.Float(), m2.B.Float(), m2.C.Float(), m2.D.Float(), m2.E.Float(), m2.F.Float()
	return floatsToTransform(
		a1*a2+b1*c2,
		a1*b2+b1*d2,
		c1*a2+d1*c2,
		c1*b2+d1*d2,
		e1*a2+f1*c2+e2,
		e1*b2+f1*d2+f2,
	)
}

// BuildColorCMYK validates and constructs a Color value (gray/cmyk ops
// share this after normalising gray->CMYK-with-zero-CMY).
func BuildColorCMYK(c, m, y, k int) (value.Color, error) {
	for _, v := range []int{c, m, y, k} {
		if v < 0 || v > 255 {
			return value.Color{}, &DomainError{Op: "cmyk", Msg: "channels must be in [0,255]"}
		}
	}
	return value.Color{C: uint8(c), M: uint8(m), Y: uint8(y), K: uint8(k)}, nil
}

// BuildColorGray is the "gray"/"fgray" op: a single 0-255 channel
// mapped to DeviceGray-equivalent CMYK (C=M=Y=0, K=255-gray).
func BuildColorGray(gray int) (value.Color, error) {
	if gray < 0 || gray > 255 {
		return value.Color{}, &DomainError{Op: "gray", Msg: "gray channel must be in [0,255]"}
	}
	return value.Color{K: uint8(255 - gray)}, nil
}

// BuildDashPattern validates a dash array for Dialect A use, where a
// single-element dash array is legal (spec.md §3, §9 open question 2).
func BuildDashPattern(dashes []fixed.Value) ([]fixed.Value, error) {
	for _, d := range dashes {
		if d <= 0 {
			return nil, &DomainError{Op: "dash_pattern", Msg: "dash array entries must each be > 0"}
		}
	}
	if len(dashes) >= 2 && len(dashes)%2 != 0 {
		return nil, &DomainError{Op: "dash_pattern", Msg: "a dash array of 2 or more elements must have an even count"}
	}
	return append([]fixed.Value(nil), dashes...), nil
}

// BuildStrokeStyle is the Dialect-A single-op "stroke_style" builder: it
// takes already-validated fields and performs the same completeness
// checks as FinishStroke.
func BuildStrokeStyle(color value.Color, width fixed.Value, cap value.LineCap, join value.LineJoin, miterLimit fixed.Value, hasMiter bool, dash []fixed.Value, phase fixed.Value) (*value.Stroke, error) {
	p := &PartialStroke{
		Color: color, HaveColor: true, Width: width, HaveWidth: width > 0,
		Cap: cap, Join: join, MiterLimit: miterLimit, HasMiter: hasMiter,
		DashPattern: dash, DashPhase: phase,
	}
	if width <= 0 {
		return nil, &DomainError{Op: "stroke_style", Msg: "width must be > 0"}
	}
	return FinishStroke(p)
}

// BuildClipping constructs a Clipping value from its components
// (the "clip" op).
func BuildClipping(components []value.ClipComponent) (*value.Clipping, error) {
	if len(components) == 0 {
		return nil, &DomainError{Op: "clip", Msg: "a clipping region requires at least one component"}
	}
	for _, c := range components {
		if p, ok := c.Shape.(*value.Path); ok && p.Rule == value.RuleNull {
			return nil, &DomainError{Op: "clip", Msg: "a path with the null fill rule cannot be used for clipping"}
		}
	}
	return &value.Clipping{Components: append([]value.ClipComponent(nil), components...)}, nil
}

// BuildReamDialectA is the single-op "ream" builder.
func BuildReamDialectA(width, height fixed.Value, rotation int, artBox, trimBox, bleedBox *value.Margins) (*value.Ream, error) {
	p := NewPartialReam()
	if err := p.SetDim(width, height); err != nil {
		return nil, err
	}
	if err := p.SetRotation(rotation); err != nil {
		return nil, err
	}
	p.ArtBox, p.TrimBox, p.BleedBox = artBox, trimBox, bleedBox
	// Dialect A permits ArtBox and TrimBox simultaneously (spec.md §9).
	return FinishReam(p, true)
}
