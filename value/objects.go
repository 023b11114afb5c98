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

package value

import "github.com/canidlogic/scent/internal/fixed"

// Rotation is a ream's display rotation, one of {0, 90, 180, 270}.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Margins is a four-sided boundary-box inset, each field > 0 points.
type Margins struct {
	Left, Right, Top, Bottom fixed.Value
}

// Ream is unrotated paper dimensions plus optional boundary boxes and a
// display rotation (spec.md §3).
type Ream struct {
	Width, Height fixed.Value
	Rotation      Rotation
	ArtBox        *Margins
	TrimBox       *Margins
	BleedBox      *Margins
}

func (*Ream) Kind() Kind { return KindReam }

// Color is a CMYK tuple, channels in [0, 255].
type Color struct {
	C, M, Y, K uint8
}

func (Color) Kind() Kind { return KindColor }

// LineCap is a stroke's line-cap style.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is a stroke's line-join style.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes how a path is painted when stroked (spec.md §3).
// MiterLimit is only meaningful (and only set) when Join == JoinMiter.
type Stroke struct {
	Color       Color
	Width       fixed.Value
	Cap         LineCap
	Join        LineJoin
	MiterLimit  fixed.Value
	HasMiter    bool
	DashPattern []fixed.Value
	DashPhase   fixed.Value
}

func (*Stroke) Kind() Kind { return KindStroke }

// FontVariant distinguishes the three ways a Font can be specified.
type FontVariant int

const (
	FontBuiltIn FontVariant = iota
	FontFile
	FontSynthetic
)

// FontAlterations are the independently-optional overrides a synthetic
// font may apply over its base.
type FontAlterations struct {
	HScale       *fixed.Value
	Oblique      *fixed.Value
	Boldness     *fixed.Value
	SmallCaps    *bool
	CharSpacing  *fixed.Value
}

// Font is a loaded or derived font resource (spec.md §3). Nested
// synthetic fonts collapse to a single override layer over a
// non-synthetic base, per spec.md §9.
type Font struct {
	Variant FontVariant

	// BuiltIn
	BuiltInName string

	// File
	Path         string
	AssignedName string

	// Synthetic
	Base         *Font
	Alterations  FontAlterations
}

func (*Font) Kind() Kind { return KindFont }

// ImageFormat is the source encoding of an Image.
type ImageFormat int

const (
	ImageJPEG ImageFormat = iota
	ImagePNG
)

// ImageColorModel is the validated colour model of a loaded image.
type ImageColorModel int

const (
	ColorGray ImageColorModel = iota
	ColorRGB
	ColorIndexedRGB
)

// Image is a validated, loaded raster image resource (spec.md §3).
type Image struct {
	Path       string
	Format     ImageFormat
	Width      int
	Height     int
	ColorModel ImageColorModel
}

func (*Image) Kind() Kind { return KindImage }

// Point is a 2-D coordinate in fixed-point user space.
type Point struct {
	X, Y fixed.Value
}

// Segment is one element of a Motion subpath.
type Segment interface {
	isSegment()
}

// LineSeg draws a straight line to P.
type LineSeg struct {
	P Point
}

func (LineSeg) isSegment() {}

// CubicSeg draws a cubic Bezier curve through control points P2, P3 to
// endpoint P4.
type CubicSeg struct {
	P2, P3, P4 Point
}

func (CubicSeg) isSegment() {}

// Subpath is one connected contour within a Path: either a Rectangle or
// a Motion.
type Subpath interface {
	isSubpath()
}

// Rectangle is an axis-aligned rectangular subpath.
type Rectangle struct {
	Corner        Point
	Width, Height fixed.Value
}

func (Rectangle) isSubpath() {}

// Motion is a free-form subpath built from line/cubic segments.
type Motion struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

func (Motion) isSubpath() {}

// FillRule selects how a Path's interior is determined for fill/clip.
// RuleNull forbids fill or clip use of the path (spec.md §3).
type FillRule int

const (
	RuleNonzero FillRule = iota
	RuleEvenOdd
	RuleNull
)

// Path is an ordered list of subpaths plus a fill rule.
type Path struct {
	Subpaths []Subpath
	Rule     FillRule
}

func (*Path) Kind() Kind { return KindPath }

// Transform is a 3x3 affine transform, stored as the standard PDF
// six-element matrix [a b c d e f].
type Transform struct {
	A, B, C, D, E, F fixed.Value
}

func (Transform) Kind() Kind { return KindTransform }

// Identity returns the identity transform.
func Identity() Transform {
	one, _ := fixed.FromInt(1)
	return Transform{A: one, D: one}
}

// Span is a run of text sharing one Style within a Column Line.
type Span struct {
	Text  string
	Style *Style
}

// Line is one baseline-anchored row of Spans within a Column.
type Line struct {
	Baseline Point
	Spans    []Span
}

// Column is an ordered list of text Lines (spec.md §3).
type Column struct {
	Lines []Line
}

func (*Column) Kind() Kind { return KindColumn }

// Style is the paint/font state applied to a text Span.
type Style struct {
	Font       *Font
	Size       fixed.Value
	CharSpace  fixed.Value
	WordSpace  fixed.Value
	Rise       fixed.Value
	HScale     fixed.Value
	Stroke     *Stroke
	Fill       *Color
}

func (*Style) Kind() Kind { return KindStyle }

// ClipComponent is one shape contributing to a Clipping region.
type ClipComponent struct {
	Shape     ClipShape
	Transform Transform
}

// ClipShape is either a Path or a Column, used as a clipping boundary.
type ClipShape interface {
	isClipShape()
}

func (*Path) isClipShape()   {}
func (*Column) isClipShape() {}

// Clipping is a set of components whose intersection (together with
// the page) forms the final clip region. Order is irrelevant.
type Clipping struct {
	Components []ClipComponent
}

func (*Clipping) Kind() Kind { return KindClipping }
