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

// PathMode is the path builder's nested sub-machine state (spec.md §4.6).
type PathMode int

const (
	PathInitial PathMode = iota
	PathStart
	PathSubpath
)

// PartialPath is the accumulator state built by start_path and its
// modifier ops, including the nested motion sub-machine.
type PartialPath struct {
	Mode     PathMode
	Subpaths []value.Subpath
	Rule     value.FillRule
	HaveRule bool

	motionStart Point
	motionSegs  []value.Segment
}

// Point is an alias of value.Point, used for the path builder's working
// coordinates.
type Point = value.Point

func (*PartialPath) BuilderKind() Kind { return KindPath }

// NewPartialPath starts a fresh path accumulator.
func NewPartialPath() *PartialPath { return &PartialPath{Mode: PathInitial} }

// StartMotion is start_motion: Initial -> Start.
func (p *PartialPath) StartMotion(start Point) error {
	if p.Mode != PathInitial {
		return &StateError{Op: "start_motion", Msg: "requires the path builder to be in its initial mode"}
	}
	p.Mode = PathStart
	p.motionStart = start
	p.motionSegs = nil
	return nil
}

// MotionLine is motion_line: Start|Subpath -> Subpath.
func (p *PartialPath) MotionLine(to Point) error {
	if p.Mode != PathStart && p.Mode != PathSubpath {
		return &StateError{Op: "motion_line", Msg: "requires open motion"}
	}
	p.motionSegs = append(p.motionSegs, value.LineSeg{P: to})
	p.Mode = PathSubpath
	return nil
}

// MotionCurve is motion_curve: Start|Subpath -> Subpath.
func (p *PartialPath) MotionCurve(p2, p3, p4 Point) error {
	if p.Mode != PathStart && p.Mode != PathSubpath {
		return &StateError{Op: "motion_curve", Msg: "requires open motion"}
	}
	p.motionSegs = append(p.motionSegs, value.CubicSeg{P2: p2, P3: p3, P4: p4})
	p.Mode = PathSubpath
	return nil
}

func (p *PartialPath) finishMotion(closed bool, op string) error {
	if p.Mode != PathSubpath {
		return &StateError{Op: op, Msg: "requires an open subpath with at least one segment"}
	}
	p.Subpaths = append(p.Subpaths, value.Motion{
		Start: p.motionStart, Segments: p.motionSegs, Closed: closed,
	})
	p.motionSegs = nil
	p.Mode = PathInitial
	return nil
}

// FinishMotion is finish_motion: Subpath -> Initial, unclosed.
func (p *PartialPath) FinishMotion() error { return p.finishMotion(false, "finish_motion") }

// CloseMotion is close_motion: Subpath -> Initial, closed.
func (p *PartialPath) CloseMotion() error { return p.finishMotion(true, "close_motion") }

// PathRect is path_rect: Initial -> Initial, appending one subpath.
func (p *PartialPath) PathRect(r value.Rectangle) error {
	if p.Mode != PathInitial {
		return &StateError{Op: "path_rect", Msg: "requires the path builder to be in its initial mode"}
	}
	if r.Width <= 0 || r.Height <= 0 {
		return &DomainError{Op: "path_rect", Msg: "width and height must be > 0"}
	}
	p.Subpaths = append(p.Subpaths, r)
	return nil
}

// PathInclude is path_include: Initial -> Initial; it appends all
// subpaths from an existing Path value.
func (p *PartialPath) PathInclude(src *value.Path) error {
	if p.Mode != PathInitial {
		return &StateError{Op: "path_include", Msg: "requires the path builder to be in its initial mode"}
	}
	p.Subpaths = append(p.Subpaths, src.Subpaths...)
	return nil
}

// SetRule sets the fill rule (this is folded into finish_path's
// argument in the concrete op signature; exposed separately here so
// eval can validate before calling FinishPath).
func (p *PartialPath) SetRule(r value.FillRule) {
	p.Rule = r
	p.HaveRule = true
}

// FinishPath requires Initial mode (no dangling open subpath) and a
// valid rule.
func FinishPath(p *PartialPath) (*value.Path, error) {
	if p.Mode != PathInitial {
		return nil, &StateError{Op: "finish_path", Msg: "an open subpath must be finished or closed first"}
	}
	if !p.HaveRule {
		return nil, &StateError{Op: "finish_path", Msg: "fill rule was never set"}
	}
	return &value.Path{
		Subpaths: append([]value.Subpath(nil), p.Subpaths...),
		Rule:     p.Rule,
	}, nil
}
