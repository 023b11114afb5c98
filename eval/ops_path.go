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
	"github.com/canidlogic/scent/builder"
	"github.com/canidlogic/scent/value"
)

func (e *Evaluator) popFillRule() (value.FillRule, error) {
	a, err := e.popAtom()
	if err != nil {
		return 0, err
	}
	switch a {
	case "nonzero":
		return value.RuleNonzero, nil
	case "evenodd":
		return value.RuleEvenOdd, nil
	case "null":
		return value.RuleNull, nil
	default:
		return 0, scenterrDomainError("fill rule", string(a))
	}
}

func (e *Evaluator) popPath() (*value.Path, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	p, ok := v.(*value.Path)
	if !ok {
		return nil, scenterrTypeError("path", v)
	}
	return p, nil
}

// pathOps implements Dialect B's accumulator-based path construction,
// including the nested motion sub-machine (spec.md §4.6).
func pathOps() map[string]opFunc {
	return map[string]opFunc{
		"start_path": func(e *Evaluator) error {
			return e.startAccumulator("start_path", builder.NewPartialPath())
		},
		"start_motion": func(e *Evaluator) error {
			p, err := e.wantPath("start_motion")
			if err != nil {
				return err
			}
			pt, err := e.popPoint()
			if err != nil {
				return err
			}
			return p.StartMotion(pt)
		},
		"motion_line": func(e *Evaluator) error {
			p, err := e.wantPath("motion_line")
			if err != nil {
				return err
			}
			pt, err := e.popPoint()
			if err != nil {
				return err
			}
			return p.MotionLine(pt)
		},
		"motion_curve": func(e *Evaluator) error {
			p, err := e.wantPath("motion_curve")
			if err != nil {
				return err
			}
			p4, err := e.popPoint()
			if err != nil {
				return err
			}
			p3, err := e.popPoint()
			if err != nil {
				return err
			}
			p2, err := e.popPoint()
			if err != nil {
				return err
			}
			return p.MotionCurve(p2, p3, p4)
		},
		"finish_motion": func(e *Evaluator) error {
			p, err := e.wantPath("finish_motion")
			if err != nil {
				return err
			}
			return p.FinishMotion()
		},
		"close_motion": func(e *Evaluator) error {
			p, err := e.wantPath("close_motion")
			if err != nil {
				return err
			}
			return p.CloseMotion()
		},
		"path_rect": func(e *Evaluator) error {
			p, err := e.wantPath("path_rect")
			if err != nil {
				return err
			}
			h, err := e.popFixed()
			if err != nil {
				return err
			}
			w, err := e.popFixed()
			if err != nil {
				return err
			}
			corner, err := e.popPoint()
			if err != nil {
				return err
			}
			return p.PathRect(value.Rectangle{Corner: corner, Width: w, Height: h})
		},
		"path_include": func(e *Evaluator) error {
			p, err := e.wantPath("path_include")
			if err != nil {
				return err
			}
			src, err := e.popPath()
			if err != nil {
				return err
			}
			return p.PathInclude(src)
		},
		"finish_path": func(e *Evaluator) error {
			p, err := e.wantPath("finish_path")
			if err != nil {
				return err
			}
			rule, err := e.popFillRule()
			if err != nil {
				return err
			}
			p.SetRule(rule)
			path, err := builder.FinishPath(p)
			if err != nil {
				return err
			}
			e.Accumulator = nil
			e.Push(path)
			return nil
		},
	}
}
