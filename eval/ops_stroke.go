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
	"strconv"

	"github.com/canidlogic/scent/builder"
	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// Dash patterns have no dedicated Value kind in the closed tagged sum
// (spec.md §3), so dash_pattern's result is encoded as a Dict under the
// atom keys "phase" and "count", with elements at "0".."count-1".

func encodeDash(dashes []fixed.Value, phase fixed.Value) value.Dict {
	d := value.Dict{
		"phase": value.Fixed(phase),
		"count": value.Integer(len(dashes)),
	}
	for i, v := range dashes {
		d[value.Atom(strconv.Itoa(i))] = value.Fixed(v)
	}
	return d
}

func decodeDash(d value.Dict) ([]fixed.Value, fixed.Value, error) {
	phaseV, ok := d["phase"]
	if !ok {
		return nil, 0, scenterr.New(scenterr.Type, "dash dictionary missing \"phase\"")
	}
	phase, ok := phaseV.(value.Fixed)
	if !ok {
		return nil, 0, scenterr.New(scenterr.Type, "dash dictionary \"phase\" must be fixed-point")
	}
	countV, ok := d["count"]
	if !ok {
		return nil, 0, scenterr.New(scenterr.Type, "dash dictionary missing \"count\"")
	}
	count, ok := countV.(value.Integer)
	if !ok {
		return nil, 0, scenterr.New(scenterr.Type, "dash dictionary \"count\" must be an integer")
	}
	out := make([]fixed.Value, count)
	for i := range out {
		v, ok := d[value.Atom(strconv.Itoa(i))]
		if !ok {
			return nil, 0, scenterr.New(scenterr.Type, "dash dictionary missing element %d", i)
		}
		f, ok := v.(value.Fixed)
		if !ok {
			return nil, 0, scenterr.New(scenterr.Type, "dash dictionary element %d must be fixed-point", i)
		}
		out[i] = fixed.Value(f)
	}
	return out, fixed.Value(phase), nil
}

// popDashOrNull pops a value that must be either Null (no dash) or a
// dash Dict as produced by dash_pattern.
func (e *Evaluator) popDashOrNull() ([]fixed.Value, fixed.Value, bool, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, 0, false, err
	}
	if _, ok := v.(value.Null); ok {
		return nil, 0, false, nil
	}
	d, ok := v.(value.Dict)
	if !ok {
		return nil, 0, false, scenterr.New(scenterr.Type, "expected a dash dictionary or null, got %s", v.Kind())
	}
	dashes, phase, err := decodeDash(d)
	if err != nil {
		return nil, 0, false, err
	}
	return dashes, phase, true, nil
}

func (e *Evaluator) popFixedOrNull() (fixed.Value, bool, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return 0, false, err
	}
	if _, ok := v.(value.Null); ok {
		return 0, false, nil
	}
	f, ok := value.AsFixed(v)
	if !ok {
		return 0, false, scenterr.New(scenterr.Type, "expected a fixed-point value or null, got %s", v.Kind())
	}
	return f, true, nil
}

func (e *Evaluator) popAtomOrNull() (value.Atom, bool, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return "", false, err
	}
	if _, ok := v.(value.Null); ok {
		return "", false, nil
	}
	a, ok := v.(value.Atom)
	if !ok {
		return "", false, scenterr.New(scenterr.Type, "expected an atom or null, got %s", v.Kind())
	}
	return a, true, nil
}

func atomToCap(a value.Atom) (value.LineCap, error) {
	switch a {
	case "butt":
		return value.CapButt, nil
	case "round":
		return value.CapRound, nil
	case "square":
		return value.CapSquare, nil
	default:
		return 0, scenterr.New(scenterr.Domain, "unrecognised line cap atom %q", a)
	}
}

func atomToJoin(a value.Atom) (value.LineJoin, error) {
	switch a {
	case "miter":
		return value.JoinMiter, nil
	case "round":
		return value.JoinRound, nil
	case "bevel":
		return value.JoinBevel, nil
	default:
		return 0, scenterr.New(scenterr.Domain, "unrecognised line join atom %q", a)
	}
}

// strokeCommonOps implements the ops shared by both dialects: building
// a dash pattern, converting a miter angle, and deriving a modified
// copy of an existing Stroke.
func strokeCommonOps() map[string]opFunc {
	return map[string]opFunc{
		"miter_angle": func(e *Evaluator) error {
			a, err := e.popFixed()
			if err != nil {
				return err
			}
			m, err := fixed.MiterAngle(a)
			if err != nil {
				return scenterr.Wrap(scenterr.Domain, err, "miter_angle")
			}
			e.Push(value.Fixed(m))
			return nil
		},
		"dash_pattern": func(e *Evaluator) error {
			phase, err := e.popFixed()
			if err != nil {
				return err
			}
			dashes, err := e.popFixedArray()
			if err != nil {
				return err
			}
			dashes, err = builder.BuildDashPattern(dashes)
			if err != nil {
				return err
			}
			e.Push(encodeDash(dashes, phase))
			return nil
		},
		"stroke_derive": func(e *Evaluator) error {
			dashes, phase, haveDash, err := e.popDashOrNull()
			if err != nil {
				return err
			}
			miter, haveMiter, err := e.popFixedOrNull()
			if err != nil {
				return err
			}
			joinAtom, haveJoin, err := e.popAtomOrNull()
			if err != nil {
				return err
			}
			capAtom, haveCap, err := e.popAtomOrNull()
			if err != nil {
				return err
			}
			color, haveColor, err := e.popColorOrNull()
			if err != nil {
				return err
			}
			width, haveWidth, err := e.popFixedOrNull()
			if err != nil {
				return err
			}
			base, err := e.popStroke()
			if err != nil {
				return err
			}

			p := &builder.PartialStroke{}
			p.Derive(base)
			if haveWidth {
				if err := p.SetWidth(width); err != nil {
					return err
				}
			}
			if haveColor {
				p.SetColor(color)
			}
			if haveCap {
				capStyle, err := atomToCap(capAtom)
				if err != nil {
					return err
				}
				p.SetCap(capStyle)
			}
			if haveJoin {
				join, err := atomToJoin(joinAtom)
				if err != nil {
					return err
				}
				if join == value.JoinMiter {
					if !haveMiter {
						return scenterr.New(scenterr.Domain, "stroke_derive: miter join requires a miter limit")
					}
					if err := p.SetJoinMiter(miter); err != nil {
						return err
					}
				} else {
					if err := p.SetJoin(join); err != nil {
						return err
					}
				}
			}
			if haveDash {
				if err := p.SetDash(dashes, phase, true); err != nil {
					return err
				}
			}
			s, err := builder.FinishStroke(p)
			if err != nil {
				return err
			}
			e.Push(s)
			return nil
		},
	}
}

func (e *Evaluator) popColorOrNull() (value.Color, bool, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return value.Color{}, false, err
	}
	if _, ok := v.(value.Null); ok {
		return value.Color{}, false, nil
	}
	c, ok := v.(value.Color)
	if !ok {
		return value.Color{}, false, scenterr.New(scenterr.Type, "expected a color or null, got %s", v.Kind())
	}
	return c, true, nil
}

func (e *Evaluator) popStrokeOrNull() (*value.Stroke, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if _, ok := v.(value.Null); ok {
		return nil, nil
	}
	s, ok := v.(*value.Stroke)
	if !ok {
		return nil, scenterr.New(scenterr.Type, "expected a stroke or null, got %s", v.Kind())
	}
	return s, nil
}

func (e *Evaluator) popStroke() (*value.Stroke, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	s, ok := v.(*value.Stroke)
	if !ok {
		return nil, scenterr.New(scenterr.Type, "expected a stroke, got %s", v.Kind())
	}
	return s, nil
}

// strokeDialectAOps implements the Dialect A single-op stroke
// constructor.
func strokeDialectAOps() map[string]opFunc {
	return map[string]opFunc{
		"stroke_style": func(e *Evaluator) error {
			dashes, phase, haveDash, err := e.popDashOrNull()
			if err != nil {
				return err
			}
			miter, haveMiter, err := e.popFixedOrNull()
			if err != nil {
				return err
			}
			joinAtom, err := e.popAtom()
			if err != nil {
				return err
			}
			join, err := atomToJoin(joinAtom)
			if err != nil {
				return err
			}
			capAtom, err := e.popAtom()
			if err != nil {
				return err
			}
			capStyle, err := atomToCap(capAtom)
			if err != nil {
				return err
			}
			color, err := e.popColor()
			if err != nil {
				return err
			}
			width, err := e.popFixed()
			if err != nil {
				return err
			}
			if join == value.JoinMiter && !haveMiter {
				return scenterr.New(scenterr.Domain, "stroke_style: miter join requires a miter limit")
			}
			if join != value.JoinMiter {
				haveMiter = false
			}
			if !haveDash {
				dashes = nil
			}
			s, err := builder.BuildStrokeStyle(color, width, capStyle, join, miter, haveMiter, dashes, phase)
			if err != nil {
				return err
			}
			e.Push(s)
			return nil
		},
	}
}

func (e *Evaluator) popColor() (value.Color, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return value.Color{}, err
	}
	c, ok := v.(value.Color)
	if !ok {
		return value.Color{}, scenterr.New(scenterr.Type, "expected a color, got %s", v.Kind())
	}
	return c, nil
}

// strokeDialectBOps implements Dialect B's accumulator-based stroke
// construction.
func strokeDialectBOps() map[string]opFunc {
	return map[string]opFunc{
		"start_stroke": func(e *Evaluator) error {
			return e.startAccumulator("start_stroke", builder.NewPartialStroke())
		},
		"stroke_width": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_width")
			if err != nil {
				return err
			}
			w, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetWidth(w)
		},
		"stroke_color": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_color")
			if err != nil {
				return err
			}
			c, err := e.popColor()
			if err != nil {
				return err
			}
			p.SetColor(c)
			return nil
		},
		"stroke_cap": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_cap")
			if err != nil {
				return err
			}
			a, err := e.popAtom()
			if err != nil {
				return err
			}
			capStyle, err := atomToCap(a)
			if err != nil {
				return err
			}
			p.SetCap(capStyle)
			return nil
		},
		"stroke_join": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_join")
			if err != nil {
				return err
			}
			a, err := e.popAtom()
			if err != nil {
				return err
			}
			join, err := atomToJoin(a)
			if err != nil {
				return err
			}
			return p.SetJoin(join)
		},
		"stroke_join_r": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_join_r")
			if err != nil {
				return err
			}
			limit, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetJoinMiter(limit)
		},
		"stroke_dash": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_dash")
			if err != nil {
				return err
			}
			phase, err := e.popFixed()
			if err != nil {
				return err
			}
			dashes, err := e.popFixedArray()
			if err != nil {
				return err
			}
			return p.SetDash(dashes, phase, false)
		},
		"stroke_undash": func(e *Evaluator) error {
			p, err := e.wantStroke("stroke_undash")
			if err != nil {
				return err
			}
			p.Unset()
			return nil
		},
		"finish_stroke": func(e *Evaluator) error {
			p, err := e.wantStroke("finish_stroke")
			if err != nil {
				return err
			}
			s, err := builder.FinishStroke(p)
			if err != nil {
				return err
			}
			e.Accumulator = nil
			e.Push(s)
			return nil
		},
	}
}
