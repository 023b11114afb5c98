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

func (e *Evaluator) popFont() (*value.Font, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	f, ok := v.(*value.Font)
	if !ok {
		return nil, scenterrTypeError("font", v)
	}
	return f, nil
}

func (e *Evaluator) popStyle() (*value.Style, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	s, ok := v.(*value.Style)
	if !ok {
		return nil, scenterrTypeError("style", v)
	}
	return s, nil
}

// styleOps implements Dialect B's accumulator-based style construction,
// plus the style_setw/style_setwc convenience modifiers (spec.md §6;
// their exact operand semantics are this compiler's interpretation,
// see DESIGN.md).
func styleOps() map[string]opFunc {
	return map[string]opFunc{
		"start_style": func(e *Evaluator) error {
			return e.startAccumulator("start_style", builder.NewPartialStyle())
		},
		"style_font": func(e *Evaluator) error {
			p, err := e.wantStyle("style_font")
			if err != nil {
				return err
			}
			f, err := e.popFont()
			if err != nil {
				return err
			}
			p.SetFont(f)
			return nil
		},
		"style_size": func(e *Evaluator) error {
			p, err := e.wantStyle("style_size")
			if err != nil {
				return err
			}
			sz, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetSize(sz)
		},
		"style_stroke": func(e *Evaluator) error {
			p, err := e.wantStyle("style_stroke")
			if err != nil {
				return err
			}
			s, err := e.popStroke()
			if err != nil {
				return err
			}
			p.SetStroke(s)
			return nil
		},
		"style_fill": func(e *Evaluator) error {
			p, err := e.wantStyle("style_fill")
			if err != nil {
				return err
			}
			c, err := e.popColor()
			if err != nil {
				return err
			}
			p.SetFill(&c)
			return nil
		},
		"style_cspace": func(e *Evaluator) error {
			p, err := e.wantStyle("style_cspace")
			if err != nil {
				return err
			}
			v, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetCharSpace(v)
		},
		"style_wspace": func(e *Evaluator) error {
			p, err := e.wantStyle("style_wspace")
			if err != nil {
				return err
			}
			v, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetWordSpace(v)
		},
		"style_hscale": func(e *Evaluator) error {
			p, err := e.wantStyle("style_hscale")
			if err != nil {
				return err
			}
			v, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetHScale(v)
		},
		"style_rise": func(e *Evaluator) error {
			p, err := e.wantStyle("style_rise")
			if err != nil {
				return err
			}
			v, err := e.popFixed()
			if err != nil {
				return err
			}
			p.SetRise(v)
			return nil
		},
		"style_derive": func(e *Evaluator) error {
			p, err := e.wantStyle("style_derive")
			if err != nil {
				return err
			}
			s, err := e.popStyle()
			if err != nil {
				return err
			}
			p.Derive(s)
			return nil
		},
		"style_setwc": func(e *Evaluator) error {
			p, err := e.wantStyle("style_setwc")
			if err != nil {
				return err
			}
			ws, err := e.popFixed()
			if err != nil {
				return err
			}
			cs, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetWC(cs, ws)
		},
		"style_setw": func(e *Evaluator) error {
			p, err := e.wantStyle("style_setw")
			if err != nil {
				return err
			}
			w, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetW(w)
		},
		"finish_style": func(e *Evaluator) error {
			p, err := e.wantStyle("finish_style")
			if err != nil {
				return err
			}
			s, err := builder.FinishStyle(p)
			if err != nil {
				return err
			}
			e.Accumulator = nil
			e.Push(s)
			return nil
		},
	}
}
