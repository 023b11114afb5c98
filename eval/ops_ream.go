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

// popMarginsOrNull pops four fixed-point margins (bottom, top, right,
// left order, matching popPoint's y-over-x convention) or a single
// Null meaning "box omitted".
func (e *Evaluator) popMarginsOrNull() (*value.Margins, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if _, ok := v.(value.Null); ok {
		return nil, nil
	}
	e.Stack.Push(v)
	bottom, err := e.popFixed()
	if err != nil {
		return nil, err
	}
	top, err := e.popFixed()
	if err != nil {
		return nil, err
	}
	right, err := e.popFixed()
	if err != nil {
		return nil, err
	}
	left, err := e.popFixed()
	if err != nil {
		return nil, err
	}
	return &value.Margins{Left: left, Right: right, Top: top, Bottom: bottom}, nil
}

// reamDialectAOps implements Dialect A's single-op "ream" constructor.
func reamDialectAOps() map[string]opFunc {
	return map[string]opFunc{
		"ream": func(e *Evaluator) error {
			bleed, err := e.popMarginsOrNull()
			if err != nil {
				return err
			}
			trim, err := e.popMarginsOrNull()
			if err != nil {
				return err
			}
			art, err := e.popMarginsOrNull()
			if err != nil {
				return err
			}
			rot, err := e.popInt()
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
			r, err := builder.BuildReamDialectA(w, h, rot, art, trim, bleed)
			if err != nil {
				return err
			}
			e.Push(r)
			return nil
		},
	}
}

func (e *Evaluator) popReam() (*value.Ream, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	r, ok := v.(*value.Ream)
	if !ok {
		return nil, scenterrTypeError("ream", v)
	}
	return r, nil
}

// reamDialectBOps implements Dialect B's accumulator-based ream
// construction. ArtBox and TrimBox may not both be set (spec.md §9).
func reamDialectBOps() map[string]opFunc {
	return map[string]opFunc{
		"start_ream": func(e *Evaluator) error {
			return e.startAccumulator("start_ream", builder.NewPartialReam())
		},
		"ream_dim": func(e *Evaluator) error {
			p, err := e.wantReam("ream_dim")
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
			return p.SetDim(w, h)
		},
		"ream_rotate": func(e *Evaluator) error {
			p, err := e.wantReam("ream_rotate")
			if err != nil {
				return err
			}
			r, err := e.popInt()
			if err != nil {
				return err
			}
			return p.SetRotation(r)
		},
		"ream_bound": func(e *Evaluator) error {
			p, err := e.wantReam("ream_bound")
			if err != nil {
				return err
			}
			box, err := e.popBoxKind()
			if err != nil {
				return err
			}
			bottom, err := e.popFixed()
			if err != nil {
				return err
			}
			top, err := e.popFixed()
			if err != nil {
				return err
			}
			right, err := e.popFixed()
			if err != nil {
				return err
			}
			left, err := e.popFixed()
			if err != nil {
				return err
			}
			return p.SetBound(box, value.Margins{Left: left, Right: right, Top: top, Bottom: bottom})
		},
		"ream_unbound": func(e *Evaluator) error {
			p, err := e.wantReam("ream_unbound")
			if err != nil {
				return err
			}
			box, err := e.popBoxKind()
			if err != nil {
				return err
			}
			p.Unset(box)
			return nil
		},
		"ream_derive": func(e *Evaluator) error {
			p, err := e.wantReam("ream_derive")
			if err != nil {
				return err
			}
			r, err := e.popReam()
			if err != nil {
				return err
			}
			p.Derive(r)
			return nil
		},
		"finish_ream": func(e *Evaluator) error {
			p, err := e.wantReam("finish_ream")
			if err != nil {
				return err
			}
			r, err := builder.FinishReam(p, false)
			if err != nil {
				return err
			}
			e.Accumulator = nil
			e.Push(r)
			return nil
		},
	}
}

func (e *Evaluator) popBoxKind() (builder.BoxKind, error) {
	a, err := e.popAtom()
	if err != nil {
		return 0, err
	}
	switch a {
	case "art":
		return builder.BoxArt, nil
	case "trim":
		return builder.BoxTrim, nil
	case "bleed":
		return builder.BoxBleed, nil
	default:
		return 0, scenterrDomainError("box kind", string(a))
	}
}
