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
	"github.com/canidlogic/scent/internal/validate"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// fontOps implements font_get, the built-in-font constructor, and
// font_load, which defers to the evaluator's ResourceLoader for the
// file-backed variant (spec.md §3, C9).
func fontOps() map[string]opFunc {
	return map[string]opFunc{
		"font_get": func(e *Evaluator) error {
			name, err := e.popAtom()
			if err != nil {
				return err
			}
			if !validate.BuiltInFont(string(name)) {
				return scenterr.New(scenterr.Domain, "font_get: %q is not one of the 14 built-in font names", name)
			}
			if f, ok := e.fonts[string(name)]; ok {
				e.Push(f)
				return nil
			}
			f := &value.Font{Variant: value.FontBuiltIn, BuiltInName: string(name)}
			e.fonts[string(name)] = f
			e.Push(f)
			return nil
		},
		"font_load": func(e *Evaluator) error {
			assigned, err := e.popAtom()
			if err != nil {
				return err
			}
			path, err := e.popString()
			if err != nil {
				return err
			}
			if f, ok := e.fonts[string(assigned)]; ok {
				e.Push(f)
				return nil
			}
			f, err := e.res.LoadFontFile(path, string(assigned))
			if err != nil {
				return scenterr.Wrap(scenterr.Resource, err, "font_load")
			}
			e.fonts[string(assigned)] = f
			e.Push(f)
			return nil
		},
	}
}

// fontSyntheticOps implements Dialect A's synthetic-font constructor;
// Dialect B drops synthetic fonts entirely (spec.md §9).
func fontSyntheticOps() map[string]opFunc {
	return map[string]opFunc{
		"font_synthetic": func(e *Evaluator) error {
			alterDict, err := e.popDict()
			if err != nil {
				return err
			}
			alter, err := decodeFontAlterations(alterDict)
			if err != nil {
				return err
			}
			base, err := e.popFont()
			if err != nil {
				return err
			}
			f := builder.BuildSyntheticFont(base, alter)
			e.Push(f)
			return nil
		},
	}
}

func decodeFontAlterations(d value.Dict) (value.FontAlterations, error) {
	var out value.FontAlterations
	if v, ok := d["hScale"]; ok {
		f, ok := value.AsFixed(v)
		if !ok {
			return out, scenterrTypeError("fixed-point hScale", v)
		}
		out.HScale = &f
	}
	if v, ok := d["oblique"]; ok {
		f, ok := value.AsFixed(v)
		if !ok {
			return out, scenterrTypeError("fixed-point oblique", v)
		}
		out.Oblique = &f
	}
	if v, ok := d["boldness"]; ok {
		f, ok := value.AsFixed(v)
		if !ok {
			return out, scenterrTypeError("fixed-point boldness", v)
		}
		out.Boldness = &f
	}
	if v, ok := d["smallCaps"]; ok {
		a, ok := v.(value.Atom)
		if !ok {
			return out, scenterrTypeError("atom smallCaps (\"true\"/\"false\")", v)
		}
		b := a == "true"
		out.SmallCaps = &b
	}
	if v, ok := d["charSpacing"]; ok {
		f, ok := value.AsFixed(v)
		if !ok {
			return out, scenterrTypeError("fixed-point charSpacing", v)
		}
		out.CharSpacing = &f
	}
	return out, nil
}
