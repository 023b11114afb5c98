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
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

func (e *Evaluator) requirePageOpen(op string) error {
	if !e.pageOpen {
		return scenterr.New(scenterr.State, "%s: requires an open page", op)
	}
	return nil
}

// drawOps implements the drawing operations common to both dialects:
// draw_path, draw_text, draw_image. Each requires an open page and
// defers to the evaluator's Lowerer (C7).
func drawOps() map[string]opFunc {
	return map[string]opFunc{
		"draw_path": func(e *Evaluator) error {
			if err := e.requirePageOpen("draw_path"); err != nil {
				return err
			}
			clip, err := e.popClippingOrNull()
			if err != nil {
				return err
			}
			fillColor, haveFill, err := e.popColorOrNull()
			if err != nil {
				return err
			}
			var fill *value.Color
			if haveFill {
				fill = &fillColor
			}
			stroke, err := e.popStrokeOrNull()
			if err != nil {
				return err
			}
			t, err := e.popTransform()
			if err != nil {
				return err
			}
			path, err := e.popPath()
			if err != nil {
				return err
			}
			return e.lower.DrawPath(path, t, stroke, fill, clip)
		},
		"draw_text": func(e *Evaluator) error {
			if err := e.requirePageOpen("draw_text"); err != nil {
				return err
			}
			clip, err := e.popClippingOrNull()
			if err != nil {
				return err
			}
			t, err := e.popTransform()
			if err != nil {
				return err
			}
			col, err := e.popColumn()
			if err != nil {
				return err
			}
			return e.lower.DrawText(col, t, clip)
		},
		"draw_image": func(e *Evaluator) error {
			if err := e.requirePageOpen("draw_image"); err != nil {
				return err
			}
			clip, err := e.popClippingOrNull()
			if err != nil {
				return err
			}
			t, err := e.popTransform()
			if err != nil {
				return err
			}
			img, err := e.popImage()
			if err != nil {
				return err
			}
			return e.lower.DrawImage(img, t, clip)
		},
	}
}

// drawEmbedOps implements Dialect B's draw_embed, which places a named
// external resource at an integer bounding box (spec.md §9: Variant B
// adds draw_embed).
func drawEmbedOps() map[string]opFunc {
	return map[string]opFunc{
		"draw_embed": func(e *Evaluator) error {
			if err := e.requirePageOpen("draw_embed"); err != nil {
				return err
			}
			clip, err := e.popClippingOrNull()
			if err != nil {
				return err
			}
			t, err := e.popTransform()
			if err != nil {
				return err
			}
			bh, err := e.popInt()
			if err != nil {
				return err
			}
			bw, err := e.popInt()
			if err != nil {
				return err
			}
			by, err := e.popInt()
			if err != nil {
				return err
			}
			bx, err := e.popInt()
			if err != nil {
				return err
			}
			src, err := e.popString()
			if err != nil {
				return err
			}
			return e.lower.DrawEmbed(src, bx, by, bw, bh, t, clip)
		},
	}
}
