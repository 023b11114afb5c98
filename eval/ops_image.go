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

func (e *Evaluator) popImage() (*value.Image, error) {
	v, err := e.Stack.Pop()
	if err != nil {
		return nil, err
	}
	img, ok := v.(*value.Image)
	if !ok {
		return nil, scenterrTypeError("image", v)
	}
	return img, nil
}

// imageOps implements image_load, deferring to the evaluator's
// ResourceLoader for JPEG/PNG decoding and validation (C9).
func imageOps() map[string]opFunc {
	return map[string]opFunc{
		"image_load": func(e *Evaluator) error {
			formatAtom, err := e.popAtom()
			if err != nil {
				return err
			}
			var format value.ImageFormat
			switch formatAtom {
			case "jpeg":
				format = value.ImageJPEG
			case "png":
				format = value.ImagePNG
			default:
				return scenterrDomainError("image format", string(formatAtom))
			}
			path, err := e.popString()
			if err != nil {
				return err
			}
			if img, ok := e.images[path]; ok {
				e.Push(img)
				return nil
			}
			img, err := e.res.LoadImage(path, format)
			if err != nil {
				return scenterr.Wrap(scenterr.Resource, err, "image_load")
			}
			e.images[path] = img
			e.Push(img)
			return nil
		},
	}
}
