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

package pdfwriter

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// ImageLoader decodes JPEG/PNG raster images and reports their
// dimensions and colour model. It does not check a size limit, alpha,
// bit depth or interlacing: any file the standard decoders accept is
// loaded.
type ImageLoader struct {
	cache map[string]image.Image
}

// NewImageLoader constructs an empty ImageLoader.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]image.Image)}
}

// LoadImage implements eval.ResourceLoader: it decodes the image at
// path according to format and returns an Image value carrying its
// size and colour model. It fails only if the file cannot be opened or
// decoded as format.
func (il *ImageLoader) LoadImage(path string, format value.ImageFormat) (*value.Image, error) {
	img, err := il.decoded(path, format)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &value.Image{
		Path:       path,
		Format:     format,
		Width:      b.Dx(),
		Height:     b.Dy(),
		ColorModel: colorModelOf(img),
	}, nil
}

func (il *ImageLoader) decoded(path string, format value.ImageFormat) (image.Image, error) {
	if img, ok := il.cache[path]; ok {
		return img, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, scenterr.Wrap(scenterr.Resource, err, "opening image file %q", path)
	}
	defer f.Close()

	var img image.Image
	switch format {
	case value.ImageJPEG:
		img, err = jpeg.Decode(f)
	case value.ImagePNG:
		img, err = png.Decode(f)
	default:
		return nil, scenterr.New(scenterr.Domain, "unrecognised image format for %q", path)
	}
	if err != nil {
		return nil, scenterr.Wrap(scenterr.Resource, err, "decoding image file %q", path)
	}
	il.cache[path] = img
	return img, nil
}

// Pixels returns the raw, already-decoded image for embedding by the
// Assembler once a DrawImage/DrawEmbed instruction names the resource.
func (il *ImageLoader) Pixels(path string) (image.Image, bool) {
	img, ok := il.cache[path]
	return img, ok
}

func colorModelOf(img image.Image) value.ImageColorModel {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return value.ColorGray
	default:
		if p, ok := img.(*image.Paletted); ok {
			_ = p
			return value.ColorIndexedRGB
		}
		return value.ColorRGB
	}
}
