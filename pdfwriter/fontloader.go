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
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// FontLoader loads and caches TrueType font files for embedding,
// exposing their raw bytes, descriptor metrics and glyph advance widths
// (spec.md §6).
type FontLoader struct {
	cache    map[string]*truetype.Font
	raw      map[string][]byte
	fallback *truetype.Font
}

// NewFontLoader constructs a FontLoader with the bundled Go Regular
// font as its last-resort fallback, in case a referenced font file
// cannot be parsed.
func NewFontLoader() *FontLoader {
	fb, err := truetype.Parse(goregular.TTF)
	if err != nil {
		fb = nil
	}
	return &FontLoader{cache: make(map[string]*truetype.Font), raw: make(map[string][]byte), fallback: fb}
}

// LoadFontFile implements eval.ResourceLoader: it parses the TrueType
// file at path and returns an opaque Font value carrying it under
// assignedName.
func (fl *FontLoader) LoadFontFile(path, assignedName string) (*value.Font, error) {
	if _, err := fl.parsed(path); err != nil {
		return nil, err
	}
	return &value.Font{
		Variant:      value.FontFile,
		Path:         path,
		AssignedName: assignedName,
	}, nil
}

// parsed returns the cached *truetype.Font for path, parsing and
// caching it on first use. It also caches the raw font file bytes
// actually backing the cached font (the fallback's, if path's own data
// failed to parse) under raw, for FontFile2 embedding.
func (fl *FontLoader) parsed(path string) (*truetype.Font, error) {
	if f, ok := fl.cache[path]; ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scenterr.Wrap(scenterr.Resource, err, "reading font file %q", path)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		if fl.fallback != nil {
			fl.cache[path] = fl.fallback
			fl.raw[path] = goregular.TTF
			return fl.fallback, nil
		}
		return nil, scenterr.Wrap(scenterr.Resource, err, "parsing font file %q", path)
	}
	fl.cache[path] = f
	fl.raw[path] = data
	return f, nil
}

// RawData returns the raw font file bytes backing the font cached at
// path, for FontFile2 embedding.
func (fl *FontLoader) RawData(path string) ([]byte, error) {
	if _, err := fl.parsed(path); err != nil {
		return nil, err
	}
	return fl.raw[path], nil
}

// Metrics reports the PDF FontDescriptor metrics for the font cached at
// path, in 1000-units-per-em glyph space, plus the advance width of
// every character code 32-255, looked up as the rune of the same value;
// codes 0-31 are left at zero. Cap height is the top of the 'H' glyph.
// Descent is returned as the required negative PDF value.
func (fl *FontLoader) Metrics(path string) (ascent, descent, capHeight float64, widths [256]float64, err error) {
	f, err := fl.parsed(path)
	if err != nil {
		return 0, 0, 0, widths, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 1000})
	defer face.Close()
	m := face.Metrics()
	ascent = float64(m.Ascent) / 64
	descent = -float64(m.Descent) / 64
	if b, _, ok := face.GlyphBounds('H'); ok {
		capHeight = -float64(b.Min.Y) / 64
	}
	for c := 32; c < 256; c++ {
		if adv, ok := face.GlyphAdvance(rune(c)); ok {
			widths[c] = float64(adv) / 64
		}
	}
	return ascent, descent, capHeight, widths, nil
}

// GlyphAdvance reports the font.Face-style scaled advance width for a
// single rune at the given point size, or 0 if the font has no glyph
// for it.
func (fl *FontLoader) GlyphAdvance(path string, size float64, r rune) (float64, error) {
	f, err := fl.parsed(path)
	if err != nil {
		return 0, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})
	defer face.Close()
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0, nil
	}
	return float64(adv) / 64, nil
}

var _ font.Face = (*truetype.Face)(nil)
