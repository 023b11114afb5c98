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
	"io"
	"os"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/llil"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// fontResource is a registered font_standard/font_file declaration,
// not yet written to the PDF object graph until it is actually
// referenced from a page (standard-14 fonts never need embedding).
type fontResource struct {
	builtin  bool
	name     string // standard-14 name, when builtin
	path     string // TrueType file path, otherwise
	ref      Reference
	assigned bool
}

type imageResource struct {
	format string
	path   string
	ref    Reference
	assigned bool
}

// pageState accumulates one page's content stream plus the resource
// names it ends up referencing.
type pageState struct {
	width, height float64
	rotate        int
	artBox        *Rectangle
	trimBox       *Rectangle
	bleedBox      *Rectangle
	cs            *contentStreamWriter
	usedFonts     map[string]bool
	usedImages    map[string]bool
}

// Document implements llil.Assembler, translating validated LLIL
// instructions into PDF content-stream operators and page/resource
// objects (spec.md §4.9).
type Document struct {
	w      *Writer
	fonts  *FontLoader
	images *ImageLoader

	fontResources  map[string]*fontResource
	imageResources map[string]*imageResource

	pages        []Reference
	cur          *pageState
	pendingPaint *pathPaint
}

// NewDocument constructs an empty Document backed by fl/il for
// resource loading.
func NewDocument(fl *FontLoader, il *ImageLoader) *Document {
	return &Document{
		w:              NewWriter(),
		fonts:          fl,
		images:         il,
		fontResources:  make(map[string]*fontResource),
		imageResources: make(map[string]*imageResource),
	}
}

func f(v fixed.Value) float64 { return v.Float() }

// --- resource declarations (spec.md §6's top-level LLIL ops) ---

func (d *Document) FontStandard(name string) error {
	d.fontResources[name] = &fontResource{builtin: true, name: name}
	return nil
}

func (d *Document) FontFile(name, path string) error {
	d.fontResources[name] = &fontResource{path: path}
	return nil
}

func (d *Document) ImageJPEG(name, path string) error {
	d.imageResources[name] = &imageResource{format: "jpeg", path: path}
	return nil
}

func (d *Document) ImagePNG(name, path string) error {
	d.imageResources[name] = &imageResource{format: "png", path: path}
	return nil
}

// --- page lifecycle ---

func (d *Document) BeginPage() error {
	d.cur = &pageState{usedFonts: map[string]bool{}, usedImages: map[string]bool{}, cs: newContentStreamWriter()}
	return nil
}

func (d *Document) Dim(width, height fixed.Value) error {
	d.cur.width, d.cur.height = f(width), f(height)
	return nil
}

func (d *Document) BoundaryBox(kind string, x0, y0, x1, y1 fixed.Value) error {
	r := &Rectangle{LLx: f(x0), LLy: f(y0), URx: f(x1), URy: f(y1)}
	switch kind {
	case "art_box":
		d.cur.artBox = r
	case "trim_box":
		d.cur.trimBox = r
	case "bleed_box":
		d.cur.bleedBox = r
	}
	return nil
}

func (d *Document) ViewRotate(degrees int) error {
	d.cur.rotate = degrees
	return nil
}

func (d *Document) Body() error { return nil }

func (d *Document) EndPage() error {
	resources := NewDict()
	fontDict := NewDict()
	for name := range d.cur.usedFonts {
		ref, err := d.materializeFont(name)
		if err != nil {
			return err
		}
		fontDict.Set(Name(name), ref)
	}
	xobjDict := NewDict()
	for name := range d.cur.usedImages {
		ref, err := d.materializeImage(name)
		if err != nil {
			return err
		}
		xobjDict.Set(Name(name), ref)
	}
	resources.Set("Font", fontDict)
	resources.Set("XObject", xobjDict)

	contentRef := d.w.Alloc()
	d.w.PutStream(contentRef, &Stream{Dict: NewDict(), Data: d.cur.cs.Bytes()})

	pageDict := NewDict()
	pageDict.Set("Type", Name("Page"))
	pageDict.Set("MediaBox", Rectangle{LLx: 0, LLy: 0, URx: d.cur.width, URy: d.cur.height})
	if d.cur.artBox != nil {
		pageDict.Set("ArtBox", *d.cur.artBox)
	}
	if d.cur.trimBox != nil {
		pageDict.Set("TrimBox", *d.cur.trimBox)
	}
	if d.cur.bleedBox != nil {
		pageDict.Set("BleedBox", *d.cur.bleedBox)
	}
	if d.cur.rotate != 0 {
		pageDict.Set("Rotate", Num(d.cur.rotate))
	}
	pageDict.Set("Resources", resources)
	pageDict.Set("Contents", contentRef)

	pageRef := d.w.Alloc()
	d.w.Put(pageRef, pageDict)
	d.pages = append(d.pages, pageRef)
	d.cur = nil
	return nil
}

func (d *Document) materializeFont(name string) (Reference, error) {
	fr, ok := d.fontResources[name]
	if !ok {
		return Reference{}, scenterr.New(scenterr.Name, "undeclared font %q", name)
	}
	if fr.assigned {
		return fr.ref, nil
	}
	dict := NewDict()
	dict.Set("Type", Name("Font"))
	if fr.builtin {
		dict.Set("Subtype", Name("Type1"))
		dict.Set("BaseFont", Name(fr.name))
	} else {
		dict.Set("Subtype", Name("TrueType"))
		dict.Set("BaseFont", Name(name))
		dict.Set("Encoding", Name("WinAnsiEncoding"))

		descRef, widths, firstChar, err := d.embedFontFile(name, fr.path)
		if err != nil {
			return Reference{}, err
		}
		wArr := make(Array, len(widths))
		for i, w := range widths {
			wArr[i] = Num(w)
		}
		dict.Set("FirstChar", Num(firstChar))
		dict.Set("LastChar", Num(firstChar+len(widths)-1))
		dict.Set("Widths", wArr)
		dict.Set("FontDescriptor", descRef)
	}
	fr.ref = d.w.Alloc()
	fr.assigned = true
	d.w.Put(fr.ref, dict)
	return fr.ref, nil
}

// embedFontFile writes the FontFile2 stream and FontDescriptor for a
// font_file resource, returning the descriptor's reference plus the
// Widths array (codes 32-255) and its FirstChar.
func (d *Document) embedFontFile(name, path string) (Reference, []float64, int, error) {
	raw, err := d.fonts.RawData(path)
	if err != nil {
		return Reference{}, nil, 0, err
	}
	ascent, descent, capHeight, glyphWidths, err := d.fonts.Metrics(path)
	if err != nil {
		return Reference{}, nil, 0, err
	}

	const firstChar, lastChar = 32, 255
	widths := make([]float64, lastChar-firstChar+1)
	maxWidth := 0.0
	for c := firstChar; c <= lastChar; c++ {
		widths[c-firstChar] = glyphWidths[c]
		if glyphWidths[c] > maxWidth {
			maxWidth = glyphWidths[c]
		}
	}

	fileDict := NewDict()
	fileDict.Set("Length1", Num(len(raw)))
	fileRef := d.w.Alloc()
	d.w.PutStream(fileRef, &Stream{Dict: fileDict, Data: raw})

	descDict := NewDict()
	descDict.Set("Type", Name("FontDescriptor"))
	descDict.Set("FontName", Name(name))
	descDict.Set("Flags", Num(32))
	descDict.Set("FontBBox", Array{Num(0), Num(descent), Num(maxWidth), Num(ascent)})
	descDict.Set("ItalicAngle", Num(0))
	descDict.Set("Ascent", Num(ascent))
	descDict.Set("Descent", Num(descent))
	descDict.Set("CapHeight", Num(capHeight))
	descDict.Set("StemV", Num(80))
	descDict.Set("FontFile2", fileRef)

	descRef := d.w.Alloc()
	d.w.Put(descRef, descDict)
	return descRef, widths, firstChar, nil
}

func (d *Document) materializeImage(name string) (Reference, error) {
	ir, ok := d.imageResources[name]
	if !ok {
		return Reference{}, scenterr.New(scenterr.Name, "undeclared image %q", name)
	}
	if ir.assigned {
		return ir.ref, nil
	}
	format := value.ImagePNG
	if ir.format == "jpeg" {
		format = value.ImageJPEG
	}
	img, err := d.images.LoadImage(ir.path, format)
	if err != nil {
		return Reference{}, err
	}
	dict := NewDict()
	dict.Set("Type", Name("XObject"))
	dict.Set("Subtype", Name("Image"))
	dict.Set("Width", Num(img.Width))
	dict.Set("Height", Num(img.Height))
	dict.Set("BitsPerComponent", Num(8))
	if img.ColorModel == value.ColorGray {
		dict.Set("ColorSpace", Name("DeviceGray"))
	} else {
		dict.Set("ColorSpace", Name("DeviceRGB"))
	}

	var data []byte
	if ir.format == "jpeg" {
		dict.Set("Filter", Name("DCTDecode"))
		raw, err := os.ReadFile(ir.path)
		if err != nil {
			return Reference{}, scenterr.Wrap(scenterr.Resource, err, "reading JPEG file %q", ir.path)
		}
		data = raw
	} else {
		pix, _ := d.images.Pixels(ir.path)
		data = rawPixels(pix, img.ColorModel)
	}

	ir.ref = d.w.Alloc()
	ir.assigned = true
	d.w.PutStream(ir.ref, &Stream{Dict: dict, Data: data})
	return ir.ref, nil
}

// --- graphics state ---

func (d *Document) Save() error    { d.cur.cs.Save(); return nil }
func (d *Document) Restore() error { d.cur.cs.Restore(); return nil }

func (d *Document) Matrix(a, b, c, dd, e, ff fixed.Value) error {
	d.cur.cs.Matrix(f(a), f(b), f(c), f(dd), f(e), f(ff))
	return nil
}

func (d *Document) Image(name string) error {
	d.cur.usedImages[name] = true
	d.cur.cs.Image(name)
	return nil
}

func (d *Document) LineWidth(v fixed.Value) error { d.cur.cs.LineWidth(f(v)); return nil }

func (d *Document) LineCap(kind string) error {
	d.cur.cs.LineCap(capCode(kind))
	return nil
}

func (d *Document) LineJoin(kind string, miterLimit fixed.Value, haveMiter bool) error {
	d.cur.cs.LineJoin(joinCode(kind))
	if haveMiter {
		d.cur.cs.MiterLimit(f(miterLimit))
	}
	return nil
}

func (d *Document) LineDash(phase fixed.Value, pairs []fixed.Value) error {
	pattern := make([]float64, len(pairs))
	for i, p := range pairs {
		pattern[i] = f(p)
	}
	d.cur.cs.Dash(pattern, f(phase))
	return nil
}

func (d *Document) LineUndash() error {
	d.cur.cs.Dash(nil, 0)
	return nil
}

func (d *Document) StrokeColor(c llil.Color) error {
	d.cur.cs.StrokeColor(chanF(c.C), chanF(c.M), chanF(c.Y), chanF(c.K))
	return nil
}

func (d *Document) FillColor(c llil.Color) error {
	d.cur.cs.FillColor(chanF(c.C), chanF(c.M), chanF(c.Y), chanF(c.K))
	return nil
}

// --- path ---

type pathPaint struct {
	stroke, fill, clip bool
	evenOdd            bool
}

func (d *Document) BeginPath(stroke, fill, clip bool) error {
	d.pendingPaint = &pathPaint{stroke: stroke, fill: fill, clip: clip}
	return nil
}

func (d *Document) Move(x, y fixed.Value) error  { d.cur.cs.Move(f(x), f(y)); return nil }
func (d *Document) Line(x, y fixed.Value) error  { d.cur.cs.Line(f(x), f(y)); return nil }

func (d *Document) Curve(x1, y1, x2, y2, x3, y3 fixed.Value) error {
	d.cur.cs.Curve(f(x1), f(y1), f(x2), f(y2), f(x3), f(y3))
	return nil
}

func (d *Document) Close() error { d.cur.cs.ClosePath(); return nil }

func (d *Document) Rect(x, y, w, h fixed.Value) error {
	d.cur.cs.Rect(f(x), f(y), f(w), f(h))
	return nil
}

func (d *Document) EndPath() error {
	p := d.pendingPaint
	d.pendingPaint = nil
	if p == nil {
		return scenterr.New(scenterr.State, "end_path: no matching begin_path")
	}
	d.cur.cs.PaintPath(p.stroke, p.fill, p.clip, p.evenOdd)
	return nil
}

// --- text ---

func (d *Document) BeginText() error { d.cur.cs.BeginText(); return nil }
func (d *Document) EndText() error   { d.cur.cs.EndText(); return nil }

func (d *Document) CSpace(v fixed.Value) error { d.cur.cs.CharSpace(f(v)); return nil }
func (d *Document) WSpace(v fixed.Value) error { d.cur.cs.WordSpace(f(v)); return nil }
func (d *Document) HScale(v fixed.Value) error { d.cur.cs.HScale(f(v)); return nil }
func (d *Document) Lead(v fixed.Value) error   { d.cur.cs.Leading(f(v)); return nil }

func (d *Document) Font(name string, size fixed.Value) error {
	d.cur.usedFonts[name] = true
	d.cur.cs.Font(name, f(size))
	return nil
}

func (d *Document) TextRender(mode int) error { d.cur.cs.RenderMode(mode); return nil }
func (d *Document) Rise(v fixed.Value) error  { d.cur.cs.Rise(f(v)); return nil }

func (d *Document) Advance(dx, dy fixed.Value, haveOffset bool) error {
	if haveOffset {
		d.cur.cs.Advance(f(dx), f(dy))
	} else {
		d.cur.cs.NextLine()
	}
	return nil
}

func (d *Document) Write(s string) error {
	d.cur.cs.ShowText(s)
	return nil
}

// --- finishing ---

// Finish writes the complete PDF file (catalog, page tree, every
// allocated object, xref, trailer) to out.
func (d *Document) Finish(out io.Writer) error {
	kids := make(Array, len(d.pages))
	for i, p := range d.pages {
		kids[i] = p
	}
	pagesDict := NewDict()
	pagesDict.Set("Type", Name("Pages"))
	pagesDict.Set("Kids", kids)
	pagesDict.Set("Count", Num(len(d.pages)))
	pagesRef := d.w.Alloc()
	d.w.Put(pagesRef, pagesDict)

	catalog := NewDict()
	catalog.Set("Type", Name("Catalog"))
	catalog.Set("Pages", pagesRef)
	catalogRef := d.w.Alloc()
	d.w.Put(catalogRef, catalog)
	d.w.SetCatalog(catalogRef)

	return d.w.Write(out)
}

func capCode(kind string) int {
	switch kind {
	case "round":
		return 1
	case "square":
		return 2
	default:
		return 0
	}
}

func joinCode(kind string) int {
	switch kind {
	case "round":
		return 1
	case "bevel":
		return 2
	default:
		return 0
	}
}

func chanF(c uint8) float64 { return float64(c) / 255 }

// rawPixels emits uncompressed, unfiltered sample data in row-major
// order matching the DeviceGray/DeviceRGB colour space chosen above.
func rawPixels(img image.Image, model value.ImageColorModel) []byte {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	var out []byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if model == value.ColorGray {
				out = append(out, byte(r>>8))
			} else {
				out = append(out, byte(r>>8), byte(g>>8), byte(bl>>8))
			}
		}
	}
	return out
}
