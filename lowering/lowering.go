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

// Package lowering implements the lowering layer (spec.md §4.7,
// component C7): it translates the HLDSL evaluator's page and drawing
// operations into the LLIL instruction stream consumed by a
// llil.Processor. It implements eval.Lowerer, so package eval never
// imports llil or pdfwriter directly.
//
// Resource declarations (font_standard/font_file/image_jpeg/image_png)
// are a textual-top-level-only convention of the standalone LLIL
// source format (spec.md §6); since this layer builds the instruction
// stream in process rather than parsing text, it registers resources
// with the Assembler directly the first time each is referenced,
// independent of whether a page is currently open.
package lowering

import (
	"fmt"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/llil"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

// Lowering drives one llil.Processor from the HLDSL drawing
// operations of a single document.
type Lowering struct {
	proc *llil.Processor
	asm  llil.Assembler

	pageOpen bool

	fontNames  map[*value.Font]string
	imageNames map[*value.Image]string
	nextFont   int
	nextImage  int
}

// New constructs a Lowering driving proc, with asm used for the
// resource-registration side channel described above. asm must be the
// same Assembler proc was built with.
func New(proc *llil.Processor, asm llil.Assembler) *Lowering {
	return &Lowering{
		proc:       proc,
		asm:        asm,
		fontNames:  make(map[*value.Font]string),
		imageNames: make(map[*value.Image]string),
	}
}

func (lw *Lowering) exec(ins llil.Instruction) error {
	return lw.proc.Exec(ins)
}

// PageOpen reports whether a page is currently open.
func (lw *Lowering) PageOpen() bool { return lw.pageOpen }

// BeginPage opens a page and emits its header (spec.md §4.7).
func (lw *Lowering) BeginPage(ream *value.Ream) error {
	if err := lw.exec(llil.Instruction{Op: "begin_page"}); err != nil {
		return err
	}
	lw.pageOpen = true
	if err := lw.exec(llil.Instruction{Op: "dim", Args: []llil.Arg{llil.Number(ream.Width), llil.Number(ream.Height)}}); err != nil {
		return err
	}
	if ream.BleedBox != nil {
		if err := lw.emitBox("bleed_box", ream.BleedBox, ream); err != nil {
			return err
		}
	}
	if ream.TrimBox != nil {
		if err := lw.emitBox("trim_box", ream.TrimBox, ream); err != nil {
			return err
		}
	}
	if ream.ArtBox != nil {
		if err := lw.emitBox("art_box", ream.ArtBox, ream); err != nil {
			return err
		}
	}
	if ream.Rotation != value.Rotate0 {
		rot, _ := fixed.FromInt(int(ream.Rotation))
		if err := lw.exec(llil.Instruction{Op: "view_rotate", Args: []llil.Arg{llil.Number(rot)}}); err != nil {
			return err
		}
	}
	return lw.exec(llil.Instruction{Op: "body"})
}

// emitBox converts a Margins inset into the absolute box coordinates
// the LLIL boundary-box instructions take.
func (lw *Lowering) emitBox(op string, m *value.Margins, ream *value.Ream) error {
	x0 := m.Left
	y0 := m.Bottom
	x1, err := fixed.Sub(ream.Width, m.Right)
	if err != nil {
		return err
	}
	y1, err := fixed.Sub(ream.Height, m.Top)
	if err != nil {
		return err
	}
	return lw.exec(llil.Instruction{Op: op, Args: []llil.Arg{llil.Number(x0), llil.Number(y0), llil.Number(x1), llil.Number(y1)}})
}

// EndPage closes the currently open page.
func (lw *Lowering) EndPage() error {
	if err := lw.exec(llil.Instruction{Op: "end_page"}); err != nil {
		return err
	}
	lw.pageOpen = false
	return nil
}

// DrawPath lowers a single draw_path operation: save, apply transform,
// establish clip, set paint state, emit the path, restore (spec.md
// §4.7).
func (lw *Lowering) DrawPath(path *value.Path, t value.Transform, stroke *value.Stroke, fill *value.Color, clip *value.Clipping) error {
	if path.Rule == value.RuleNull && (fill != nil || clip != nil) {
		return scenterr.New(scenterr.Domain, "draw_path: a null-rule path cannot be filled or used as a clip")
	}
	if err := lw.exec(llil.Instruction{Op: "save"}); err != nil {
		return err
	}
	if err := lw.applyTransform(t); err != nil {
		return err
	}
	if err := lw.applyClip(clip); err != nil {
		return err
	}
	if stroke != nil {
		if err := lw.applyStroke(stroke); err != nil {
			return err
		}
	}
	if fill != nil {
		if err := lw.exec(llil.Instruction{Op: "fill_color", Args: []llil.Arg{llil.Col(toLLILColor(*fill))}}); err != nil {
			return err
		}
	}
	if err := lw.emitPath(path, stroke != nil, fill != nil, false); err != nil {
		return err
	}
	return lw.exec(llil.Instruction{Op: "restore"})
}

// DrawText lowers a draw_text operation: each Line/Span becomes a
// font/size/style change followed by a write, wrapped in the page's
// save/restore and clip per spec.md §4.7.
func (lw *Lowering) DrawText(col *value.Column, t value.Transform, clip *value.Clipping) error {
	if err := lw.exec(llil.Instruction{Op: "save"}); err != nil {
		return err
	}
	if err := lw.applyTransform(t); err != nil {
		return err
	}
	if err := lw.applyClip(clip); err != nil {
		return err
	}
	if err := lw.exec(llil.Instruction{Op: "begin_text"}); err != nil {
		return err
	}
	for _, line := range col.Lines {
		for _, span := range line.Spans {
			if err := lw.emitSpan(span); err != nil {
				return err
			}
		}
	}
	if err := lw.exec(llil.Instruction{Op: "end_text"}); err != nil {
		return err
	}
	return lw.exec(llil.Instruction{Op: "restore"})
}

func (lw *Lowering) emitSpan(span value.Span) error {
	s := span.Style
	name, err := lw.resolveFont(s.Font)
	if err != nil {
		return err
	}
	mode := RenderMode(s.Stroke != nil, s.Fill != nil, false)
	modeVal, _ := fixed.FromInt(mode)
	ops := []llil.Instruction{
		{Op: "cspace", Args: []llil.Arg{llil.Number(s.CharSpace)}},
		{Op: "wspace", Args: []llil.Arg{llil.Number(s.WordSpace)}},
		{Op: "hscale", Args: []llil.Arg{llil.Number(s.HScale)}},
		{Op: "rise", Args: []llil.Arg{llil.Number(s.Rise)}},
		{Op: "font", Args: []llil.Arg{llil.Name(name), llil.Number(s.Size)}},
		{Op: "text_render", Args: []llil.Arg{llil.Number(modeVal)}},
		{Op: "write", Args: []llil.Arg{llil.Str(span.Text)}},
	}
	for _, ins := range ops {
		if err := lw.exec(ins); err != nil {
			return err
		}
	}
	return nil
}

// DrawImage lowers a draw_image operation.
func (lw *Lowering) DrawImage(img *value.Image, t value.Transform, clip *value.Clipping) error {
	if err := lw.exec(llil.Instruction{Op: "save"}); err != nil {
		return err
	}
	if err := lw.applyTransform(t); err != nil {
		return err
	}
	if err := lw.applyClip(clip); err != nil {
		return err
	}
	name, err := lw.resolveImage(img)
	if err != nil {
		return err
	}
	if err := lw.exec(llil.Instruction{Op: "image", Args: []llil.Arg{llil.Name(name)}}); err != nil {
		return err
	}
	return lw.exec(llil.Instruction{Op: "restore"})
}

// DrawEmbed lowers Dialect B's draw_embed: an external resource placed
// at an integer bounding box rather than the unit square.
func (lw *Lowering) DrawEmbed(src string, bx, by, bw, bh int, t value.Transform, clip *value.Clipping) error {
	if err := lw.exec(llil.Instruction{Op: "save"}); err != nil {
		return err
	}
	if err := lw.applyTransform(t); err != nil {
		return err
	}
	if err := lw.applyClip(clip); err != nil {
		return err
	}
	bxv, _ := fixed.FromInt(bx)
	byv, _ := fixed.FromInt(by)
	bwv, _ := fixed.FromInt(bw)
	bhv, _ := fixed.FromInt(bh)
	if err := lw.exec(llil.Instruction{Op: "matrix", Args: []llil.Arg{
		llil.Number(bwv), llil.Number(fixed.Value(0)), llil.Number(fixed.Value(0)),
		llil.Number(bhv), llil.Number(bxv), llil.Number(byv),
	}}); err != nil {
		return err
	}
	if err := lw.exec(llil.Instruction{Op: "image", Args: []llil.Arg{llil.Name(src)}}); err != nil {
		return err
	}
	return lw.exec(llil.Instruction{Op: "restore"})
}

func (lw *Lowering) applyTransform(t value.Transform) error {
	return lw.exec(llil.Instruction{Op: "matrix", Args: []llil.Arg{
		llil.Number(t.A), llil.Number(t.B), llil.Number(t.C),
		llil.Number(t.D), llil.Number(t.E), llil.Number(t.F),
	}})
}

func (lw *Lowering) applyStroke(s *value.Stroke) error {
	if err := lw.exec(llil.Instruction{Op: "line_width", Args: []llil.Arg{llil.Number(s.Width)}}); err != nil {
		return err
	}
	if err := lw.exec(llil.Instruction{Op: "line_cap", Args: []llil.Arg{llil.Name(capName(s.Cap))}}); err != nil {
		return err
	}
	joinArgs := []llil.Arg{llil.Name(joinName(s.Join))}
	if s.Join == value.JoinMiter {
		joinArgs = append(joinArgs, llil.Number(s.MiterLimit))
	}
	if err := lw.exec(llil.Instruction{Op: "line_join", Args: joinArgs}); err != nil {
		return err
	}
	if len(s.DashPattern) == 0 {
		if err := lw.exec(llil.Instruction{Op: "line_undash"}); err != nil {
			return err
		}
	} else {
		args := make([]llil.Arg, 0, len(s.DashPattern)+1)
		args = append(args, llil.Number(s.DashPhase))
		for _, d := range s.DashPattern {
			args = append(args, llil.Number(d))
		}
		if err := lw.exec(llil.Instruction{Op: "line_dash", Args: args}); err != nil {
			return err
		}
	}
	return lw.exec(llil.Instruction{Op: "stroke_color", Args: []llil.Arg{llil.Col(toLLILColor(s.Color))}})
}

// applyClip emits each Clipping component, projected through its own
// component transform, as a clip-only path or text block, per
// spec.md §4.7.
func (lw *Lowering) applyClip(clip *value.Clipping) error {
	if clip == nil {
		return nil
	}
	for _, comp := range clip.Components {
		if err := lw.exec(llil.Instruction{Op: "save"}); err != nil {
			return err
		}
		if err := lw.applyTransform(comp.Transform); err != nil {
			return err
		}
		switch shape := comp.Shape.(type) {
		case *value.Path:
			if err := lw.emitPath(shape, false, false, true); err != nil {
				return err
			}
		case *value.Column:
			if err := lw.emitClipColumn(shape); err != nil {
				return err
			}
		default:
			return scenterr.New(scenterr.Type, "clip: unsupported shape")
		}
		if err := lw.exec(llil.Instruction{Op: "restore"}); err != nil {
			return err
		}
	}
	return nil
}

func (lw *Lowering) emitClipColumn(col *value.Column) error {
	if err := lw.exec(llil.Instruction{Op: "begin_text"}); err != nil {
		return err
	}
	for _, line := range col.Lines {
		for _, span := range line.Spans {
			name, err := lw.resolveFont(span.Style.Font)
			if err != nil {
				return err
			}
			if err := lw.exec(llil.Instruction{Op: "font", Args: []llil.Arg{llil.Name(name), llil.Number(span.Style.Size)}}); err != nil {
				return err
			}
			clipMode, _ := fixed.FromInt(7)
			if err := lw.exec(llil.Instruction{Op: "text_render", Args: []llil.Arg{llil.Number(clipMode)}}); err != nil {
				return err
			}
			if err := lw.exec(llil.Instruction{Op: "write", Args: []llil.Arg{llil.Str(span.Text)}}); err != nil {
				return err
			}
		}
	}
	return lw.exec(llil.Instruction{Op: "end_text"})
}

// emitPath translates a Path's subpaths into move/line/curve/close/rect
// instructions and opens/closes the path with the requested paint
// flags.
func (lw *Lowering) emitPath(p *value.Path, stroke, fill, clip bool) error {
	if err := lw.exec(llil.Instruction{Op: "begin_path", Args: []llil.Arg{boolArg(stroke), boolArg(fill), boolArg(clip)}}); err != nil {
		return err
	}
	for _, sub := range p.Subpaths {
		switch s := sub.(type) {
		case value.Rectangle:
			if err := lw.exec(llil.Instruction{Op: "rect", Args: []llil.Arg{
				llil.Number(s.Corner.X), llil.Number(s.Corner.Y), llil.Number(s.Width), llil.Number(s.Height),
			}}); err != nil {
				return err
			}
		case value.Motion:
			if err := lw.exec(llil.Instruction{Op: "move", Args: []llil.Arg{llil.Number(s.Start.X), llil.Number(s.Start.Y)}}); err != nil {
				return err
			}
			for _, seg := range s.Segments {
				switch sg := seg.(type) {
				case value.LineSeg:
					if err := lw.exec(llil.Instruction{Op: "line", Args: []llil.Arg{llil.Number(sg.P.X), llil.Number(sg.P.Y)}}); err != nil {
						return err
					}
				case value.CubicSeg:
					if err := lw.exec(llil.Instruction{Op: "curve", Args: []llil.Arg{
						llil.Number(sg.P2.X), llil.Number(sg.P2.Y),
						llil.Number(sg.P3.X), llil.Number(sg.P3.Y),
						llil.Number(sg.P4.X), llil.Number(sg.P4.Y),
					}}); err != nil {
						return err
					}
				}
			}
			if s.Closed {
				if err := lw.exec(llil.Instruction{Op: "close"}); err != nil {
					return err
				}
			}
		}
	}
	return lw.exec(llil.Instruction{Op: "end_path"})
}

// resolveFont returns the LLIL resource name for f, registering it with
// the Assembler on first use. A built-in font's resource name is its
// standard-14 name itself (font_standard takes no separate assigned
// name, spec.md §6); a file font gets a freshly generated name.
func (lw *Lowering) resolveFont(f *value.Font) (string, error) {
	if name, ok := lw.fontNames[f]; ok {
		return name, nil
	}
	base := f
	for base.Variant == value.FontSynthetic {
		base = base.Base
	}
	var name string
	var err error
	switch base.Variant {
	case value.FontBuiltIn:
		name = base.BuiltInName
		err = lw.asm.FontStandard(name)
	case value.FontFile:
		lw.nextFont++
		name = fmt.Sprintf("F%d", lw.nextFont)
		err = lw.asm.FontFile(name, base.Path)
	}
	if err != nil {
		return "", scenterr.Wrap(scenterr.Resource, err, "registering font")
	}
	lw.fontNames[f] = name
	return name, nil
}

func (lw *Lowering) resolveImage(img *value.Image) (string, error) {
	if name, ok := lw.imageNames[img]; ok {
		return name, nil
	}
	lw.nextImage++
	name := fmt.Sprintf("I%d", lw.nextImage)
	var err error
	switch img.Format {
	case value.ImageJPEG:
		err = lw.asm.ImageJPEG(name, img.Path)
	case value.ImagePNG:
		err = lw.asm.ImagePNG(name, img.Path)
	}
	if err != nil {
		return "", scenterr.Wrap(scenterr.Resource, err, "registering image")
	}
	lw.imageNames[img] = name
	return name, nil
}

func boolArg(b bool) llil.Arg {
	if b {
		return llil.Name("true")
	}
	return llil.Name("false")
}

func capName(c value.LineCap) string {
	switch c {
	case value.CapRound:
		return "round"
	case value.CapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinName(j value.LineJoin) string {
	switch j {
	case value.JoinRound:
		return "round"
	case value.JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

func toLLILColor(c value.Color) llil.Color {
	return llil.Color{C: c.C, M: c.M, Y: c.Y, K: c.K}
}

// RenderMode implements the text rendering mode encoding formula
// (spec.md §9): combined {stroke, fill, clip} booleans map to the
// integer render mode.
func RenderMode(stroke, fill, clip bool) int {
	switch {
	case fill && stroke && clip:
		return 6
	case stroke && clip:
		return 5
	case fill && clip:
		return 4
	case clip:
		return 7
	case !fill && !stroke:
		return 3
	case fill && stroke:
		return 2
	case stroke:
		return 1
	default:
		return 0
	}
}
