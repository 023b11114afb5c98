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

package llil

import (
	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/scenterr"
)

// level identifies which layer of the state machine (spec.md §4.8) the
// processor is currently in.
type level int

const (
	levelTop level = iota
	levelPageHeader
	levelBodyInitial
	levelBodyPath
	levelBodyText
)

// pathStep records what the most recent path sub-instruction was, to
// enforce the move/line/curve/close/rect ordering constraints.
type pathStep int

const (
	pathStepNone pathStep = iota
	pathStepMove
	pathStepLineCurve
	pathStepClose
	pathStepRect
)

// gstate is one entry of the graphics-state stack pushed by `save` and
// popped by `restore`. Only font selection survives across a
// save/restore pair (spec.md §8 scenario S7); everything else is the
// PDF content stream's own responsibility once Assembler.Save/Restore
// are invoked.
type gstate struct {
	fontSelected bool
}

// Assembler is the strategy object dispatched into once arguments have
// been validated (spec.md §9's redesign note: "instruction-dispatch
// table plus a strategy object exposing one method per instruction").
// pdfwriter implements this interface; llil itself only validates.
type Assembler interface {
	FontStandard(name string) error
	FontFile(name, path string) error
	ImageJPEG(name, path string) error
	ImagePNG(name, path string) error

	BeginPage() error
	EndPage() error

	Dim(width, height fixed.Value) error
	BoundaryBox(kind string, x0, y0, x1, y1 fixed.Value) error
	ViewRotate(degrees int) error
	Body() error

	Save() error
	Restore() error
	Matrix(a, b, c, d, e, f fixed.Value) error
	Image(name string) error
	LineWidth(v fixed.Value) error
	LineCap(kind string) error
	LineJoin(kind string, miterLimit fixed.Value, haveMiter bool) error
	LineDash(phase fixed.Value, pairs []fixed.Value) error
	LineUndash() error
	StrokeColor(c Color) error
	FillColor(c Color) error

	BeginPath(stroke, fill, clip bool) error
	Move(x, y fixed.Value) error
	Line(x, y fixed.Value) error
	Curve(x1, y1, x2, y2, x3, y3 fixed.Value) error
	Close() error
	Rect(x, y, w, h fixed.Value) error
	EndPath() error

	BeginText() error
	CSpace(v fixed.Value) error
	WSpace(v fixed.Value) error
	HScale(v fixed.Value) error
	Lead(v fixed.Value) error
	Font(name string, size fixed.Value) error
	TextRender(mode int) error
	Rise(v fixed.Value) error
	Advance(dx, dy fixed.Value, haveOffset bool) error
	Write(s string) error
	EndText() error
}

// Processor drives the layered LLIL state machine against an
// Assembler. One Processor instance handles one document: repeated
// calls to Exec advance it through Top -> Page-header -> Page-body and
// back, instruction by instruction.
type Processor struct {
	asm Assembler

	lvl        level
	pageOpen   bool
	pagesSeen  int
	dimSet     bool
	width      fixed.Value
	height     fixed.Value
	boxes      map[string][4]fixed.Value
	gstack     []gstate
	fontSel    bool
	pathSteps  []pathStep
	writeCount int
}

// NewProcessor constructs a Processor dispatching validated
// instructions into asm.
func NewProcessor(asm Assembler) *Processor {
	return &Processor{asm: asm, lvl: levelTop}
}

// CanStop reports whether the document may legally end here: no page
// open and at least one page has been defined (spec.md §8).
func (p *Processor) CanStop() bool {
	return !p.pageOpen && p.pagesSeen > 0
}

// Exec advances the state machine by one instruction.
func (p *Processor) Exec(ins Instruction) error {
	switch p.lvl {
	case levelTop:
		return p.execTop(ins)
	case levelPageHeader:
		return p.execHeader(ins)
	case levelBodyInitial:
		return p.execBodyInitial(ins)
	case levelBodyPath:
		return p.execPath(ins)
	case levelBodyText:
		return p.execText(ins)
	default:
		return scenterr.New(scenterr.State, "unreachable processor level").WithLine(ins.Line)
	}
}

func (p *Processor) execTop(ins Instruction) error {
	switch ins.Op {
	case "font_standard":
		name, err := wantName(ins, 0)
		if err != nil {
			return err
		}
		if len(ins.Args) != 1 {
			return argCountErr(ins, 1)
		}
		return p.asm.FontStandard(name)
	case "font_file":
		name, path, err := nameAndString(ins)
		if err != nil {
			return err
		}
		return p.asm.FontFile(name, path)
	case "image_jpeg":
		name, path, err := nameAndString(ins)
		if err != nil {
			return err
		}
		return p.asm.ImageJPEG(name, path)
	case "image_png":
		name, path, err := nameAndString(ins)
		if err != nil {
			return err
		}
		return p.asm.ImagePNG(name, path)
	case "begin_page":
		if p.pageOpen {
			return stateErr(ins, "begin_page: a page is already open")
		}
		p.pageOpen = true
		p.dimSet = false
		p.boxes = map[string][4]fixed.Value{}
		p.gstack = nil
		p.fontSel = false
		p.lvl = levelPageHeader
		return p.asm.BeginPage()
	default:
		return stateErr(ins, "%s: not valid at top level", ins.Op)
	}
}

func (p *Processor) execHeader(ins Instruction) error {
	switch ins.Op {
	case "dim":
		w, h, err := twoNumbers(ins)
		if err != nil {
			return err
		}
		p.dimSet = true
		p.width, p.height = w, h
		return p.asm.Dim(w, h)
	case "bleed_box", "trim_box", "art_box":
		x0, y0, x1, y1, err := fourNumbers(ins)
		if err != nil {
			return err
		}
		p.boxes[ins.Op] = [4]fixed.Value{x0, y0, x1, y1}
		return p.asm.BoundaryBox(ins.Op, x0, y0, x1, y1)
	case "view_rotate":
		if len(ins.Args) != 1 || ins.Args[0].Kind != ArgNumber {
			return argCountErr(ins, 1)
		}
		return p.asm.ViewRotate(int(ins.Args[0].Number.Float()))
	case "body":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		if !p.dimSet {
			return stateErr(ins, "body: page dimensions were never set")
		}
		for kind, box := range p.boxes {
			if box[2].Float() >= p.width.Float() || box[3].Float() >= p.height.Float() {
				return stateErr(ins, "body: %s exceeds the page dimensions", kind)
			}
		}
		p.lvl = levelBodyInitial
		p.gstack = []gstate{{}}
		return p.asm.Body()
	default:
		return stateErr(ins, "%s: not valid in the page header", ins.Op)
	}
}

func (p *Processor) execBodyInitial(ins Instruction) error {
	switch ins.Op {
	case "save":
		top := gstate{fontSelected: p.fontSel}
		p.gstack = append(p.gstack, top)
		return p.asm.Save()
	case "restore":
		if len(p.gstack) <= 1 {
			return stateErr(ins, "restore: no matching save")
		}
		p.gstack = p.gstack[:len(p.gstack)-1]
		p.fontSel = p.gstack[len(p.gstack)-1].fontSelected
		return p.asm.Restore()
	case "matrix":
		if len(ins.Args) != 6 {
			return argCountErr(ins, 6)
		}
		nums, err := numbers(ins, 0, 6)
		if err != nil {
			return err
		}
		return p.asm.Matrix(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	case "image":
		if len(ins.Args) != 1 {
			return argCountErr(ins, 1)
		}
		name, err := wantName(ins, 0)
		if err != nil {
			return err
		}
		return p.asm.Image(name)
	case "line_width":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.LineWidth(v)
	case "line_cap":
		if len(ins.Args) != 1 {
			return argCountErr(ins, 1)
		}
		kind, err := wantName(ins, 0)
		if err != nil {
			return err
		}
		return p.asm.LineCap(kind)
	case "line_join":
		return p.execLineJoin(ins)
	case "line_dash":
		return p.execLineDash(ins)
	case "line_undash":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		return p.asm.LineUndash()
	case "stroke_color":
		c, err := wantColor(ins, 0)
		if err != nil {
			return err
		}
		if len(ins.Args) != 1 {
			return argCountErr(ins, 1)
		}
		return p.asm.StrokeColor(c)
	case "fill_color":
		c, err := wantColor(ins, 0)
		if err != nil {
			return err
		}
		if len(ins.Args) != 1 {
			return argCountErr(ins, 1)
		}
		return p.asm.FillColor(c)
	case "begin_path":
		if len(ins.Args) != 3 {
			return argCountErr(ins, 3)
		}
		stroke, err := boolFlag(ins, 0)
		if err != nil {
			return err
		}
		fill, err := boolFlag(ins, 1)
		if err != nil {
			return err
		}
		clip, err := boolFlag(ins, 2)
		if err != nil {
			return err
		}
		if !stroke && !fill && !clip {
			return stateErr(ins, "begin_path: at least one of stroke, fill, clip must be set")
		}
		p.lvl = levelBodyPath
		p.pathSteps = nil
		return p.asm.BeginPath(stroke, fill, clip)
	case "begin_text":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		p.lvl = levelBodyText
		p.writeCount = 0
		return p.asm.BeginText()
	case "end_page":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		if len(p.gstack) != 1 {
			return stateErr(ins, "end_page: unbalanced save/restore")
		}
		p.pageOpen = false
		p.pagesSeen++
		p.lvl = levelTop
		return p.asm.EndPage()
	default:
		return stateErr(ins, "%s: not valid in the page body", ins.Op)
	}
}

// execLineJoin implements the two forms of line_join (spec.md §9):
// `line_join miter <limit>` requires the second numeric argument; any
// other join name forbids it.
func (p *Processor) execLineJoin(ins Instruction) error {
	if len(ins.Args) == 0 {
		return argCountErr(ins, 1)
	}
	kind, err := wantName(ins, 0)
	if err != nil {
		return err
	}
	if kind == "miter" {
		if len(ins.Args) != 2 {
			return stateErr(ins, "line_join miter: requires a miter limit argument")
		}
		limit, err := wantNumber(ins, 1)
		if err != nil {
			return err
		}
		return p.asm.LineJoin(kind, limit, true)
	}
	if len(ins.Args) != 1 {
		return stateErr(ins, "line_join %s: forbids a miter limit argument", kind)
	}
	return p.asm.LineJoin(kind, fixed.Value(0), false)
}

// execLineDash implements `line_dash`: an odd argument count of at
// least 3 (phase followed by one or more dash/gap pairs).
func (p *Processor) execLineDash(ins Instruction) error {
	if len(ins.Args) < 3 || len(ins.Args)%2 == 0 {
		return stateErr(ins, "line_dash: requires an odd argument count of at least 3 (phase plus dash/gap pairs)")
	}
	nums, err := numbers(ins, 0, len(ins.Args))
	if err != nil {
		return err
	}
	return p.asm.LineDash(nums[0], nums[1:])
}

func (p *Processor) execPath(ins Instruction) error {
	last := pathStepNone
	if n := len(p.pathSteps); n > 0 {
		last = p.pathSteps[n-1]
	}
	switch ins.Op {
	case "move":
		x, y, err := twoNumbers(ins)
		if err != nil {
			return err
		}
		if last == pathStepMove {
			return stateErr(ins, "move: may not immediately follow another move")
		}
		p.pathSteps = append(p.pathSteps, pathStepMove)
		return p.asm.Move(x, y)
	case "line":
		x, y, err := twoNumbers(ins)
		if err != nil {
			return err
		}
		if last != pathStepMove && last != pathStepLineCurve {
			return stateErr(ins, "line: must follow a move, line, or curve")
		}
		p.pathSteps = append(p.pathSteps, pathStepLineCurve)
		return p.asm.Line(x, y)
	case "curve":
		nums, err := numbers(ins, 0, 6)
		if err != nil {
			return err
		}
		if last != pathStepMove && last != pathStepLineCurve {
			return stateErr(ins, "curve: must follow a move, line, or curve")
		}
		p.pathSteps = append(p.pathSteps, pathStepLineCurve)
		return p.asm.Curve(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	case "close":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		if last != pathStepLineCurve {
			return stateErr(ins, "close: must follow a line or curve")
		}
		p.pathSteps = append(p.pathSteps, pathStepClose)
		return p.asm.Close()
	case "rect":
		x, y, w, h, err := fourNumbers(ins)
		if err != nil {
			return err
		}
		if last == pathStepMove {
			return stateErr(ins, "rect: may not immediately follow a move")
		}
		p.pathSteps = append(p.pathSteps, pathStepRect)
		return p.asm.Rect(x, y, w, h)
	case "end_path":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		if len(p.pathSteps) == 0 {
			return stateErr(ins, "end_path: path is empty")
		}
		if last == pathStepMove {
			return stateErr(ins, "end_path: path may not end on a bare move")
		}
		p.lvl = levelBodyInitial
		return p.asm.EndPath()
	default:
		return stateErr(ins, "%s: not valid inside a path", ins.Op)
	}
}

func (p *Processor) execText(ins Instruction) error {
	switch ins.Op {
	case "cspace":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.CSpace(v)
	case "wspace":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.WSpace(v)
	case "hscale":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.HScale(v)
	case "lead":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.Lead(v)
	case "font":
		if len(ins.Args) != 2 {
			return argCountErr(ins, 2)
		}
		name, err := wantName(ins, 0)
		if err != nil {
			return err
		}
		size, err := wantNumber(ins, 1)
		if err != nil {
			return err
		}
		p.fontSel = true
		p.gstack[len(p.gstack)-1].fontSelected = true
		return p.asm.Font(name, size)
	case "text_render":
		if len(ins.Args) != 1 || ins.Args[0].Kind != ArgNumber {
			return argCountErr(ins, 1)
		}
		return p.asm.TextRender(int(ins.Args[0].Number.Float()))
	case "rise":
		v, err := oneNumber(ins)
		if err != nil {
			return err
		}
		return p.asm.Rise(v)
	case "advance":
		switch len(ins.Args) {
		case 0:
			return p.asm.Advance(fixed.Value(0), fixed.Value(0), false)
		case 2:
			nums, err := numbers(ins, 0, 2)
			if err != nil {
				return err
			}
			return p.asm.Advance(nums[0], nums[1], true)
		default:
			return stateErr(ins, "advance: takes 0 or 2 arguments")
		}
	case "write":
		if len(ins.Args) != 1 || ins.Args[0].Kind != ArgString {
			return argCountErr(ins, 1)
		}
		if !p.fontSel {
			return stateErr(ins, "write: no font is selected")
		}
		p.writeCount++
		return p.asm.Write(ins.Args[0].String)
	case "end_text":
		if len(ins.Args) != 0 {
			return argCountErr(ins, 0)
		}
		if p.writeCount == 0 {
			return stateErr(ins, "end_text: text block contains no write")
		}
		p.lvl = levelBodyInitial
		return p.asm.EndText()
	default:
		return stateErr(ins, "%s: not valid inside a text block", ins.Op)
	}
}
