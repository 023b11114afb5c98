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

// Package llil implements the LLIL processor (spec.md §4.8, component
// C8): the layered instruction state machine, its argument validation,
// and dispatch to a PDF-writer strategy. Both the in-process lowering
// layer (package lowering) and the standalone LLIL text parser in this
// package produce the same Instruction stream, so one Processor serves
// both entry points.
package llil

import "github.com/canidlogic/scent/internal/fixed"

// ArgKind identifies which of LLIL's token classes an Arg holds
// (spec.md §6).
type ArgKind int

const (
	ArgName ArgKind = iota
	ArgNumber
	ArgString
	ArgColor
	ArgAbsent
)

// Color is an 8-hex-digit CMYK literal (`%cmyk` token class), channels
// 0-255.
type Color struct {
	C, M, Y, K uint8
}

// Arg is one LLIL instruction operand.
type Arg struct {
	Kind   ArgKind
	Name   string
	Number fixed.Value
	String string
	Color  Color
}

func Name(s string) Arg         { return Arg{Kind: ArgName, Name: s} }
func Number(v fixed.Value) Arg  { return Arg{Kind: ArgNumber, Number: v} }
func Str(s string) Arg          { return Arg{Kind: ArgString, String: s} }
func Col(c Color) Arg           { return Arg{Kind: ArgColor, Color: c} }
func Absent() Arg               { return Arg{Kind: ArgAbsent} }

// Instruction is one line of LLIL: an operation name plus its operands.
// Line is the 1-based source line, used to annotate errors (spec.md §7);
// it is 0 for instructions synthesised in-process by the lowering layer.
type Instruction struct {
	Op   string
	Args []Arg
	Line int
}
