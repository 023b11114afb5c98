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

// Package pdfwriter implements the PDF writer adapter (spec.md §4.9,
// component C9): font and image resource loaders, the content-stream
// writer, and a minimal object model and file writer. It implements
// llil.Assembler, so it is the strategy llil.Processor dispatches
// validated instructions into.
package pdfwriter

import (
	"fmt"
	"strings"
)

// Object is anything that can serialise itself as a PDF object body.
type Object interface {
	pdfBytes() string
}

// Name is a PDF name object, written as /Name.
type Name string

func (n Name) pdfBytes() string { return "/" + escapeName(string(n)) }

func escapeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '/' || r == '(' || r == ')' || r == '#' || r <= ' ' || r > '~':
			fmt.Fprintf(&b, "#%02X", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Num is a PDF numeric object.
type Num float64

func (n Num) pdfBytes() string {
	s := fmt.Sprintf("%.6f", float64(n))
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

// Bool is a PDF boolean object.
type Bool bool

func (b Bool) pdfBytes() string {
	if b {
		return "true"
	}
	return "false"
}

// Str is a PDF literal string object, written as (escaped text).
type Str string

func (s Str) pdfBytes() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, c := range []byte(s) {
		switch c {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// Array is a PDF array object.
type Array []Object

func (a Array) pdfBytes() string {
	parts := make([]string, len(a))
	for i, o := range a {
		parts[i] = o.pdfBytes()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dict is a PDF dictionary object. Keys are written in first-insertion
// order, tracked in the order slice, to keep output deterministic.
type Dict struct {
	order []Name
	m     map[Name]Object
}

// NewDict returns an empty Dict.
func NewDict() *Dict { return &Dict{m: make(map[Name]Object)} }

// Set assigns key to val, preserving first-insertion order.
func (d *Dict) Set(key Name, val Object) {
	if _, ok := d.m[key]; !ok {
		d.order = append(d.order, key)
	}
	d.m[key] = val
}

func (d *Dict) pdfBytes() string {
	var b strings.Builder
	b.WriteString("<< ")
	for _, k := range d.order {
		b.WriteString(k.pdfBytes())
		b.WriteByte(' ')
		b.WriteString(d.m[k].pdfBytes())
		b.WriteByte(' ')
	}
	b.WriteString(">>")
	return b.String()
}

// Reference is an indirect reference to an object allocated by Writer.
type Reference struct {
	Num int
	Gen int
}

func (r Reference) pdfBytes() string { return fmt.Sprintf("%d %d R", r.Num, r.Gen) }

// Rectangle is a PDF rectangle array [llx lly urx ury].
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (r Rectangle) pdfBytes() string {
	return Array{Num(r.LLx), Num(r.LLy), Num(r.URx), Num(r.URy)}.pdfBytes()
}

// Stream is an indirect object with a dictionary and raw byte content;
// /Length is filled in automatically when written.
type Stream struct {
	Dict *Dict
	Data []byte
}
