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

// Package value implements the HLDSL value model (spec.md §3): a closed,
// immutable tagged sum of null, integer, fixed-point, atom, string,
// dictionary, and the ten object kinds (Ream through Clipping in the
// Kind list below).
//
// Values are immutable once constructed: no method on any type in this
// package mutates its receiver. Object kinds that are assembled
// incrementally (Ream, Stroke, Path, Style, Column) are built from
// separate, mutable partial types in package builder and converted to
// the immutable Value here only on completion.
package value

import "github.com/canidlogic/scent/internal/fixed"

// Value is implemented by every HLDSL value kind; Kind reports which
// alternative it is. The kinds are defined in this file and in
// objects.go.
type Value interface {
	Kind() Kind
}

// Kind identifies which alternative of the Value sum a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFixed
	KindAtom
	KindString
	KindDict
	KindReam
	KindColor
	KindStroke
	KindFont
	KindImage
	KindPath
	KindTransform
	KindColumn
	KindStyle
	KindClipping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFixed:
		return "fixed"
	case KindAtom:
		return "atom"
	case KindString:
		return "string"
	case KindDict:
		return "dict"
	case KindReam:
		return "ream"
	case KindColor:
		return "color"
	case KindStroke:
		return "stroke"
	case KindFont:
		return "font"
	case KindImage:
		return "image"
	case KindPath:
		return "path"
	case KindTransform:
		return "transform"
	case KindColumn:
		return "column"
	case KindStyle:
		return "style"
	case KindClipping:
		return "clipping"
	default:
		return "unknown"
	}
}

// Null is the unit value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Integer is a 32-bit signed integer value.
type Integer int32

func (Integer) Kind() Kind { return KindInteger }

// Fixed is a fixed-point decimal value.
type Fixed fixed.Value

func (Fixed) Kind() Kind { return KindFixed }

// Atom is an interned identifier drawn from a closed set recognised at
// the use site (spec.md §9, open question 4: unknown atoms are a
// DomainError raised when the atom is consumed, not at tokenisation).
type Atom string

func (Atom) Kind() Kind { return KindAtom }

// String is validated HLDSL content text.
type String string

func (String) Kind() Kind { return KindString }

// Dict is an unordered mapping from unique atoms to values.
type Dict map[Atom]Value

func (Dict) Kind() Kind { return KindDict }

// AsFixed coerces v to a fixed.Value, promoting an in-range Integer per
// the promotion rule in spec.md §4.5. It returns ok=false for any other
// kind or an out-of-range Integer.
func AsFixed(v Value) (fixed.Value, bool) {
	switch x := v.(type) {
	case Fixed:
		return fixed.Value(x), true
	case Integer:
		f, err := fixed.FromInt(int(x))
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
