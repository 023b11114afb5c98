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

// Package builder implements the HLDSL object builders from spec.md §4.6:
// Dialect A single-op construction (color, transform composition,
// clipping, and the Dialect-A forms of ream/stroke) and Dialect B
// accumulator-based incremental construction (ream, stroke, path,
// style, column), including the nested path/column sub-state-machines.
package builder

import "fmt"

// Kind identifies which object a Partial accumulator holds, for the
// "accumulator holds a partial of kind X" checks in spec.md §4.6.
type Kind int

const (
	KindReam Kind = iota
	KindStroke
	KindPath
	KindStyle
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindReam:
		return "ream"
	case KindStroke:
		return "stroke"
	case KindPath:
		return "path"
	case KindStyle:
		return "style"
	case KindColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Partial is implemented by every accumulator-based builder's partial
// state; BuilderKind reports which kind of object it accumulates.
// Completion is done by the per-kind finish functions (such as
// FinishReam), not by a method of this interface.
type Partial interface {
	BuilderKind() Kind
}

// StateError reports an operation used while the accumulator, or a
// nested sub-machine (path/column), is in the wrong mode.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error: %s: %s", e.Op, e.Msg)
}

// DomainError reports a value that is structurally well-typed but
// violates a semantic contract (geometry, range, enum membership).
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s: %s", e.Op, e.Msg)
}
