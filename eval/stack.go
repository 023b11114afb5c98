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

// Stack is the interpreter's operand stack with group visibility frames
// (spec.md §3/§4.5). A group frame records the visible-stack depth at
// the point BeginGroup was called; while a frame is open, Pop refuses
// to remove a value pushed before it, and EndGroup checks that exactly
// one value was left above the mark. Top does not check the mark.
type Stack struct {
	vals       []value.Value
	groupMarks []int
}

// Push pushes a value.
func (s *Stack) Push(v value.Value) { s.vals = append(s.vals, v) }

// Len returns the number of values currently on the stack.
func (s *Stack) Len() int { return len(s.vals) }

// Pop removes and returns the top value, failing if the stack is empty
// or if doing so would reach below the innermost open group's mark
// (group visibility, spec.md §3).
func (s *Stack) Pop() (value.Value, error) {
	if len(s.vals) == 0 {
		return nil, scenterr.New(scenterr.State, "stack underflow")
	}
	if n := len(s.groupMarks); n > 0 && len(s.vals) <= s.groupMarks[n-1] {
		return nil, scenterr.New(scenterr.State, "cannot access a value outside the current group")
	}
	v := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return v, nil
}

// Top returns the top value without removing it.
func (s *Stack) Top() (value.Value, error) {
	if len(s.vals) == 0 {
		return nil, scenterr.New(scenterr.State, "stack underflow")
	}
	return s.vals[len(s.vals)-1], nil
}

// BeginGroup records the current depth as a new group frame.
func (s *Stack) BeginGroup() {
	s.groupMarks = append(s.groupMarks, len(s.vals))
}

// EndGroup asserts exactly one value has been pushed since the
// matching BeginGroup and pops the frame, leaving that one value.
func (s *Stack) EndGroup() error {
	if len(s.groupMarks) == 0 {
		return scenterr.New(scenterr.State, "end-group without a matching begin-group")
	}
	mark := s.groupMarks[len(s.groupMarks)-1]
	s.groupMarks = s.groupMarks[:len(s.groupMarks)-1]
	if len(s.vals)-mark != 1 {
		return scenterr.New(scenterr.State, "group must leave exactly one value above its mark, found %d", len(s.vals)-mark)
	}
	return nil
}

// ArrayFrames tracks nested array-counting contexts (spec.md §4.5): each
// open frame counts how many values have been pushed since it opened.
type ArrayFrames struct {
	marks []int
}

// Begin opens a new array frame at the stack's current depth.
func (a *ArrayFrames) Begin(stackLen int) {
	a.marks = append(a.marks, stackLen)
}

// End closes the innermost array frame and returns the count of values
// pushed since it opened.
func (a *ArrayFrames) End(stackLen int) (int, error) {
	if len(a.marks) == 0 {
		return 0, scenterr.New(scenterr.State, "end-array without a matching begin-array")
	}
	mark := a.marks[len(a.marks)-1]
	a.marks = a.marks[:len(a.marks)-1]
	return stackLen - mark, nil
}
