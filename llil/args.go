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

func stateErr(ins Instruction, format string, args ...any) error {
	return scenterr.New(scenterr.State, format, args...).WithLine(ins.Line)
}

func argCountErr(ins Instruction, want int) error {
	return scenterr.New(scenterr.Syntax, "%s: expected %d argument(s), got %d", ins.Op, want, len(ins.Args)).WithLine(ins.Line)
}

func argTypeErr(ins Instruction, idx int, want string) error {
	return scenterr.New(scenterr.Type, "%s: argument %d must be a %s", ins.Op, idx, want).WithLine(ins.Line)
}

func wantName(ins Instruction, idx int) (string, error) {
	if idx >= len(ins.Args) || ins.Args[idx].Kind != ArgName {
		return "", argTypeErr(ins, idx, "name")
	}
	return ins.Args[idx].Name, nil
}

func wantString(ins Instruction, idx int) (string, error) {
	if idx >= len(ins.Args) || ins.Args[idx].Kind != ArgString {
		return "", argTypeErr(ins, idx, "string")
	}
	return ins.Args[idx].String, nil
}

func wantNumber(ins Instruction, idx int) (fixed.Value, error) {
	if idx >= len(ins.Args) || ins.Args[idx].Kind != ArgNumber {
		return fixed.Value(0), argTypeErr(ins, idx, "number")
	}
	return ins.Args[idx].Number, nil
}

func wantColor(ins Instruction, idx int) (Color, error) {
	if idx >= len(ins.Args) || ins.Args[idx].Kind != ArgColor {
		return Color{}, argTypeErr(ins, idx, "color")
	}
	return ins.Args[idx].Color, nil
}

func nameAndString(ins Instruction) (string, string, error) {
	if len(ins.Args) != 2 {
		return "", "", argCountErr(ins, 2)
	}
	name, err := wantName(ins, 0)
	if err != nil {
		return "", "", err
	}
	s, err := wantString(ins, 1)
	if err != nil {
		return "", "", err
	}
	return name, s, nil
}

func oneNumber(ins Instruction) (fixed.Value, error) {
	if len(ins.Args) != 1 {
		return fixed.Value(0), argCountErr(ins, 1)
	}
	return wantNumber(ins, 0)
}

func twoNumbers(ins Instruction) (fixed.Value, fixed.Value, error) {
	if len(ins.Args) != 2 {
		return fixed.Value(0), fixed.Value(0), argCountErr(ins, 2)
	}
	a, err := wantNumber(ins, 0)
	if err != nil {
		return fixed.Value(0), fixed.Value(0), err
	}
	b, err := wantNumber(ins, 1)
	if err != nil {
		return fixed.Value(0), fixed.Value(0), err
	}
	return a, b, nil
}

func fourNumbers(ins Instruction) (fixed.Value, fixed.Value, fixed.Value, fixed.Value, error) {
	if len(ins.Args) != 4 {
		return fixed.Value(0), fixed.Value(0), fixed.Value(0), fixed.Value(0), argCountErr(ins, 4)
	}
	nums, err := numbers(ins, 0, 4)
	if err != nil {
		return fixed.Value(0), fixed.Value(0), fixed.Value(0), fixed.Value(0), err
	}
	return nums[0], nums[1], nums[2], nums[3], nil
}

// numbers validates and returns ins.Args[start:end] as a []fixed.Value.
func numbers(ins Instruction, start, end int) ([]fixed.Value, error) {
	if end > len(ins.Args) {
		return nil, argCountErr(ins, end)
	}
	out := make([]fixed.Value, 0, end-start)
	for i := start; i < end; i++ {
		v, err := wantNumber(ins, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// boolFlag reads a name argument of "true"/"false".
func boolFlag(ins Instruction, idx int) (bool, error) {
	name, err := wantName(ins, idx)
	if err != nil {
		return false, err
	}
	switch name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, argTypeErr(ins, idx, "boolean (true/false)")
	}
}
