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
	"bufio"
	"io"
	"strings"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/scenterr"
)

// Parse reads a complete LLIL source (spec.md §6) and returns its
// instruction stream. The mandatory `scent-assembly 1.0` header line is
// consumed and not itself returned as an instruction.
func Parse(r io.Reader) ([]Instruction, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, scenterr.Wrap(scenterr.Syntax, err, "reading LLIL source")
	}

	lineNo := 0
	sawHeader := false
	var out []Instruction
	for _, raw := range lines {
		lineNo++
		text := strings.TrimRight(raw, " \t")
		if text == "" || strings.HasPrefix(text, "'") {
			continue
		}
		if !sawHeader {
			if text != "scent-assembly 1.0" {
				return nil, scenterr.New(scenterr.Syntax, "expected \"scent-assembly 1.0\" header, got %q", text).WithLine(lineNo)
			}
			sawHeader = true
			continue
		}
		if text[0] == ' ' || text[0] == '\t' {
			return nil, scenterr.New(scenterr.Syntax, "leading whitespace is forbidden on instruction lines").WithLine(lineNo)
		}
		instr, err := parseLine(text)
		if err != nil {
			if se, ok := err.(*scenterr.Error); ok {
				return nil, se.WithLine(lineNo)
			}
			return nil, scenterr.Wrap(scenterr.Syntax, err, "parsing LLIL line").WithLine(lineNo)
		}
		instr.Line = lineNo
		out = append(out, instr)
	}
	if !sawHeader {
		return nil, scenterr.New(scenterr.Syntax, "LLIL source has no \"scent-assembly 1.0\" header")
	}
	return out, nil
}

func parseLine(text string) (Instruction, error) {
	toks, err := tokenizeLine(text)
	if err != nil {
		return Instruction{}, err
	}
	if len(toks) == 0 {
		return Instruction{}, scenterr.New(scenterr.Syntax, "empty instruction line")
	}
	op := toks[0]
	args := make([]Arg, 0, len(toks)-1)
	for _, t := range toks[1:] {
		arg, err := classifyToken(t)
		if err != nil {
			return Instruction{}, err
		}
		args = append(args, arg)
	}
	return Instruction{Op: op, Args: args}, nil
}

// tokenizeLine splits an instruction line into whitespace-separated
// tokens, treating a double-quoted run (with `\\`->`\` and `\'`->`"`
// escapes per spec.md §6) as a single string token.
func tokenizeLine(text string) ([]string, error) {
	var toks []string
	i, n := 0, len(text)
	for i < n {
		for i < n && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if text[i] == '"' {
			var b strings.Builder
			b.WriteByte('"')
			i++
			closed := false
			for i < n {
				c := text[i]
				if c == '\\' && i+1 < n {
					switch text[i+1] {
					case '\\':
						b.WriteByte('\\')
						i += 2
						continue
					case '\'':
						b.WriteByte('"')
						i += 2
						continue
					}
				}
				if c == '"' {
					closed = true
					i++
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, scenterr.New(scenterr.Syntax, "unterminated string literal")
			}
			toks = append(toks, b.String())
			continue
		}
		start := i
		for i < n && text[i] != ' ' && text[i] != '\t' {
			i++
		}
		toks = append(toks, text[start:i])
	}
	return toks, nil
}

func classifyToken(t string) (Arg, error) {
	switch {
	case t == "-":
		return Absent(), nil
	case len(t) > 0 && t[0] == '"':
		return Str(t[1:]), nil
	case len(t) == 9 && t[0] == '%':
		c, err := parseColorToken(t)
		if err != nil {
			return Arg{}, err
		}
		return Col(c), nil
	case len(t) > 0 && (t[0] == '+' || t[0] == '-' || (t[0] >= '0' && t[0] <= '9')):
		v, err := fixed.Parse(t)
		if err != nil {
			return Arg{}, scenterr.Wrap(scenterr.Syntax, err, "invalid numeric token %q", t)
		}
		return Number(v), nil
	default:
		return Name(t), nil
	}
}

func parseColorToken(t string) (Color, error) {
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		hi, okHi := hexDigit(t[1+i*2])
		lo, okLo := hexDigit(t[2+i*2])
		if !okHi || !okLo {
			return Color{}, scenterr.New(scenterr.Syntax, "invalid color literal %q", t)
		}
		vals[i] = uint8(hi<<4 | lo)
	}
	return Color{C: vals[0], M: vals[1], Y: vals[2], K: vals[3]}, nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
