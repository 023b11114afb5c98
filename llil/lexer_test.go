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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinimalDocument(t *testing.T) {
	src := `scent-assembly 1.0
' a comment
font_standard Helvetica
begin_page
dim 595 842
body
begin_text
font Helvetica 12
write "Hello, world"
end_text
end_page
`
	instrs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, instrs, 9)
	require.Equal(t, "font_standard", instrs[0].Op)
	require.Equal(t, "Helvetica", instrs[0].Args[0].Name)
	require.Equal(t, "begin_page", instrs[1].Op)

	writeIns := instrs[6]
	require.Equal(t, "write", writeIns.Op)
	require.Equal(t, ArgString, writeIns.Args[0].Kind)
	require.Equal(t, "Hello, world", writeIns.Args[0].String)
}

func TestParseMissingHeaderFails(t *testing.T) {
	_, err := Parse(strings.NewReader("begin_page\n"))
	require.Error(t, err)
}

func TestParseLeadingWhitespaceForbidden(t *testing.T) {
	src := "scent-assembly 1.0\n  begin_page\n"
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParseColorLiteral(t *testing.T) {
	src := "scent-assembly 1.0\nfill_color %00FF80A0\n"
	instrs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	c := instrs[0].Args[0]
	require.Equal(t, ArgColor, c.Kind)
	require.Equal(t, Color{C: 0x00, M: 0xFF, Y: 0x80, K: 0xA0}, c.Color)
}

func TestParseAbsentArgument(t *testing.T) {
	src := "scent-assembly 1.0\nadvance - -\n"
	instrs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, ArgAbsent, instrs[0].Args[0].Kind)
	require.Equal(t, ArgAbsent, instrs[0].Args[1].Kind)
}

func TestParseUnterminatedStringFails(t *testing.T) {
	src := "scent-assembly 1.0\nwrite \"unterminated\n"
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParseNegativeNumber(t *testing.T) {
	src := "scent-assembly 1.0\nmove -10 -20.5\n"
	instrs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, ArgNumber, instrs[0].Args[0].Kind)
}
