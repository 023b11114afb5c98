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

package pdfwriter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumTrimsTrailingZeros(t *testing.T) {
	require.Equal(t, "1", Num(1).pdfBytes())
	require.Equal(t, "1.5", Num(1.5).pdfBytes())
	require.Equal(t, "0", Num(0).pdfBytes())
	require.Equal(t, "-12.25", Num(-12.25).pdfBytes())
}

func TestNameEscapesSpecialCharacters(t *testing.T) {
	require.Equal(t, "/Plain", Name("Plain").pdfBytes())
	require.Equal(t, "/A#23B", Name("A#B").pdfBytes())
	require.Equal(t, "/With#20Space", Name("With Space").pdfBytes())
}

func TestStrEscapesParensAndBackslash(t *testing.T) {
	require.Equal(t, `(a\(b\)c)`, Str("a(b)c").pdfBytes())
	require.Equal(t, `(back\\slash)`, Str(`back\slash`).pdfBytes())
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("Zebra", Num(1))
	d.Set("Apple", Num(2))
	d.Set("Zebra", Num(3)) // overwrite, should not move position
	require.Equal(t, "<< /Zebra 3 /Apple 2 >>", d.pdfBytes())
}

func TestArrayJoinsWithSpaces(t *testing.T) {
	a := Array{Num(1), Num(2), Name("X")}
	require.Equal(t, "[1 2 /X]", a.pdfBytes())
}

func TestReferencePdfBytes(t *testing.T) {
	require.Equal(t, "3 0 R", Reference{Num: 3, Gen: 0}.pdfBytes())
}

func TestRectanglePdfBytes(t *testing.T) {
	r := Rectangle{LLx: 0, LLy: 0, URx: 595, URy: 842}
	require.Equal(t, "[0 0 595 842]", r.pdfBytes())
}
