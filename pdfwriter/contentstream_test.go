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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaintPathOperatorSelection(t *testing.T) {
	cases := []struct {
		stroke, fill, clip, evenOdd bool
		want                        string
	}{
		{stroke: false, fill: false, clip: false, want: "n"},
		{stroke: true, fill: false, clip: false, want: "S"},
		{stroke: false, fill: true, clip: false, want: "f"},
		{stroke: false, fill: true, clip: false, evenOdd: true, want: "f*"},
		{stroke: true, fill: true, clip: false, want: "B"},
		{stroke: true, fill: true, clip: false, evenOdd: true, want: "B*"},
	}
	for _, c := range cases {
		cs := newContentStreamWriter()
		cs.PaintPath(c.stroke, c.fill, c.clip, c.evenOdd)
		got := strings.TrimSpace(string(cs.Bytes()))
		require.Equalf(t, c.want, got, "stroke=%v fill=%v clip=%v evenOdd=%v", c.stroke, c.fill, c.clip, c.evenOdd)
	}
}

func TestPaintPathClipAlwaysEmitsWBeforePaintOperator(t *testing.T) {
	cs := newContentStreamWriter()
	cs.PaintPath(true, false, true, false)
	lines := strings.Split(strings.TrimSpace(string(cs.Bytes())), "\n")
	require.Equal(t, []string{"W", "S"}, lines)
}

func TestPaintPathClipOnlyStillEmitsNoOp(t *testing.T) {
	cs := newContentStreamWriter()
	cs.PaintPath(false, false, true, false)
	lines := strings.Split(strings.TrimSpace(string(cs.Bytes())), "\n")
	require.Equal(t, []string{"W", "n"}, lines)
}

func TestContentStreamOperatorEmission(t *testing.T) {
	cs := newContentStreamWriter()
	cs.Save()
	cs.Matrix(1, 0, 0, 1, 10, 20)
	cs.LineWidth(2.5)
	cs.Restore()

	got := string(cs.Bytes())
	require.Equal(t, "q\n1 0 0 1 10 20 cm\n2.5 w\nQ\n", got)
}

func TestDashOperatorEmission(t *testing.T) {
	cs := newContentStreamWriter()
	cs.Dash([]float64{3, 1}, 0)
	require.Equal(t, "[3 1] 0 d\n", string(cs.Bytes()))
}
