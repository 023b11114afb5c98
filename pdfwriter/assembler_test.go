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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/canidlogic/scent/internal/fixed"
	"github.com/canidlogic/scent/llil"
	"github.com/stretchr/testify/require"
)

func mustFixedValue(t *testing.T, v float64) fixed.Value {
	t.Helper()
	f, err := fixed.FromFloat(v)
	require.NoError(t, err)
	return f
}

func fixedNum(t *testing.T, v float64) llil.Arg {
	t.Helper()
	return llil.Number(mustFixedValue(t, v))
}

func TestDocumentWritesASingleTextPagePDF(t *testing.T) {
	doc := NewDocument(NewFontLoader(), NewImageLoader())
	proc := llil.NewProcessor(doc)

	instrs := []llil.Instruction{
		{Op: "font_standard", Args: []llil.Arg{llil.Name("Helvetica")}},
		{Op: "begin_page"},
		{Op: "dim", Args: []llil.Arg{fixedNum(t, 595), fixedNum(t, 842)}},
		{Op: "body"},
		{Op: "begin_text"},
		{Op: "font", Args: []llil.Arg{llil.Name("Helvetica"), fixedNum(t, 12)}},
		{Op: "write", Args: []llil.Arg{llil.Str("Hello")}},
		{Op: "end_text"},
		{Op: "end_page"},
	}
	for _, ins := range instrs {
		require.NoError(t, proc.Exec(ins))
	}
	require.True(t, proc.CanStop())

	var buf bytes.Buffer
	require.NoError(t, doc.Finish(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%PDF-1.7\n"))
	require.Contains(t, out, "/BaseFont /Helvetica")
	require.Contains(t, out, "/Subtype /Type1")
	require.Contains(t, out, "BT\n")
	require.Contains(t, out, "(Hello) Tj")
	require.Contains(t, out, "/Type /Pages")
	require.Contains(t, out, "/Type /Catalog")
}

func TestDocumentEmbedsFontFileWithDescriptorAndWidths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	doc := NewDocument(NewFontLoader(), NewImageLoader())
	proc := llil.NewProcessor(doc)

	instrs := []llil.Instruction{
		{Op: "font_file", Args: []llil.Arg{llil.Name("F1"), llil.Str(path)}},
		{Op: "begin_page"},
		{Op: "dim", Args: []llil.Arg{fixedNum(t, 595), fixedNum(t, 842)}},
		{Op: "body"},
		{Op: "begin_text"},
		{Op: "font", Args: []llil.Arg{llil.Name("F1"), fixedNum(t, 12)}},
		{Op: "write", Args: []llil.Arg{llil.Str("Hello")}},
		{Op: "end_text"},
		{Op: "end_page"},
	}
	for _, ins := range instrs {
		require.NoError(t, proc.Exec(ins))
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Finish(&buf))

	out := buf.String()
	require.Contains(t, out, "/Subtype /TrueType")
	require.Contains(t, out, "/FontDescriptor")
	require.Contains(t, out, "/FontFile2")
	require.Contains(t, out, "/Widths")
	require.Contains(t, out, "/Encoding /WinAnsiEncoding")
}

func TestDocumentRejectsUndeclaredFontAtEndPage(t *testing.T) {
	doc := &Document{
		w:              NewWriter(),
		fonts:          NewFontLoader(),
		images:         NewImageLoader(),
		fontResources:  make(map[string]*fontResource),
		imageResources: make(map[string]*imageResource),
	}
	require.NoError(t, doc.BeginPage())
	require.NoError(t, doc.Dim(mustFixedValue(t, 100), mustFixedValue(t, 100)))
	require.NoError(t, doc.Font("Ghost", mustFixedValue(t, 12)))
	err := doc.EndPage()
	require.Error(t, err)
}
