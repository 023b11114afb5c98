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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterProducesWellFormedFile(t *testing.T) {
	w := NewWriter()

	pagesRef := w.Alloc()
	catalogRef := w.Alloc()

	pagesDict := NewDict()
	pagesDict.Set("Type", Name("Pages"))
	pagesDict.Set("Kids", Array{})
	pagesDict.Set("Count", Num(0))
	w.Put(pagesRef, pagesDict)

	catalog := NewDict()
	catalog.Set("Type", Name("Catalog"))
	catalog.Set("Pages", pagesRef)
	w.Put(catalogRef, catalog)
	w.SetCatalog(catalogRef)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%PDF-1.7\n"))
	require.Contains(t, out, "1 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")
	require.Contains(t, out, "2 0 obj\n<< /Type /Catalog /Pages 1 0 R >>\nendobj\n")
	require.Contains(t, out, "xref\n0 3\n")
	require.Contains(t, out, "trailer\n")
	require.Contains(t, out, "/Root 2 0 R")
	require.True(t, strings.HasSuffix(out, "%%EOF\n"))
}

func TestWriterStreamObjectGetsLength(t *testing.T) {
	w := NewWriter()
	ref := w.Alloc()
	w.PutStream(ref, &Stream{Dict: NewDict(), Data: []byte("hello")})
	catRef := w.Alloc()
	w.Put(catRef, NewDict())
	w.SetCatalog(catRef)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	require.Contains(t, buf.String(), "/Length 5")
	require.Contains(t, buf.String(), "stream\nhello\nendstream\nendobj\n")
}
