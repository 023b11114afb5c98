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
	"fmt"
	"io"
)

// Writer accumulates PDF objects and serialises them, plus a
// cross-reference table and trailer, as a single-pass file (spec.md
// §4.9). It only ever appends: it is built once per document by the
// compiler driver.
type Writer struct {
	objects   []Object
	streams   map[int]*Stream
	nextNum   int
	root      Reference
	pagesRoot Reference
}

// NewWriter returns an empty Writer. Object numbers start at 1; object
// 0 is reserved by the PDF cross-reference convention.
func NewWriter() *Writer {
	w := &Writer{streams: make(map[int]*Stream), nextNum: 1}
	return w
}

// Alloc reserves the next free object number and returns a reference
// to it. The object itself is supplied later via Put or PutStream.
func (w *Writer) Alloc() Reference {
	ref := Reference{Num: w.nextNum, Gen: 0}
	w.nextNum++
	w.objects = append(w.objects, nil)
	return ref
}

// Put stores obj at the location reserved by ref.
func (w *Writer) Put(ref Reference, obj Object) {
	w.objects[ref.Num-1] = obj
}

// PutStream stores a Stream object at the location reserved by ref.
func (w *Writer) PutStream(ref Reference, s *Stream) {
	w.objects[ref.Num-1] = nil
	w.streams[ref.Num] = s
}

// SetCatalog records the document catalog's object reference, written
// into the trailer's /Root entry.
func (w *Writer) SetCatalog(ref Reference) { w.root = ref }

// Write serialises the header, every allocated object, the
// cross-reference table, and the trailer to out.
func (w *Writer) Write(out io.Writer) error {
	bw := &byteCounter{w: out}
	if _, err := fmt.Fprint(bw, "%PDF-1.7\n%\xe2\xe3\xcf\xd3\n"); err != nil {
		return err
	}

	offsets := make([]int64, w.nextNum)
	for num := 1; num < w.nextNum; num++ {
		offsets[num] = bw.n
		if s, ok := w.streams[num]; ok {
			if err := writeStreamObject(bw, num, s); err != nil {
				return err
			}
			continue
		}
		obj := w.objects[num-1]
		if obj == nil {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d 0 obj\n%s\nendobj\n", num, obj.pdfBytes()); err != nil {
			return err
		}
	}

	xrefStart := bw.n
	if _, err := fmt.Fprintf(bw, "xref\n0 %d\n", w.nextNum); err != nil {
		return err
	}
	if _, err := fmt.Fprint(bw, "0000000000 65535 f \n"); err != nil {
		return err
	}
	for num := 1; num < w.nextNum; num++ {
		if _, err := fmt.Fprintf(bw, "%010d 00000 n \n", offsets[num]); err != nil {
			return err
		}
	}

	trailer := NewDict()
	trailer.Set("Size", Num(w.nextNum))
	trailer.Set("Root", w.root)
	if _, err := fmt.Fprintf(bw, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer.pdfBytes(), xrefStart); err != nil {
		return err
	}
	return nil
}

func writeStreamObject(bw *byteCounter, num int, s *Stream) error {
	s.Dict.Set("Length", Num(len(s.Data)))
	if _, err := fmt.Fprintf(bw, "%d 0 obj\n%s\nstream\n", num, s.Dict.pdfBytes()); err != nil {
		return err
	}
	if _, err := bw.Write(s.Data); err != nil {
		return err
	}
	_, err := fmt.Fprint(bw, "\nendstream\nendobj\n")
	return err
}

// byteCounter wraps an io.Writer to track the current file offset, for
// the cross-reference table.
type byteCounter struct {
	w io.Writer
	n int64
}

func (b *byteCounter) Write(p []byte) (int, error) {
	n, err := b.w.Write(p)
	b.n += int64(n)
	return n, err
}
