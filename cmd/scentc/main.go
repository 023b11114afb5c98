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

// Command scentc compiles an HLDSL or LLIL source file into a PDF. The
// input kind is auto-detected from its header: a meta-entity header
// beginning with `scent`/`scent-embed` is HLDSL; a plain first line of
// `scent-assembly 1.0` is LLIL (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/canidlogic/scent/entity"
	"github.com/canidlogic/scent/eval"
	"github.com/canidlogic/scent/llil"
	"github.com/canidlogic/scent/lowering"
	"github.com/canidlogic/scent/pdfwriter"
	"github.com/canidlogic/scent/value"
)

func main() {
	dump := flag.Bool("dump", false, "for an LLIL source, print its parsed instruction stream instead of writing a PDF (an HLDSL source prints a note only)")
	out := flag.String("o", "", "output PDF path (default: input path with .pdf extension)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scentc [-dump] [-o out.pdf] <source>")
		os.Exit(2)
	}
	src := flag.Arg(0)

	data, err := os.ReadFile(src)
	if err != nil {
		log.Fatalf("scentc: %v", err)
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"
	}

	if isLLILSource(string(data)) {
		if err := compileLLIL(string(data), outPath, *dump); err != nil {
			log.Fatalf("scentc: %v", err)
		}
		return
	}
	if err := compileHLDSL(string(data), outPath, *dump); err != nil {
		log.Fatalf("scentc: %v", err)
	}
}

// isLLILSource reports whether src's first non-blank line is the LLIL
// header, as opposed to HLDSL's meta-entity header.
func isLLILSource(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line == "scent-assembly 1.0"
	}
	return false
}

func compileLLIL(src, outPath string, dump bool) error {
	instrs, err := llil.Parse(strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("parsing LLIL source: %w", err)
	}
	if dump {
		dumpInstructions(instrs)
		return nil
	}
	doc, proc := newDocument()
	for _, ins := range instrs {
		if err := proc.Exec(ins); err != nil {
			return fmt.Errorf("executing LLIL: %w", err)
		}
	}
	if !proc.CanStop() {
		return fmt.Errorf("LLIL source ended with an open page or no pages defined")
	}
	return writeOut(doc, outPath)
}

func compileHLDSL(src, outPath string, dump bool) error {
	l := entity.NewLexer(src)
	header, err := entity.ReadHeader(l)
	if err != nil {
		return fmt.Errorf("reading HLDSL header: %w", err)
	}

	doc, proc := newDocument()
	lw := lowering.New(proc, doc)
	fl := pdfwriter.NewFontLoader()
	il := pdfwriter.NewImageLoader()
	res := &resourceLoader{fonts: fl, images: il}

	e := eval.New(header.Dialect, lw, res)
	if err := e.Eval(l); err != nil {
		return fmt.Errorf("evaluating HLDSL program: %w", err)
	}
	if err := e.Finish(); err != nil {
		return fmt.Errorf("HLDSL program did not end cleanly: %w", err)
	}
	if dump {
		fmt.Println("(HLDSL programs are lowered directly; rerun with an LLIL source to dump instructions)")
		return nil
	}
	return writeOut(doc, outPath)
}

func newDocument() (*pdfwriter.Document, *llil.Processor) {
	doc := pdfwriter.NewDocument(pdfwriter.NewFontLoader(), pdfwriter.NewImageLoader())
	return doc, llil.NewProcessor(doc)
}

func writeOut(doc *pdfwriter.Document, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := doc.Finish(f); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func dumpInstructions(instrs []llil.Instruction) {
	for _, ins := range instrs {
		fmt.Printf("%s", ins.Op)
		for _, a := range ins.Args {
			fmt.Printf(" %s", formatArg(a))
		}
		fmt.Println()
	}
}

func formatArg(a llil.Arg) string {
	switch a.Kind {
	case llil.ArgName:
		return a.Name
	case llil.ArgString:
		return fmt.Sprintf("%q", a.String)
	case llil.ArgColor:
		return fmt.Sprintf("%%%02X%02X%02X%02X", a.Color.C, a.Color.M, a.Color.Y, a.Color.K)
	case llil.ArgAbsent:
		return "-"
	default:
		return fmt.Sprintf("%v", a.Number)
	}
}

// resourceLoader implements eval.ResourceLoader by delegating to the
// pdfwriter font/image loaders.
type resourceLoader struct {
	fonts  *pdfwriter.FontLoader
	images *pdfwriter.ImageLoader
}

func (r *resourceLoader) LoadFontFile(path, assignedName string) (*value.Font, error) {
	return r.fonts.LoadFontFile(path, assignedName)
}

func (r *resourceLoader) LoadImage(path string, format value.ImageFormat) (*value.Image, error) {
	return r.images.LoadImage(path, format)
}
