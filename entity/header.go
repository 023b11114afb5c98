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

package entity

import "fmt"

// Dialect identifies which of the two coexisting HLDSL dialects a
// source selects, per spec.md §9. Variant A sources declare "scent" in
// the header; Variant B (embedded) sources declare "scent-embed".
type Dialect int

const (
	DialectA Dialect = iota
	DialectB
)

// Header is the result of parsing the mandatory four-entity HLDSL
// header, plus (for Dialect B) the bound-x/y/w/h meta-commands.
type Header struct {
	Dialect Dialect
	BoundX  int64
	BoundY  int64
	BoundW  int64
	BoundH  int64
}

// ReadHeader parses the mandatory header from the front of l. For
// Dialect B it also consumes the bound-x/y/w/h/body meta-commands that
// must follow (spec.md §6).
func ReadHeader(l *Lexer) (Header, error) {
	if _, err := l.BeginMeta(); err != nil {
		return Header{}, fmt.Errorf("hldsl header: %w", err)
	}
	tok, ok, err := l.MetaToken()
	if err != nil {
		return Header{}, err
	}
	if !ok {
		return Header{}, l.errf("hldsl header: missing dialect token")
	}

	var h Header
	switch tok.Text {
	case "scent":
		h.Dialect = DialectA
	case "scent-embed":
		h.Dialect = DialectB
	default:
		return Header{}, l.errf("hldsl header: unknown dialect token %q", tok.Text)
	}

	tok, ok, err = l.MetaToken()
	if err != nil {
		return Header{}, err
	}
	if !ok || tok.Text != "1.0" {
		return Header{}, l.errf("hldsl header: version must be exactly 1.0, got %q", tok.Text)
	}

	if _, err := l.EndMeta(); err != nil {
		return Header{}, fmt.Errorf("hldsl header: %w", err)
	}

	if h.Dialect == DialectB {
		if err := readBoundMeta(l, "bound-x", &h.BoundX); err != nil {
			return Header{}, err
		}
		if err := readBoundMeta(l, "bound-y", &h.BoundY); err != nil {
			return Header{}, err
		}
		if err := readBoundMeta(l, "bound-w", &h.BoundW); err != nil {
			return Header{}, err
		}
		if err := readBoundMeta(l, "bound-h", &h.BoundH); err != nil {
			return Header{}, err
		}
		if err := readBareMeta(l, "body"); err != nil {
			return Header{}, err
		}
	}

	return h, nil
}

func readBoundMeta(l *Lexer, name string, out *int64) error {
	if _, err := l.BeginMeta(); err != nil {
		return fmt.Errorf("hldsl header: expected %q meta: %w", name, err)
	}
	tok, ok, err := l.MetaToken()
	if err != nil {
		return err
	}
	if !ok || tok.Text != name {
		return l.errf("hldsl header: expected meta command %q", name)
	}
	val, ok, err := l.MetaToken()
	if err != nil {
		return err
	}
	if !ok {
		return l.errf("hldsl header: %q requires a value", name)
	}
	n, err := parseFixedMetaInt(val.Text)
	if err != nil {
		return l.errf("hldsl header: %q value %q invalid: %v", name, val.Text, err)
	}
	*out = n
	if _, err := l.EndMeta(); err != nil {
		return err
	}
	return nil
}

func readBareMeta(l *Lexer, name string) error {
	if _, err := l.BeginMeta(); err != nil {
		return fmt.Errorf("hldsl header: expected %q meta: %w", name, err)
	}
	tok, ok, err := l.MetaToken()
	if err != nil {
		return err
	}
	if !ok || tok.Text != name {
		return l.errf("hldsl header: expected meta command %q", name)
	}
	if _, err := l.EndMeta(); err != nil {
		return err
	}
	return nil
}

// parseFixedMetaInt parses a bound value, which is a fixed-point meta
// token per spec.md §6; the integer part (truncating toward zero) is
// all that ReadHeader's callers currently need.
func parseFixedMetaInt(s string) (int64, error) {
	var neg bool
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var intPart string
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart = s[:i]
			break
		}
	}
	if intPart == "" {
		intPart = s
	}
	if intPart == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	var n int64
	for i := 0; i < len(intPart); i++ {
		c := intPart[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
