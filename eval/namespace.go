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

package eval

import (
	"github.com/canidlogic/scent/internal/validate"
	"github.com/canidlogic/scent/scenterr"
	"github.com/canidlogic/scent/value"
)

type cell struct {
	v        value.Value
	constant bool
}

// Namespace holds both variable and constant bindings in a single
// flat table (spec.md §3). Names must match the identifier grammar and
// redeclaration under any existing name is an error, regardless of
// whether the existing binding is a variable or a constant.
type Namespace struct {
	cells map[string]*cell
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{cells: make(map[string]*cell)}
}

// Declare binds name to v, as a variable (constant=false) or constant
// (constant=true).
func (ns *Namespace) Declare(name string, v value.Value, constant bool) error {
	if !validate.Name(name) {
		return scenterr.New(scenterr.Syntax, "invalid identifier %q", name)
	}
	if _, exists := ns.cells[name]; exists {
		return scenterr.New(scenterr.Name, "%q is already declared", name)
	}
	ns.cells[name] = &cell{v: v, constant: constant}
	return nil
}

// Assign updates an existing variable's value. It fails if name is
// undeclared or bound as a constant.
func (ns *Namespace) Assign(name string, v value.Value) error {
	c, ok := ns.cells[name]
	if !ok {
		return scenterr.New(scenterr.Name, "%q is not declared", name)
	}
	if c.constant {
		return scenterr.New(scenterr.Name, "cannot assign to constant %q", name)
	}
	c.v = v
	return nil
}

// Get returns a copy of the value bound to name. It fails if name is
// undeclared.
func (ns *Namespace) Get(name string) (value.Value, error) {
	c, ok := ns.cells[name]
	if !ok {
		return nil, scenterr.New(scenterr.Name, "%q is not declared", name)
	}
	return c.v, nil
}
