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

package builder

import "github.com/canidlogic/scent/value"

// BuildSyntheticFont applies alterations over a base font, collapsing
// nested synthetic fonts to a single override layer: a derived font's
// alterations win, undefined alterations inherit from the immediate
// base, and chains of synthetic bases collapse (spec.md §3, §9).
func BuildSyntheticFont(base *value.Font, alter value.FontAlterations) *value.Font {
	effectiveBase := base
	merged := alter
	if base.Variant == value.FontSynthetic {
		effectiveBase = base.Base
		merged = mergeAlterations(base.Alterations, alter)
	}
	return &value.Font{
		Variant:     value.FontSynthetic,
		Base:        effectiveBase,
		Alterations: merged,
	}
}

// mergeAlterations combines a base synthetic font's alterations with a
// derived layer's alterations: any field the derived layer sets wins;
// otherwise the base layer's value is inherited.
func mergeAlterations(base, derived value.FontAlterations) value.FontAlterations {
	out := base
	if derived.HScale != nil {
		out.HScale = derived.HScale
	}
	if derived.Oblique != nil {
		out.Oblique = derived.Oblique
	}
	if derived.Boldness != nil {
		out.Boldness = derived.Boldness
	}
	if derived.SmallCaps != nil {
		out.SmallCaps = derived.SmallCaps
	}
	if derived.CharSpacing != nil {
		out.CharSpacing = derived.CharSpacing
	}
	return out
}
