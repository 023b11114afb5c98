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

// Package fixed implements the fixed-point decimal type used throughout
// the HLDSL/LLIL languages: a decimal with exactly five fractional
// digits, stored as a scaled integer.
package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scale is the number of units per whole integer (10^5, five fractional
// decimal digits).
const Scale = 100000

// Min and Max are the encoded bounds of a valid Value, per spec.md §3:
// [-3 276 700 000, +3 276 700 000].
const (
	Min Value = -3276700000
	Max Value = 3276700000
)

// PromoteMin and PromoteMax bound the integers that may be promoted to
// Value implicitly, per spec.md §3/§4.5.
const (
	PromoteMin = -32767
	PromoteMax = 32767
)

// Value is a fixed-point number: an integer encoding a decimal with
// exactly five fractional digits. The zero Value is 0.0.
type Value int64

// ErrRange is returned when an operation would produce a Value outside
// [Min, Max].
var ErrRange = errors.New("fixed: value out of range")

// FromInt promotes an integer to a Value. It fails unless n is in
// [PromoteMin, PromoteMax], per the integer<->fixed promotion rule.
func FromInt(n int) (Value, error) {
	if n < PromoteMin || n > PromoteMax {
		return 0, fmt.Errorf("fixed: cannot promote %d to fixed-point: %w", n, ErrRange)
	}
	return Value(n) * Scale, nil
}

// Add returns a+b, failing if the result overflows [Min, Max].
func Add(a, b Value) (Value, error) {
	return clamp(int64(a) + int64(b))
}

// Sub returns a-b, failing if the result overflows [Min, Max].
func Sub(a, b Value) (Value, error) {
	return clamp(int64(a) - int64(b))
}

// Mul returns a*b, failing if the result overflows [Min, Max].
func Mul(a, b Value) (Value, error) {
	// a and b are both scaled by Scale; the raw product is scaled by
	// Scale^2, so divide back down once.
	product := (float64(a) * float64(b)) / Scale
	return clamp(int64(math.Round(product)))
}

func clamp(n int64) (Value, error) {
	if n < int64(Min) || n > int64(Max) {
		return 0, fmt.Errorf("fixed: arithmetic result %d out of range: %w", n, ErrRange)
	}
	return Value(n), nil
}

// Float returns the value as a float64, for computations (miterAngle,
// trigonometry) that cannot stay exact.
func (v Value) Float() float64 {
	return float64(v) / Scale
}

// FromFloat rounds a float64 to the nearest Value, failing on overflow.
func FromFloat(f float64) (Value, error) {
	return clamp(int64(math.Round(f * Scale)))
}

// Parse decodes a fixed-point literal matching the grammar
// `[+|-]?d{0,5}(.d{0,5})?` with at least one digit overall (spec.md §4.1).
// Conversion is exact: the decimal digits are read directly into the
// scaled integer, never routed through floating point.
func Parse(s string) (Value, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart, fracPart, hasDot := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart, hasDot = s[:i], s[i+1:], true
	}

	if intPart == "" && (!hasDot || fracPart == "") {
		return 0, fmt.Errorf("fixed: %q is not a valid fixed-point literal", orig)
	}
	if len(intPart) > 5 || len(fracPart) > 5 {
		return 0, fmt.Errorf("fixed: %q has too many digits", orig)
	}
	for _, c := range intPart + fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("fixed: %q contains a non-digit", orig)
		}
	}

	var intVal int64
	if intPart != "" {
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("fixed: %q: %w", orig, err)
		}
		intVal = n
	}

	fracDigits := fracPart + strings.Repeat("0", 5-len(fracPart))
	var fracVal int64
	if fracDigits != "" {
		n, err := strconv.ParseInt(fracDigits, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("fixed: %q: %w", orig, err)
		}
		fracVal = n
	}

	mag := intVal*Scale + fracVal
	if neg {
		mag = -mag
	}
	return clamp(mag)
}

// Format renders v as the shortest decimal with at most five fractional
// digits: trailing zeros are stripped and the decimal point is dropped
// when the value is integral.
func Format(v Value) string {
	neg := v < 0
	mag := int64(v)
	if neg {
		mag = -mag
	}

	intPart := mag / Scale
	fracPart := mag % Scale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(intPart, 10))

	if fracPart != 0 {
		frac := fmt.Sprintf("%05d", fracPart)
		frac = strings.TrimRight(frac, "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// MiterAngle computes 1/sin(a/2) for a in degrees, a in [0.01, 180],
// returning the result as a fixed-point Value. Overflow beyond the
// fixed-point range fails (spec.md §4.1).
func MiterAngle(aDegrees Value) (Value, error) {
	a := aDegrees.Float()
	if a < 0.01 || a > 180 {
		return 0, fmt.Errorf("fixed: miter angle %g out of range [0.01, 180]", a)
	}
	halfRad := (a / 2) * math.Pi / 180
	s := math.Sin(halfRad)
	if s == 0 {
		return 0, fmt.Errorf("fixed: miter angle %g produces a singular miter ratio", a)
	}
	return FromFloat(1 / s)
}
