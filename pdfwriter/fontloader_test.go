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
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/canidlogic/scent/value"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFontFileParsesValidTrueType(t *testing.T) {
	path := writeFixture(t, "regular.ttf", goregular.TTF)

	fl := NewFontLoader()
	f, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)
	require.Equal(t, value.FontFile, f.Variant)
	require.Equal(t, path, f.Path)
	require.Equal(t, "F1", f.AssignedName)
}

func TestLoadFontFileCachesParsedFont(t *testing.T) {
	path := writeFixture(t, "regular.ttf", goregular.TTF)

	fl := NewFontLoader()
	_, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)

	adv, err := fl.GlyphAdvance(path, 12, 'A')
	require.NoError(t, err)
	require.Greater(t, adv, 0.0)
}

func TestLoadFontFileFallsBackOnGarbageData(t *testing.T) {
	path := writeFixture(t, "garbage.ttf", []byte("not a font file"))

	fl := NewFontLoader()
	_, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)

	adv, err := fl.GlyphAdvance(path, 12, 'A')
	require.NoError(t, err)
	require.GreaterOrEqual(t, adv, 0.0)
}

func TestLoadFontFileMissingFileFails(t *testing.T) {
	fl := NewFontLoader()
	_, err := fl.LoadFontFile(filepath.Join(t.TempDir(), "missing.ttf"), "F1")
	require.Error(t, err)
}

func TestRawDataReturnsTheEmbeddedFontBytes(t *testing.T) {
	path := writeFixture(t, "regular.ttf", goregular.TTF)

	fl := NewFontLoader()
	_, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)

	raw, err := fl.RawData(path)
	require.NoError(t, err)
	require.Equal(t, goregular.TTF, raw)
}

func TestRawDataFallsBackToFallbackBytesOnGarbageData(t *testing.T) {
	path := writeFixture(t, "garbage.ttf", []byte("not a font file"))

	fl := NewFontLoader()
	_, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)

	raw, err := fl.RawData(path)
	require.NoError(t, err)
	require.Equal(t, goregular.TTF, raw)
}

func TestMetricsReportsPositiveAscentAndNegativeDescent(t *testing.T) {
	path := writeFixture(t, "regular.ttf", goregular.TTF)

	fl := NewFontLoader()
	_, err := fl.LoadFontFile(path, "F1")
	require.NoError(t, err)

	ascent, descent, capHeight, widths, err := fl.Metrics(path)
	require.NoError(t, err)
	require.Greater(t, ascent, 0.0)
	require.Less(t, descent, 0.0)
	require.Greater(t, capHeight, 0.0)
	require.Greater(t, widths['A'], 0.0)
}
