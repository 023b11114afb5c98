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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/canidlogic/scent/value"
	"github.com/stretchr/testify/require"
)

func writePNGFixture(t *testing.T, name string, w, h int, fill color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadImageReportsDimensionsAndColorModel(t *testing.T) {
	path := writePNGFixture(t, "swatch.png", 20, 10, color.RGBA{R: 255, A: 255})

	il := NewImageLoader()
	img, err := il.LoadImage(path, value.ImagePNG)
	require.NoError(t, err)
	require.Equal(t, 20, img.Width)
	require.Equal(t, 10, img.Height)
	require.Equal(t, value.ImagePNG, img.Format)
	require.Equal(t, value.ColorRGB, img.ColorModel)
}

func TestLoadImageCachesDecodedData(t *testing.T) {
	path := writePNGFixture(t, "swatch.png", 4, 4, color.RGBA{G: 255, A: 255})

	il := NewImageLoader()
	_, err := il.LoadImage(path, value.ImagePNG)
	require.NoError(t, err)

	pix, ok := il.Pixels(path)
	require.True(t, ok)
	require.Equal(t, 4, pix.Bounds().Dx())
}

func TestLoadImageMissingFileFails(t *testing.T) {
	il := NewImageLoader()
	_, err := il.LoadImage(filepath.Join(t.TempDir(), "missing.png"), value.ImagePNG)
	require.Error(t, err)
}

func TestLoadImageWrongFormatFails(t *testing.T) {
	path := writePNGFixture(t, "swatch.png", 4, 4, color.RGBA{B: 255, A: 255})

	il := NewImageLoader()
	_, err := il.LoadImage(path, value.ImageJPEG)
	require.Error(t, err)
}
