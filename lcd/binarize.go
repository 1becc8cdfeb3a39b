// Copyright 2025 The power-ocr-meter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lcd

import (
	"image"
	"image/color"
)

// DefaultThreshold is the luminance cut tuned so the LCD strokes read
// black against the backlit panel.
const DefaultThreshold = 160

const (
	black = 0
	white = 255
)

// Binarize thresholds a grayscale frame into a binary mask of the same
// size: pixels at or above threshold become white (255), the rest
// black (0). A fixed per-pixel threshold only; no adaptive statistics.
func Binarize(src *image.Gray, threshold uint8) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		oi := out.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			if src.Pix[si+x] >= threshold {
				out.Pix[oi+x] = white
			}
		}
	}
	return out
}

// ToGray converts an arbitrary image to grayscale.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.SetGray(x, y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
		}
	}
	return g
}
