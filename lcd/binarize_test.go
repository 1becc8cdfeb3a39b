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
	"testing"
)

func TestBinarize(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 1))
	for i, v := range []uint8{0, 159, 160, 255} {
		g.Pix[i] = v
	}
	bin := Binarize(g, DefaultThreshold)
	want := []uint8{0, 0, 255, 255}
	for i, w := range want {
		if bin.Pix[i] != w {
			t.Errorf("Pixel %d: got %d, want %d", i, bin.Pix[i], w)
		}
	}
	// The input frame is untouched.
	if g.Pix[1] != 159 {
		t.Errorf("Source frame modified")
	}
}

func TestToGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	if ToGray(g) != g {
		t.Errorf("Gray input should pass through")
	}
	c := image.NewRGBA(image.Rect(0, 0, 2, 1))
	c.Set(0, 0, color.RGBA{255, 255, 255, 255})
	c.Set(1, 0, color.RGBA{0, 0, 0, 255})
	conv := ToGray(c)
	if conv.GrayAt(0, 0).Y != 255 || conv.GrayAt(1, 0).Y != 0 {
		t.Errorf("Conversion wrong: %v, %v", conv.GrayAt(0, 0), conv.GrayAt(1, 0))
	}
}
