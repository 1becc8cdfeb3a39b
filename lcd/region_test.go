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
	"testing"
)

func whiteFrame(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	return g
}

func TestCountDark(t *testing.T) {
	g := whiteFrame(20, 20)
	r := Rect{2, 2, 12, 12}
	if n := CountDark(g, r); n != 0 {
		t.Fatalf("Expected 0 dark pixels, got %d", n)
	}
	// Blacken 99 pixels inside the region.
	n := 0
	for y := 2; y < 12 && n < 99; y++ {
		for x := 2; x < 12 && n < 99; x++ {
			g.Pix[g.PixOffset(x, y)] = 0
			n++
		}
	}
	if n := CountDark(g, r); n != 99 {
		t.Fatalf("Expected 99 dark pixels, got %d", n)
	}
	if RegionOn(g, r, 100) {
		t.Errorf("Region reported on at 99 dark pixels")
	}
	g.Pix[g.PixOffset(11, 11)] = 0
	if !RegionOn(g, r, 100) {
		t.Errorf("Region reported off at 100 dark pixels")
	}
}

// Darkness is counted as area minus white, so a dimmed pixel that is
// not fully white still reads as dark.
func TestCountDarkDeficit(t *testing.T) {
	g := whiteFrame(10, 10)
	g.Pix[g.PixOffset(5, 5)] = 254
	if n := CountDark(g, Rect{0, 0, 10, 10}); n != 1 {
		t.Errorf("Expected 1 dark pixel, got %d", n)
	}
}

func TestCountDarkClipped(t *testing.T) {
	g := whiteFrame(10, 10)
	// Region partly outside the frame only counts the overlap.
	if n := CountDark(g, Rect{-5, -5, 5, 5}); n != 0 {
		t.Errorf("Expected 0 dark pixels, got %d", n)
	}
	for i := range g.Pix {
		g.Pix[i] = 0
	}
	if n := CountDark(g, Rect{-5, -5, 5, 5}); n != 25 {
		t.Errorf("Expected 25 dark pixels, got %d", n)
	}
	if n := CountDark(g, Rect{20, 20, 30, 30}); n != 0 {
		t.Errorf("Expected 0 dark pixels outside frame, got %d", n)
	}
}
