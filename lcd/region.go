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

import "image"

// DefaultOnCount is the absolute dark-pixel count at which a region is
// considered lit. An absolute count, not a percentage, so it must be
// retuned if region sizes change.
const DefaultOnCount = 100

// CountDark returns the number of non-white pixels inside r on a
// binarized frame. The count is computed as area minus white pixels,
// which stays correct when noise dims white pixels without fully
// flipping the dark ones.
func CountDark(bin *image.Gray, r Rect) int {
	b := bin.Bounds()
	c := r.Intersect(Rect{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y})
	if !c.Valid() {
		return 0
	}
	var whites int
	for y := c.Y1; y < c.Y2; y++ {
		i := bin.PixOffset(c.X1, y)
		for x := 0; x < c.Width(); x++ {
			if bin.Pix[i+x] == white {
				whites++
			}
		}
	}
	return c.Area() - whites
}

// RegionOn reports whether the region holds at least onCount dark
// pixels. Always total; there is no error path.
func RegionOn(bin *image.Gray, r Rect, onCount int) bool {
	return CountDark(bin, r) >= onCount
}
