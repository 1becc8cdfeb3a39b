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

// package lcd implements the decode kernel for a fixed-geometry
// 7-segment LCD panel: region geometry, frame binarization, per-region
// on/off evaluation and segment-pattern to digit decoding.
// All regions are configuration constants tuned to one physical rig;
// nothing is derived from image content.

package lcd

import "fmt"

// Rect is an axis-aligned half-open pixel box [X1,X2) x [Y1,Y2).
// A valid Rect has X1 < X2 and Y1 < Y2.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the box.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Area returns the number of pixels covered by the box.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Valid reports whether the box is non-empty.
func (r Rect) Valid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// Intersect clips the box against another, returning the overlap.
// The result may be invalid if the boxes are disjoint.
func (r Rect) Intersect(b Rect) Rect {
	if r.X1 < b.X1 {
		r.X1 = b.X1
	}
	if r.Y1 < b.Y1 {
		r.Y1 = b.Y1
	}
	if r.X2 > b.X2 {
		r.X2 = b.X2
	}
	if r.Y2 > b.Y2 {
		r.Y2 = b.Y2
	}
	return r
}

// Offset returns a new box shifted by x, y.
func (r Rect) Offset(x, y int) Rect {
	return Rect{r.X1 + x, r.Y1 + y, r.X2 + x, r.Y2 + y}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
