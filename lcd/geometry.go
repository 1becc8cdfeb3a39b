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

import "math"

// Sampling geometry for one digit, expressed as offsets from the centre
// of the digit's bounding box. The values are tuned once for the rig
// and never recalculated.
const (
	segShort   = 20 // narrow dimension of a sampling box
	segLong    = 40 // long dimension of a sampling box
	segLateral = 36 // horizontal offset of the side segments

	segTopY     = -80 // vertical offset of the top segment
	segSideTopY = -42 // vertical offset of the upper side segments
	segSideBotY = 46  // vertical offset of the lower side segments
	segBotY     = 87  // vertical offset of the bottom segment
)

// SegmentRects derives the seven segment sampling boxes for a digit
// bounding box, ordered a..g (top, upper right, lower right, bottom,
// lower left, upper left, middle). The derivation is pure arithmetic
// on the box centre, so repeated calls yield identical boxes.
func SegmentRects(d Rect) [Segments]Rect {
	cx := float64(d.X1) + float64(d.X2-d.X1)/2
	cy := float64(d.Y1) + float64(d.Y2-d.Y1)/2
	return [Segments]Rect{
		S_A: centred(cx, cy, 0, segTopY, segShort, segLong),
		S_B: centred(cx, cy, segLateral, segSideTopY, segLong, segShort),
		S_C: centred(cx, cy, segLateral, segSideBotY, segLong, segShort),
		S_D: centred(cx, cy, 0, segBotY, segShort, segLong),
		S_E: centred(cx, cy, -segLateral, segSideBotY, segLong, segShort),
		S_F: centred(cx, cy, -segLateral, segSideTopY, segLong, segShort),
		S_G: centred(cx, cy, 0, 0, segShort, segLong),
	}
}

// centred builds a w x h box centred at (cx+dx, cy+dy), flooring each
// edge independently so the boxes land on the same pixels the rig was
// tuned against.
func centred(cx, cy float64, dx, dy, w, h float64) Rect {
	x := cx + dx
	y := cy + dy
	return Rect{
		X1: int(math.Floor(x - w/2)),
		Y1: int(math.Floor(y - h/2)),
		X2: int(math.Floor(x + w/2)),
		Y2: int(math.Floor(y + h/2)),
	}
}
