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

import "strings"

// Segments of a 7-segment digit. Each segment is used as a bit in a
// 7 bit mask.
const (
	S_A, M_A = iota, 1 << iota // Top
	S_B, M_B = iota, 1 << iota // Upper right
	S_C, M_C = iota, 1 << iota // Lower right
	S_D, M_D = iota, 1 << iota // Bottom
	S_E, M_E = iota, 1 << iota // Lower left
	S_F, M_F = iota, 1 << iota // Upper left
	S_G, M_G = iota, 1 << iota // Middle
	Segments = iota
)

// Segs is the set of lit segments of one digit, packed as a bit mask
// (bit 0 = a .. bit 6 = g).
type Segs uint8

var segNames = [Segments]string{"a", "b", "c", "d", "e", "f", "g"}

// Set returns the mask with segment s lit.
func (s Segs) Set(seg int) Segs {
	return s | 1<<uint(seg)
}

// Names returns the lit segment names in bit (alphabetical) order.
func (s Segs) Names() []string {
	var n []string
	for i := 0; i < Segments; i++ {
		if s&(1<<uint(i)) != 0 {
			n = append(n, segNames[i])
		}
	}
	return n
}

func (s Segs) String() string {
	return "[" + strings.Join(s.Names(), " ") + "]"
}

// There are 128 possible values in a 7 segment digit; this table maps
// the ten canonical digit patterns to their value. The empty pattern
// deliberately maps to 0: a blank slot on this display is a leading
// zero, and the rig cannot tell the two apart.
const ____ = 0

var digitTable = map[Segs]int{
	____ | ____ | ____ | ____ | ____ | ____ | ____: 0,
	M_A | M_B | M_C | M_D | M_E | M_F | ____: 0,
	____ | M_B | M_C | ____ | ____ | ____ | ____: 1,
	M_A | M_B | ____ | M_D | M_E | ____ | M_G: 2,
	M_A | M_B | M_C | M_D | ____ | ____ | M_G: 3,
	____ | M_B | M_C | ____ | ____ | M_F | M_G: 4,
	M_A | ____ | M_C | M_D | ____ | M_F | M_G: 5,
	M_A | ____ | M_C | M_D | M_E | M_F | M_G: 6,
	M_A | M_B | M_C | ____ | ____ | ____ | ____: 7,
	M_A | M_B | M_C | M_D | M_E | M_F | M_G: 8,
	M_A | M_B | M_C | M_D | ____ | M_F | M_G: 9,
}

// DecodeDigit maps a segment pattern to a digit 0-9. Any pattern not
// in the canonical table (e.g. a transitional set sampled mid-update)
// is unrecognized and returns false. Exact match only; no fuzzy decode.
func DecodeDigit(s Segs) (int, bool) {
	d, ok := digitTable[s]
	return d, ok
}
