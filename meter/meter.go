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

// package meter decodes readings from the fixed 5 digit, 3 decimal
// point, 7 mode power meter panel. The region tables are pixel tuned
// to one physical rig photographing the panel at 800x600; they are
// configuration, not derived from the image.

package meter

import "power-ocr-meter/lcd"

// Panel dimensions.
const (
	NumDigits = 5
	NumDots   = 3
	NumModes  = 7
)

// DigitNames identify the digit slots, most significant first.
var DigitNames = [NumDigits]string{"1E4", "1E3", "1E2", "1E1", "1E0"}

// DotNames identify the decimal point indicators by the multiplier
// they select.
var DotNames = [NumDots]string{"0.001", "0.01", "0.1"}

// ModeNames are the unit labels of the mode indicators, in display
// enumeration order.
var ModeNames = [NumModes]string{"w", "curr", "volt", "freq", "ct", "ec", "pf"}

// Layout holds the sampling regions of the panel.
type Layout struct {
	Digits [NumDigits]lcd.Rect
	Dots   [NumDots]lcd.Rect
	Modes  [NumModes]lcd.Rect
}

const (
	digitWidth  = 115
	digitHeight = 200
	dotSize     = 24
)

// DefaultLayout returns the region table for the rig.
func DefaultLayout() Layout {
	return Layout{
		Digits: [NumDigits]lcd.Rect{
			{X1: 115, Y1: 200, X2: 115 + digitWidth, Y2: 207 + digitHeight},
			{X1: 236, Y1: 200, X2: 236 + digitWidth, Y2: 207 + digitHeight},
			{X1: 361, Y1: 200, X2: 361 + digitWidth, Y2: 207 + digitHeight},
			{X1: 491, Y1: 200, X2: 491 + digitWidth, Y2: 209 + digitHeight},
			{X1: 618, Y1: 200, X2: 618 + digitWidth, Y2: 210 + digitHeight},
		},
		Dots: [NumDots]lcd.Rect{
			{X1: 341, Y1: 378, X2: 341 + dotSize, Y2: 378 + dotSize},
			{X1: 464, Y1: 379, X2: 464 + dotSize, Y2: 379 + dotSize},
			{X1: 592, Y1: 382, X2: 592 + dotSize, Y2: 382 + dotSize},
		},
		Modes: [NumModes]lcd.Rect{
			{X1: 22, Y1: 196, X2: 112, Y2: 232},  // w
			{X1: 22, Y1: 237, X2: 93, Y2: 276},   // curr
			{X1: 22, Y1: 280, X2: 107, Y2: 317},  // volt
			{X1: 22, Y1: 367, X2: 111, Y2: 401},  // freq
			{X1: 112, Y1: 68, X2: 178, Y2: 117},  // ct
			{X1: 418, Y1: 73, X2: 485, Y2: 125},  // ec
			{X1: 151, Y1: 132, X2: 210, Y2: 177}, // pf
		},
	}
}

// State is the decoded snapshot of the panel for one frame. It is
// overwritten in full every cycle, never merged with a prior cycle.
type State struct {
	Digits [NumDigits]lcd.Segs
	Dots   [NumDots]bool
	Modes  [NumModes]bool
}
