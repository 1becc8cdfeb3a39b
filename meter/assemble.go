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

package meter

import "strings"

// Unrecognized is the sentinel for a digit slot that failed to decode.
const Unrecognized = -1

// ModeUnknown is reported when no mode indicator is lit.
const ModeUnknown = "unknown"

// Multiplier resolves the decimal multiplier from the dot flags.
// Priority 0.1 > 0.01 > 0.001, default 1.0; exactly one multiplier is
// applied even if several dots are spuriously lit at once.
func Multiplier(dots [NumDots]bool) float64 {
	switch {
	case dots[2]:
		return 0.1
	case dots[1]:
		return 0.01
	case dots[0]:
		return 0.001
	}
	return 1.0
}

// Assemble combines the five decoded digit values and the dot flags
// into the displayed number. If any digit is Unrecognized the reading
// is 0.0; a stale prior value is never substituted.
func Assemble(digits [NumDigits]int, dots [NumDots]bool) float64 {
	n := 0
	for _, d := range digits {
		if d == Unrecognized {
			return 0.0
		}
		n = n*10 + d
	}
	return float64(n) * Multiplier(dots)
}

// ModeLabel joins the lit mode names with '+' in enumeration order.
// Several lit modes are valid (the meter shows compound units); none
// lit yields ModeUnknown.
func ModeLabel(modes [NumModes]bool) string {
	var lit []string
	for i, on := range modes {
		if on {
			lit = append(lit, ModeNames[i])
		}
	}
	if len(lit) == 0 {
		return ModeUnknown
	}
	return strings.Join(lit, "+")
}
