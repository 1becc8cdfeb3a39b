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

import (
	"math"
	"testing"
)

// All 8 dot combinations resolve per the priority table
// 0.1 > 0.01 > 0.001 > 1.0. Dots are ordered [0.001, 0.01, 0.1].
func TestMultiplier(t *testing.T) {
	tests := []struct {
		dots [NumDots]bool
		want float64
	}{
		{[NumDots]bool{false, false, false}, 1.0},
		{[NumDots]bool{true, false, false}, 0.001},
		{[NumDots]bool{false, true, false}, 0.01},
		{[NumDots]bool{true, true, false}, 0.01},
		{[NumDots]bool{false, false, true}, 0.1},
		{[NumDots]bool{true, false, true}, 0.1},
		{[NumDots]bool{false, true, true}, 0.1},
		{[NumDots]bool{true, true, true}, 0.1},
	}
	for _, tc := range tests {
		if got := Multiplier(tc.dots); got != tc.want {
			t.Errorf("Dots %v: got %g, want %g", tc.dots, got, tc.want)
		}
	}
}

func TestAssemble(t *testing.T) {
	var noDots [NumDots]bool
	if got := Assemble([NumDigits]int{1, 2, 3, 4, 5}, noDots); got != 12345 {
		t.Errorf("Expected 12345, got %g", got)
	}
	got := Assemble([NumDigits]int{1, 2, 3, 4, 5}, [NumDots]bool{false, true, false})
	if math.Abs(got-123.45) > 1e-9 {
		t.Errorf("Expected 123.45, got %g", got)
	}
	if got := Assemble([NumDigits]int{0, 0, 0, 0, 0}, noDots); got != 0 {
		t.Errorf("Expected 0, got %g", got)
	}
}

// Any unrecognized digit forces the reading to exactly 0.0.
func TestAssembleZeroing(t *testing.T) {
	for slot := 0; slot < NumDigits; slot++ {
		digits := [NumDigits]int{9, 9, 9, 9, 9}
		digits[slot] = Unrecognized
		if got := Assemble(digits, [NumDots]bool{false, false, true}); got != 0.0 {
			t.Errorf("Slot %d unrecognized: got %g, want 0.0", slot, got)
		}
	}
}

func TestModeLabel(t *testing.T) {
	var modes [NumModes]bool
	if got := ModeLabel(modes); got != "unknown" {
		t.Errorf("Expected unknown, got %s", got)
	}
	modes[0] = true // w
	if got := ModeLabel(modes); got != "w" {
		t.Errorf("Expected w, got %s", got)
	}
	modes[6] = true // pf
	if got := ModeLabel(modes); got != "w+pf" {
		t.Errorf("Expected w+pf, got %s", got)
	}
	modes[2] = true // volt
	if got := ModeLabel(modes); got != "w+volt+pf" {
		t.Errorf("Expected w+volt+pf, got %s", got)
	}
}
