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
	"fmt"
	"image"
	"strings"

	"power-ocr-meter/lcd"
)

// Reader decodes one panel reading per captured frame.
type Reader struct {
	layout    Layout
	segs      [NumDigits][lcd.Segments]lcd.Rect
	threshold uint8 // binarize luminance threshold
	onCount   int   // dark pixel count for a lit region
	state     State
}

// Result is the outcome of decoding one frame.
type Result struct {
	Value  float64  // Assembled reading, 0.0 if any digit failed
	Mode   string   // '+' joined mode labels, or "unknown"
	Errors []string // One entry per unrecognized digit, in slot order
}

// NewReader creates a reader for the given layout. The segment
// sampling boxes are derived once from the digit boxes.
func NewReader(l Layout, threshold uint8, onCount int) *Reader {
	r := &Reader{layout: l, threshold: threshold, onCount: onCount}
	for i, d := range l.Digits {
		r.segs[i] = lcd.SegmentRects(d)
	}
	return r
}

// Read binarizes the frame, evaluates every panel region, decodes the
// digit patterns and assembles the final reading. Unrecognized digit
// patterns are aggregated as errors; the cycle always produces a
// Result.
func (r *Reader) Read(img *image.Gray) Result {
	bin := lcd.Binarize(img, r.threshold)

	// Rebuild the whole snapshot from this frame.
	for i, rc := range r.layout.Dots {
		r.state.Dots[i] = lcd.RegionOn(bin, rc, r.onCount)
	}
	for i, rc := range r.layout.Modes {
		r.state.Modes[i] = lcd.RegionOn(bin, rc, r.onCount)
	}
	for i := range r.layout.Digits {
		var s lcd.Segs
		for seg, rc := range r.segs[i] {
			if lcd.RegionOn(bin, rc, r.onCount) {
				s = s.Set(seg)
			}
		}
		r.state.Digits[i] = s
	}

	var res Result
	var digits [NumDigits]int
	for i, s := range r.state.Digits {
		d, ok := lcd.DecodeDigit(s)
		if !ok {
			d = Unrecognized
			res.Errors = append(res.Errors,
				fmt.Sprintf("digit %s: unrecognized segment pattern %s", DigitNames[i], s))
		}
		digits[i] = d
	}
	if len(res.Errors) > 0 {
		res.Errors = append(res.Errors,
			fmt.Sprintf("%d of %d digits failed to decode, reading zeroed", len(res.Errors), NumDigits))
	}
	res.Value = Assemble(digits, r.state.Dots)
	res.Mode = ModeLabel(r.state.Modes)
	return res
}

// State returns the snapshot from the last Read.
func (r *Reader) State() State {
	return r.state
}

// Overlay renders the binarized frame with every sampling region and
// its evaluated state marked, for rig alignment.
func (r *Reader) Overlay(img *image.Gray, stamp string) image.Image {
	bin := lcd.Binarize(img, r.threshold)
	var marks []lcd.Marked
	for i, rc := range r.layout.Digits {
		marks = append(marks, lcd.Marked{R: rc})
		for seg, sc := range r.segs[i] {
			marks = append(marks, lcd.Marked{R: sc, On: r.state.Digits[i]&(1<<uint(seg)) != 0})
		}
	}
	for i, rc := range r.layout.Dots {
		marks = append(marks, lcd.Marked{R: rc, On: r.state.Dots[i]})
	}
	for i, rc := range r.layout.Modes {
		marks = append(marks, lcd.Marked{R: rc, On: r.state.Modes[i]})
	}
	return lcd.Annotate(bin, marks, stamp)
}

// JoinErrors flattens a cycle's error list for the log row.
func JoinErrors(errs []string) string {
	return strings.Join(errs, " | ")
}
