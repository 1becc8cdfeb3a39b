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

package monitor

import "time"

// maxIdle bounds the sleep between schedule polls so stop requests
// stay responsive.
const maxIdle = 50 * time.Millisecond

// Scheduler enforces a minimum interval between captures. It is a
// rate-limited poll, not a fixed-rate ticker: drift under system load
// is tolerated, not corrected.
type Scheduler struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewScheduler creates a scheduler with the given minimum interval.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval, now: time.Now}
}

// Next reports whether a capture is due. When due, it returns the
// capture timestamp (sampled once here, reused for the log row so the
// decode and the record carry the same time) and advances the
// schedule.
func (s *Scheduler) Next() (time.Time, bool) {
	now := s.now()
	if now.Sub(s.last) < s.interval {
		return time.Time{}, false
	}
	s.last = now
	return now, true
}

// Idle returns how long to sleep before polling again, capped at
// maxIdle and never past the remaining interval.
func (s *Scheduler) Idle() time.Duration {
	rem := s.interval - s.now().Sub(s.last)
	if rem <= 0 {
		return 0
	}
	if rem > maxIdle {
		return maxIdle
	}
	return rem
}
