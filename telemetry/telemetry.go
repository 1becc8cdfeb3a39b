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

// package telemetry reads host battery and thermal data to enrich the
// meter log. Every read is best effort: a failed field is simply
// absent from the sample and never blocks or fails the decode cycle.

package telemetry

import "context"

// Value is an optional numeric reading; OK is false when the field
// could not be read this cycle.
type Value struct {
	V  float64
	OK bool
}

// Some wraps a present reading.
func Some(v float64) Value {
	return Value{V: v, OK: true}
}

// Sample holds one cycle's telemetry. Fields are individually
// optional.
type Sample struct {
	VBat Value // Battery voltage, mV
	VIn  Value // Input voltage, mV
	IOut Value // Output current, mA
	Soc  Value // SoC temperature, C
	Rp1  Value // RP1 temperature, C
	Pmic Value // PMIC temperature, C
}

// PowerReadings are the fields served by the power controller.
type PowerReadings struct {
	VBat Value
	VIn  Value
	IOut Value
}

// PowerSource reads the power controller. Implementations are selected
// once at startup; callers are unaware of which backend serves the
// values.
type PowerSource interface {
	// Poll reads the controller. Fields that could not be read are
	// returned absent; Poll itself never fails the cycle.
	Poll(ctx context.Context) PowerReadings
	// PersistPolicy asks the controller to store its power policy
	// across reboots. Best effort, invoked once at startup.
	PersistPolicy(ctx context.Context) error
}
