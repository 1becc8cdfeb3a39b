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

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load([]byte("capture:\n  source: frame.jpg\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Capture.Interval != 0.35 {
		t.Errorf("Interval %g, want 0.35", c.Capture.Interval)
	}
	if c.Capture.Resolution != "800x600" {
		t.Errorf("Resolution %s, want 800x600", c.Capture.Resolution)
	}
	if c.Log.Dir != "logs" {
		t.Errorf("Log dir %s, want logs", c.Log.Dir)
	}
	if c.Telemetry.Unit != 247 {
		t.Errorf("Unit %d, want 247", c.Telemetry.Unit)
	}
	if c.Decode.Threshold != 160 || c.Decode.OnCount != 100 {
		t.Errorf("Decode defaults %d/%d, want 160/100", c.Decode.Threshold, c.Decode.OnCount)
	}
}

func TestLoadFull(t *testing.T) {
	conf := `capture:
  source: http://camera.local/still.jpg
  interval: 0.5
  resolution: 1024x768
log:
  dir: /var/log/meter
preview:
  file: /tmp/preview.jpg
server:
  port: 8080
telemetry:
  backend: modbus
  addr: 10.0.0.20:502
  unit: 10
  timeout: 5
  persist: true
thermal:
  soc: cpu-thermal
decode:
  threshold: 180
  oncount: 150
`
	c, err := Load([]byte(conf))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Capture.Interval != 0.5 {
		t.Errorf("Interval %g, want 0.5", c.Capture.Interval)
	}
	if c.Telemetry.Backend != "modbus" || c.Telemetry.Unit != 10 {
		t.Errorf("Telemetry %s/%d", c.Telemetry.Backend, c.Telemetry.Unit)
	}
	if c.Thermal["soc"] != "cpu-thermal" {
		t.Errorf("Thermal map: %v", c.Thermal)
	}
	if c.Server.Port != 8080 {
		t.Errorf("Port %d, want 8080", c.Server.Port)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		conf string
	}{
		{"unknown key", "capture:\n  sources: x\n"},
		{"bad backend", "telemetry:\n  backend: snmp\n"},
		{"bad resolution", "capture:\n  resolution: 800by600\n"},
		{"negative interval", "capture:\n  interval: -1\n"},
		{"bad threshold", "decode:\n  threshold: 300\n"},
	}
	for _, tc := range tests {
		if _, err := Load([]byte(tc.conf)); err == nil {
			t.Errorf("%s: accepted", tc.name)
		}
	}
}

func TestParseResolution(t *testing.T) {
	w, h, err := ParseResolution("800x600")
	if err != nil || w != 800 || h != 600 {
		t.Errorf("Got %dx%d (%v)", w, h, err)
	}
	// Upper case separator is accepted.
	w, h, err = ParseResolution("1024X768")
	if err != nil || w != 1024 || h != 768 {
		t.Errorf("Got %dx%d (%v)", w, h, err)
	}
	for _, bad := range []string{"800", "x600", "ax600"} {
		_, _, err := ParseResolution(bad)
		if err == nil {
			t.Errorf("%s: accepted", bad)
		} else if !strings.Contains(err.Error(), "bad resolution") {
			t.Errorf("%s: error text %q", bad, err)
		}
	}
}
