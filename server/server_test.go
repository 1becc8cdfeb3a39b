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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"power-ocr-meter/csv"
	"power-ocr-meter/telemetry"
)

func TestStatusBeforeFirstCycle(t *testing.T) {
	s := New()
	w := httptest.NewRecorder()
	s.status(w, httptest.NewRequest("GET", "/status", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Status %d, want 503", w.Code)
	}
}

func TestStatus(t *testing.T) {
	s := New()
	s.Update(csv.Record{
		Time:  time.Date(2025, 8, 23, 10, 11, 12, 345*1e6, time.UTC),
		Mode:  "w",
		Value: 123.45,
		Telemetry: telemetry.Sample{
			VBat: telemetry.Some(5021),
			Soc:  telemetry.Some(52.3),
		},
	})
	w := httptest.NewRecorder()
	s.status(w, httptest.NewRequest("GET", "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Status %d, want 200", w.Code)
	}
	var st Status
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}
	if st.Timestamp != "2025-08-23 10:11:12.345" {
		t.Errorf("Timestamp %s", st.Timestamp)
	}
	if st.Mode != "w" || st.Value != 123.45 {
		t.Errorf("Reading %s/%g", st.Mode, st.Value)
	}
	if st.Telemetry["vbat_mV"] != 5021 || st.Telemetry["soc_C"] != 52.3 {
		t.Errorf("Telemetry %v", st.Telemetry)
	}
	if _, ok := st.Telemetry["vin_mV"]; ok {
		t.Errorf("Absent field published: %v", st.Telemetry)
	}
}

func TestHealth(t *testing.T) {
	s := New()
	w := httptest.NewRecorder()
	s.health(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok\n" {
		t.Errorf("Health %d %q", w.Code, w.Body.String())
	}
}
