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

// package server exposes the latest meter reading over a small HTTP
// JSON API.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"power-ocr-meter/csv"
	"power-ocr-meter/telemetry"
)

// Status is the JSON shape of the latest reading.
type Status struct {
	Timestamp string             `json:"timestamp"`
	Mode      string             `json:"mode"`
	Value     float64            `json:"value"`
	Error     string             `json:"error,omitempty"`
	Telemetry map[string]float64 `json:"telemetry,omitempty"`
}

// Server publishes the most recent cycle.
type Server struct {
	mu   sync.Mutex
	last Status
	ok   bool
}

func New() *Server {
	return new(Server)
}

// Update publishes a completed cycle. Called from the monitor loop.
func (s *Server) Update(r csv.Record) {
	st := Status{
		Timestamp: r.Time.Format("2006-01-02 15:04:05.000"),
		Mode:      r.Mode,
		Value:     r.Value,
		Error:     r.Error,
		Telemetry: telemetryMap(r.Telemetry),
	}
	s.mu.Lock()
	s.last = st
	s.ok = true
	s.mu.Unlock()
}

// Serve runs the HTTP server on the given port. Blocks; run from a
// goroutine.
func (s *Server) Serve(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.status)
	mux.HandleFunc("/health", s.health)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (s *Server) status(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	st, ok := s.last, s.ok
	s.mu.Unlock()
	if !ok {
		http.Error(w, "no reading yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

func (s *Server) health(w http.ResponseWriter, req *http.Request) {
	fmt.Fprintln(w, "ok")
}

func telemetryMap(t telemetry.Sample) map[string]float64 {
	m := make(map[string]float64)
	add := func(name string, v telemetry.Value) {
		if v.OK {
			m[name] = v.V
		}
	}
	add("vbat_mV", t.VBat)
	add("vin_mV", t.VIn)
	add("iout_mA", t.IOut)
	add("soc_C", t.Soc)
	add("rp1_C", t.Rp1)
	add("pmic_C", t.Pmic)
	if len(m) == 0 {
		return nil
	}
	return m
}
