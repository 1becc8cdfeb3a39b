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

// package csv appends decoded meter readings to an append-only log
// file, one row per capture cycle. Each row is flushed as it is
// written, so a crash loses at most the in-flight row.

package csv

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"power-ocr-meter/telemetry"
)

const header = "timestamp,mode,value,vbat_mV,vin_mV,iout_mA,soc_C,rp1_C,pmic_C,error"

const stampFormat = "2006-01-02 15:04:05.000"

// Record is the atomic unit appended to the log. Written exactly once
// per completed cycle, never amended.
type Record struct {
	Time      time.Time
	Mode      string
	Value     float64
	Telemetry telemetry.Sample
	Error     string
}

// Writer appends records to a timestamped CSV file.
type Writer struct {
	name string
	file *os.File
	buf  *bufio.Writer
}

// NewWriter creates a new log file in dir, named from the start time,
// and writes the header row.
func NewWriter(dir string, t time.Time) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	fn := path.Join(dir, t.Format("20060102_150405")+".csv")
	f, err := os.OpenFile(fn, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	w := &Writer{name: fn, file: f, buf: bufio.NewWriter(f)}
	fmt.Fprintln(w.buf, header)
	if err := w.buf.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Append writes one record and flushes it to the file.
func (w *Writer) Append(r Record) error {
	fmt.Fprintf(w.buf, "%s,%s,%.4f", r.Time.Format(stampFormat), r.Mode, r.Value)
	writeInt(w.buf, r.Telemetry.VBat)
	writeInt(w.buf, r.Telemetry.VIn)
	writeInt(w.buf, r.Telemetry.IOut)
	writeTemp(w.buf, r.Telemetry.Soc)
	writeTemp(w.buf, r.Telemetry.Rp1)
	writeTemp(w.buf, r.Telemetry.Pmic)
	fmt.Fprintf(w.buf, ",%s\n", sanitize(r.Error))
	return w.buf.Flush()
}

// Name returns the path of the log file.
func (w *Writer) Name() string {
	return w.name
}

// Close flushes and closes the log file.
func (w *Writer) Close() error {
	w.buf.Flush()
	return w.file.Close()
}

func writeInt(buf *bufio.Writer, v telemetry.Value) {
	if v.OK {
		fmt.Fprintf(buf, ",%d", int(v.V))
	} else {
		fmt.Fprint(buf, ",")
	}
}

func writeTemp(buf *bufio.Writer, v telemetry.Value) {
	if v.OK {
		fmt.Fprintf(buf, ",%.1f", v.V)
	} else {
		fmt.Fprint(buf, ",")
	}
}

// sanitize keeps the free-text error field inside one CSV cell.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, ",", ";")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
