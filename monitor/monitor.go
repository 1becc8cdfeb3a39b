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
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"power-ocr-meter/csv"
	"power-ocr-meter/lcd"
	"power-ocr-meter/meter"
	"power-ocr-meter/telemetry"
)

const (
	// Number of consecutive acquisition failures before the operator
	// is warned and the loop backs off.
	failureLimit   = 3
	failureBackoff = 2 * time.Second

	sourceTimeout = 10 * time.Second
)

// Monitor owns one capture/decode/log session. All cycle state (the
// decoder snapshot, the log writer, the scheduler) is owned by the
// loop thread; Stop is the only entry point touched from outside.
type Monitor struct {
	conf    *Config
	src     FrameSource
	reader  *meter.Reader
	power   telemetry.PowerSource // nil when telemetry is disabled
	thermal *telemetry.Thermal
	wr      *csv.Writer
	sched   *Scheduler

	// OnCycle, if set, is called with each completed record.
	OnCycle func(csv.Record)

	width, height int
	failures      int
	stop          atomic.Bool
}

// New builds a session from the configuration: frame source, decoder,
// telemetry backend and log writer. A log sink that cannot be opened
// is an error; the process cannot fulfil its purpose without one.
func New(conf *Config) (*Monitor, error) {
	src, err := NewFrameSource(conf.Capture.Source, sourceTimeout)
	if err != nil {
		return nil, err
	}
	w, h, err := ParseResolution(conf.Capture.Resolution)
	if err != nil {
		return nil, err
	}
	wr, err := csv.NewWriter(conf.Log.Dir, time.Now())
	if err != nil {
		return nil, fmt.Errorf("log sink: %v", err)
	}
	m := &Monitor{
		conf:    conf,
		src:     src,
		reader:  meter.NewReader(meter.DefaultLayout(), uint8(conf.Decode.Threshold), conf.Decode.OnCount),
		thermal: telemetry.NewThermal(conf.Thermal),
		wr:      wr,
		sched:   NewScheduler(time.Duration(conf.Capture.Interval * float64(time.Second))),
		width:   w,
		height:  h,
	}
	if m.power, err = newPowerSource(conf); err != nil {
		wr.Close()
		return nil, err
	}
	if m.power != nil && conf.Telemetry.Persist {
		if err := m.power.PersistPolicy(context.Background()); err != nil {
			log.Printf("telemetry: persist policy: %v", err)
		}
	}
	log.Printf("Logging to %s, capture interval %.2fs", wr.Name(), conf.Capture.Interval)
	return m, nil
}

func newPowerSource(conf *Config) (telemetry.PowerSource, error) {
	t := conf.Telemetry
	switch t.Backend {
	case "modbus":
		src, err := telemetry.NewModbusSource(t.Addr, uint8(t.Unit))
		if err != nil {
			return nil, err
		}
		if t.Timeout > 0 {
			src.Timeout = time.Duration(t.Timeout) * time.Second
		}
		return src, nil
	case "command":
		src := telemetry.NewCommandSource(t.Command)
		if t.Timeout > 0 {
			src.Timeout = time.Duration(t.Timeout) * time.Second
		}
		return src, nil
	}
	return nil, nil
}

// Stop requests the loop to exit. The in-flight cycle completes and
// its row is fully written before Run returns.
func (m *Monitor) Stop() {
	m.stop.Store(true)
}

// Close releases the log sink.
func (m *Monitor) Close() {
	m.wr.Close()
}

// Run drives capture cycles until Stop is called. Cycles are strictly
// sequential; only a log sink failure is fatal.
func (m *Monitor) Run() error {
	for !m.stop.Load() {
		ts, due := m.sched.Next()
		if !due {
			time.Sleep(m.sched.Idle())
			continue
		}
		if err := m.cycle(ts); err != nil {
			return err
		}
	}
	return nil
}

// cycle performs one capture/decode/enrich/log pass. The timestamp is
// sampled once by the scheduler and reused for the log row.
func (m *Monitor) cycle(ts time.Time) error {
	img, err := m.src.Frame()
	if err != nil {
		m.failures++
		log.Printf("Frame acquisition failed: %v", err)
		if m.failures >= failureLimit {
			log.Printf("%d consecutive acquisition failures, backing off", m.failures)
			time.Sleep(failureBackoff)
		}
		return nil
	}
	m.failures = 0
	if b := img.Bounds(); b.Dx() != m.width || b.Dy() != m.height {
		log.Printf("Frame size %dx%d, expected %dx%d", b.Dx(), b.Dy(), m.width, m.height)
	}

	res := m.reader.Read(img)
	rec := csv.Record{
		Time:      ts,
		Mode:      res.Mode,
		Value:     res.Value,
		Telemetry: m.enrich(),
		Error:     meter.JoinErrors(res.Errors),
	}
	for _, e := range res.Errors {
		log.Printf("Decode: %s", e)
	}
	if m.conf.Preview.File != "" {
		ov := m.reader.Overlay(img, ts.Format("2006-01-02 15:04:05.000"))
		if err := lcd.SaveImage(m.conf.Preview.File, ov); err != nil {
			log.Printf("Preview: %v", err)
		}
	}
	if err := m.wr.Append(rec); err != nil {
		return fmt.Errorf("log write: %v", err)
	}
	if m.OnCycle != nil {
		m.OnCycle(rec)
	}
	return nil
}

// enrich gathers best-effort telemetry. Failures leave fields absent
// and never block the cycle.
func (m *Monitor) enrich() telemetry.Sample {
	var s telemetry.Sample
	if m.power != nil {
		pr := m.power.Poll(context.Background())
		s.VBat, s.VIn, s.IOut = pr.VBat, pr.VIn, pr.IOut
	}
	if m.thermal != nil {
		s.Soc = m.thermal.Read("soc")
		s.Rp1 = m.thermal.Read("rp1")
		s.Pmic = m.thermal.Read("pmic")
	}
	return s
}
