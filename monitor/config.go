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

// package monitor owns one capture/decode/log session: configuration,
// the capture scheduler, the frame source and the cycle loop.

package monitor

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the monitor.
//
//	capture:
//	  source: http://camera.local/still.jpg
//	  interval: 0.35
//	  resolution: 800x600
//	log:
//	  dir: logs
//	preview:
//	  file: /tmp/preview.jpg   # empty disables
//	server:
//	  port: 8080               # 0 disables
//	telemetry:
//	  backend: modbus          # modbus, command, or empty to disable
//	  addr: 10.0.0.20:502
//	  unit: 247
//	  command: x120x-ctl
//	  timeout: 5
//	  persist: true
//	thermal:
//	  soc: cpu-thermal
//	  rp1: rp1-thermal
//	  pmic: pmic-thermal
//	decode:
//	  threshold: 160
//	  oncount: 100
type Config struct {
	Capture struct {
		Source     string  // Frame source URL or image file
		Interval   float64 // Seconds between captures
		Resolution string  // Expected frame size as WxH
	}
	Log struct {
		Dir string // Log file directory
	}
	Preview struct {
		File string // Annotated preview file, empty disables
	}
	Server struct {
		Port int // Status server port, 0 disables
	}
	Telemetry struct {
		Backend string // "modbus", "command" or empty
		Addr    string // Modbus TCP address
		Unit    int    // Modbus unit id
		Command string // Helper tool for the command backend
		Timeout int    // Per poll timeout in seconds
		Persist bool   // Ask the controller to persist its power policy
	}
	Thermal map[string]string // Log column -> thermal zone type
	Decode  struct {
		Threshold int // Binarize luminance threshold
		OnCount   int // Dark pixel count for a lit region
	}
}

const (
	defaultInterval   = 0.35
	defaultResolution = "800x600"
	defaultLogDir     = "logs"
	defaultUnit       = 247
)

// Load parses and validates the YAML configuration, filling defaults
// for unset fields. Unknown keys are rejected.
func Load(data []byte) (*Config, error) {
	c := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, err
	}
	if c.Capture.Interval == 0 {
		c.Capture.Interval = defaultInterval
	}
	if c.Capture.Interval < 0 {
		return nil, fmt.Errorf("bad capture interval: %g", c.Capture.Interval)
	}
	if c.Capture.Resolution == "" {
		c.Capture.Resolution = defaultResolution
	}
	if _, _, err := ParseResolution(c.Capture.Resolution); err != nil {
		return nil, err
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaultLogDir
	}
	switch c.Telemetry.Backend {
	case "", "modbus", "command":
	default:
		return nil, fmt.Errorf("%s: unknown telemetry backend", c.Telemetry.Backend)
	}
	if c.Telemetry.Unit == 0 {
		c.Telemetry.Unit = defaultUnit
	}
	if c.Decode.Threshold == 0 {
		c.Decode.Threshold = 160
	}
	if c.Decode.Threshold > 255 {
		return nil, fmt.Errorf("bad binarize threshold: %d", c.Decode.Threshold)
	}
	if c.Decode.OnCount == 0 {
		c.Decode.OnCount = 100
	}
	return c, nil
}

// ParseResolution splits a WxH string into width and height.
func ParseResolution(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%s: bad resolution", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad resolution", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad resolution", s)
	}
	return w, h, nil
}
