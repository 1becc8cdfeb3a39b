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

package telemetry

import (
	"os"
	"path"
	"strconv"
	"strings"
)

const defaultThermalBase = "/sys/class/thermal"

// Thermal reads named temperature sensors from the kernel thermal
// class. Absence of a named zone is not an error; the field is just
// left out of the sample.
type Thermal struct {
	base  string
	zones map[string]string // log field -> zone type string
}

// DefaultZones maps the log columns to the zone types of the host.
func DefaultZones() map[string]string {
	return map[string]string{
		"soc":  "cpu-thermal",
		"rp1":  "rp1-thermal",
		"pmic": "pmic-thermal",
	}
}

// NewThermal creates a reader for the given column to zone-type map.
func NewThermal(zones map[string]string) *Thermal {
	if zones == nil {
		zones = DefaultZones()
	}
	return &Thermal{base: defaultThermalBase, zones: zones}
}

// Read returns the temperature in degrees C for the named log field.
func (t *Thermal) Read(name string) Value {
	ztype, ok := t.zones[name]
	if !ok {
		return Value{}
	}
	entries, err := os.ReadDir(t.base)
	if err != nil {
		return Value{}
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "thermal_zone") {
			continue
		}
		dir := path.Join(t.base, e.Name())
		b, err := os.ReadFile(path.Join(dir, "type"))
		if err != nil || strings.TrimSpace(string(b)) != ztype {
			continue
		}
		b, err = os.ReadFile(path.Join(dir, "temp"))
		if err != nil {
			return Value{}
		}
		// Zone temperatures are reported in millidegrees.
		md, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
		if err != nil {
			return Value{}
		}
		return Some(md / 1000.0)
	}
	return Value{}
}
