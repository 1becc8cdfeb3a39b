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
	"bufio"
	"bytes"
	"context"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CommandSource reads the power controller via an external helper
// tool. The tool's "status" subcommand prints key=value lines:
//
//	vbat_mv=5021
//	vin_mv=5102
//	iout_ma=1250
//
// Keys the tool does not print are simply absent from the sample.
type CommandSource struct {
	Timeout time.Duration
	Trace   bool
	cmd     string
	args    []string
}

// NewCommandSource creates a source that shells out to the given tool.
func NewCommandSource(cmd string, args ...string) *CommandSource {
	return &CommandSource{Timeout: time.Second * 5, cmd: cmd, args: args}
}

func (c *CommandSource) Poll(ctx context.Context) PowerReadings {
	out, err := c.run(ctx, "status")
	if err != nil {
		log.Printf("telemetry: %s: %v", c.cmd, err)
		return PowerReadings{}
	}
	r := parseReadings(out)
	if c.Trace {
		log.Printf("telemetry: vbat %v, vin %v, iout %v", r.VBat, r.VIn, r.IOut)
	}
	return r
}

// PersistPolicy invokes the tool's persist subcommand.
func (c *CommandSource) PersistPolicy(ctx context.Context) error {
	_, err := c.run(ctx, "persist")
	return err
}

func (c *CommandSource) run(ctx context.Context, sub string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return exec.CommandContext(ctx, c.cmd, append(c.args, sub)...).Output()
}

// parseReadings scans key=value output. Unknown keys and malformed
// values are ignored.
func parseReadings(out []byte) PowerReadings {
	var r PowerReadings
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		key, val, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case "vbat_mv":
			r.VBat = Some(v)
		case "vin_mv":
			r.VIn = Some(v)
		case "iout_ma":
			r.IOut = Some(v)
		}
	}
	return r
}
