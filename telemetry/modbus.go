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
	"context"
	"log"
	"time"

	"github.com/aldas/go-modbus-client"
)

// Input register map of the UPS power controller.
const (
	regVBat = 0x0001 // Battery voltage, mV (uint16)
	regVIn  = 0x0002 // Input voltage, mV (uint16)
	regIOut = 0x0003 // Output current, mA (int16)
)

// ModbusSource polls a power controller over Modbus TCP.
type ModbusSource struct {
	Timeout time.Duration
	Trace   bool
	addr    string

	requests []modbus.BuilderRequest
	client   *modbus.Client
}

// NewModbusSource creates a source for the controller at addr with the
// given unit id.
func NewModbusSource(addr string, unit uint8) (*ModbusSource, error) {
	b := modbus.NewRequestBuilder(addr, unit)
	requests, err := b.
		AddField(modbus.Field{Name: "vbat", Type: modbus.FieldTypeUint16, Address: regVBat}).
		AddField(modbus.Field{Name: "vin", Type: modbus.FieldTypeUint16, Address: regVIn}).
		AddField(modbus.Field{Name: "iout", Type: modbus.FieldTypeInt16, Address: regIOut}).
		ReadInputRegistersTCP()
	if err != nil {
		return nil, err
	}
	return &ModbusSource{
		Timeout:  time.Second * 5,
		addr:     addr,
		requests: requests,
		client:   modbus.NewTCPClient(),
	}, nil
}

// Poll reads the controller registers. A connection or request failure
// leaves the affected fields absent and logs a warning.
func (m *ModbusSource) Poll(ctx context.Context) PowerReadings {
	var r PowerReadings
	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()
	if err := m.client.Connect(ctx, m.addr); err != nil {
		log.Printf("telemetry: %s: %v", m.addr, err)
		return r
	}
	defer m.client.Close()
	findex := 0
	for _, req := range m.requests {
		resp, err := m.client.Do(ctx, req)
		if err != nil {
			log.Printf("telemetry: %s: %v", m.addr, err)
			return r
		}
		fields, _ := req.ExtractFields(resp, true)
		for _, f := range fields {
			switch findex {
			case 0:
				r.VBat = Some(float64(f.Value.(uint16)))
			case 1:
				r.VIn = Some(float64(f.Value.(uint16)))
			case 2:
				r.IOut = Some(float64(f.Value.(int16)))
			}
			findex++
		}
	}
	if m.Trace {
		log.Printf("telemetry: vbat %v, vin %v, iout %v", r.VBat, r.VIn, r.IOut)
	}
	return r
}

// PersistPolicy is a no-op for this backend; the controller keeps its
// power policy in NVRAM.
func (m *ModbusSource) PersistPolicy(ctx context.Context) error {
	if m.Trace {
		log.Printf("telemetry: %s persists policy in NVRAM, nothing to do", m.addr)
	}
	return nil
}
