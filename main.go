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

// power-ocr-meter continuously photographs a 7-segment LCD power
// meter, decodes each frame into a reading and unit mode, and appends
// a timestamped record with host battery/thermal telemetry to a CSV
// log.

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"power-ocr-meter/monitor"
	"power-ocr-meter/server"
)

var configFile = flag.String("config", "", "Config file")
var logDate = flag.Bool("logtime", false, "Log date and time")

func main() {
	flag.Parse()
	if !*logDate {
		// Turn off date/time tags on logs
		log.SetFlags(0)
	}
	data, err := os.ReadFile(*configFile)
	if err != nil {
		log.Fatalf("Can't read config %s: %v", *configFile, err)
	}
	conf, err := monitor.Load(data)
	if err != nil {
		log.Fatalf("%s: %v", *configFile, err)
	}
	m, err := monitor.New(conf)
	if err != nil {
		log.Fatalf("Initialisation error: %v", err)
	}
	if conf.Server.Port != 0 {
		srv := server.New()
		m.OnCycle = srv.Update
		go func() {
			log.Printf("Status server: %v", srv.Serve(conf.Server.Port))
		}()
	}
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Printf("Signal received, stopping")
		m.Stop()
	}()
	err = m.Run()
	m.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}
}
