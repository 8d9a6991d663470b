/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:build linux

package main

import (
	"flag"
	"net/http"
	"time"

	_ "net/http/pprof"

	log "github.com/sirupsen/logrus"

	"github.com/pendulum-project/clock-steering/monitor"
)

func main() {
	var (
		verboseFlag  bool
		configFlag   string
		listenFlag   string
		intervalFlag time.Duration
		pprofFlag    string
	)

	flag.BoolVar(&verboseFlag, "verbose", false, "verbose output")
	flag.StringVar(&configFlag, "config", "", "path to the YAML config, monitors the system clock when empty")
	flag.StringVar(&listenFlag, "listen", "", "address the metrics http server listens on, overrides the config")
	flag.DurationVar(&intervalFlag, "interval", 0, "how often to sample the clocks, overrides the config")
	flag.StringVar(&pprofFlag, "pprof", "", "Address to have the profiler listen on, disabled if empty.")

	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if pprofFlag != "" {
		go func() {
			err := http.ListenAndServe(pprofFlag, nil)
			if err != nil {
				log.Errorf("Failed to start pprof. Err: %v", err)
			}
		}()
	}

	cfg := monitor.DefaultConfig()
	if configFlag != "" {
		var err error
		cfg, err = monitor.ReadConfig(configFlag)
		if err != nil {
			log.Fatalf("reading config from %q: %v", configFlag, err)
		}
	}
	if listenFlag != "" {
		cfg.ListenAddr = listenFlag
	}
	if intervalFlag > 0 {
		cfg.Interval = intervalFlag
	}

	sources, cleanup, err := monitor.OpenSources(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Infof("sampling %d clock(s) every %v, serving metrics on %s", len(sources), cfg.Interval, cfg.ListenAddr)
	exporter := monitor.NewExporter(cfg, sources)
	log.Fatal(exporter.Start())
}
