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

package monitor

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/pendulum-project/clock-steering/clock"
)

// statusReader is implemented by kernel-backed clocks that expose the
// timex status word. Mock and remote clocks don't have one.
type statusReader interface {
	ReadStatus() (clock.Status, clock.State, error)
}

// Source is a named clock the exporter samples
type Source struct {
	Name  string
	Clock clock.Clock
}

// Exporter periodically samples clocks and serves the results over HTTP
type Exporter struct {
	registry *prometheus.Registry
	listen   string
	interval time.Duration
	sources  []Source

	frequencyPPM *prometheus.GaugeVec
	taiOffset    *prometheus.GaugeVec
	maxFreqPPB   *prometheus.GaugeVec
	synchronized *prometheus.GaugeVec
	readFailures *prometheus.CounterVec
}

// NewExporter creates an Exporter for the given sources
func NewExporter(cfg *Config, sources []Source) *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		listen:   cfg.ListenAddr,
		interval: cfg.Interval,
		sources:  sources,
		frequencyPPM: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clock_frequency_adjustment_ppm",
			Help: "Current frequency adjustment of the clock in PPM",
		}, []string{"clock"}),
		taiOffset: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clock_tai_offset_seconds",
			Help: "TAI-UTC offset the kernel applies to the clock",
		}, []string{"clock"}),
		maxFreqPPB: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clock_max_frequency_adjustment_ppb",
			Help: "Maximum frequency adjustment the clock supports in PPB",
		}, []string{"clock"}),
		synchronized: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clock_synchronized",
			Help: "Whether the kernel considers the clock synchronized",
		}, []string{"clock"}),
		readFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clock_read_failures_total",
			Help: "Number of failed clock reads, per clock",
		}, []string{"clock"}),
	}
	e.registry.MustRegister(e.frequencyPPM, e.taiOffset, e.maxFreqPPB, e.synchronized, e.readFailures)
	return e
}

// Start runs the sampling loop and serves /metrics. It blocks.
func (e *Exporter) Start() error {
	go func() {
		for {
			e.scrape()
			time.Sleep(e.interval)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	))
	return http.ListenAndServe(e.listen, mux)
}

func (e *Exporter) scrape() {
	for _, src := range e.sources {
		e.sample(src)
	}
}

func (e *Exporter) sample(src Source) {
	labels := prometheus.Labels{"clock": src.Name}

	freq, err := src.Clock.GetFrequency()
	if err != nil {
		log.Warningf("reading frequency of %s: %v", src.Name, err)
		e.readFailures.With(labels).Inc()
	} else {
		e.frequencyPPM.With(labels).Set(freq)
	}

	if tai, err := src.Clock.GetTAI(); err != nil {
		if !errors.Is(err, clock.ErrNotSupported) {
			log.Warningf("reading TAI offset of %s: %v", src.Name, err)
			e.readFailures.With(labels).Inc()
		}
	} else {
		e.taiOffset.With(labels).Set(float64(tai))
	}

	caps, err := src.Clock.Capabilities()
	if err != nil {
		log.Warningf("reading capabilities of %s: %v", src.Name, err)
		e.readFailures.With(labels).Inc()
	} else {
		e.maxFreqPPB.With(labels).Set(float64(caps.MaxFrequencyAdjustmentPPB))
	}

	if sr, ok := src.Clock.(statusReader); ok {
		status, _, err := sr.ReadStatus()
		if err != nil {
			log.Warningf("reading status of %s: %v", src.Name, err)
			e.readFailures.With(labels).Inc()
			return
		}
		v := 0.0
		if status.Synchronized() {
			v = 1.0
		}
		e.synchronized.With(labels).Set(v)
	}
}
