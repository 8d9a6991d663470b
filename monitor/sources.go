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
	"fmt"

	"github.com/pendulum-project/clock-steering/clock"
	"github.com/pendulum-project/clock-steering/phc"
)

// OpenSources opens every clock named in the config. The returned closer
// releases the PHC devices that were opened along the way.
func OpenSources(cfg *Config) ([]Source, func() error, error) {
	sources := make([]Source, 0, len(cfg.Clocks))
	devices := []*phc.Device{}
	closeAll := func() error {
		var last error
		for _, d := range devices {
			if err := d.Close(); err != nil {
				last = err
			}
		}
		return last
	}

	for _, cc := range cfg.Clocks {
		switch cc.Type {
		case ClockTypeSystem:
			sources = append(sources, Source{Name: cc.Name, Clock: clock.Realtime})
		case ClockTypeTAI:
			sources = append(sources, Source{Name: cc.Name, Clock: clock.TAI})
		case ClockTypePHC:
			dev, err := phc.Open(cc.Device)
			if err != nil {
				_ = closeAll()
				return nil, nil, fmt.Errorf("opening %s for clock %q: %w", cc.Device, cc.Name, err)
			}
			devices = append(devices, dev)
			sources = append(sources, Source{Name: cc.Name, Clock: dev})
		default:
			_ = closeAll()
			return nil, nil, fmt.Errorf("clock %q: unsupported type %q", cc.Name, cc.Type)
		}
	}
	return sources, closeAll, nil
}
