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

package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/pendulum-project/clock-steering/clock"
	"github.com/pendulum-project/clock-steering/phc"
)

// kernelClock is the full kernel-backed clock surface the subcommands use,
// beyond the portable Clock interface: timex status, leap readback and
// relative frequency adjustment. Both clock.UnixClock and phc.Device
// satisfy it.
type kernelClock interface {
	clock.Clock
	ReadStatus() (clock.Status, clock.State, error)
	LeapSeconds() (clock.LeapIndicator, error)
	AdjustFrequency(multiplier float64, hold clock.HoldFrequency) (clock.Timestamp, error)
}

// targetClock resolves the clock selection flags. The returned closer
// releases the PHC device, if one was opened.
func targetClock() (kernelClock, func() error, error) {
	noop := func() error { return nil }

	path := deviceFlag
	if path == "" && ifaceFlag != "" {
		p, err := phc.IfaceToPHCDevice(ifaceFlag)
		if err != nil {
			return nil, noop, err
		}
		log.Debugf("%s is %s", ifaceFlag, p)
		path = p
	}
	if path != "" {
		dev, err := phc.Open(path)
		if err != nil {
			return nil, noop, fmt.Errorf("opening %s: %w", path, err)
		}
		return dev, dev.Close, nil
	}

	switch clockFlag {
	case "system":
		return clock.Realtime, noop, nil
	case "tai":
		return clock.TAI, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown clock %q, must be 'system' or 'tai'", clockFlag)
}

// targetDevice resolves the clock selection flags to a PHC device, for
// subcommands that only make sense on hardware clocks.
func targetDevice() (*phc.Device, error) {
	path := deviceFlag
	if path == "" && ifaceFlag != "" {
		p, err := phc.IfaceToPHCDevice(ifaceFlag)
		if err != nil {
			return nil, err
		}
		path = p
	}
	if path == "" {
		return nil, fmt.Errorf("either --device or --iface must be given")
	}
	return phc.Open(path)
}
