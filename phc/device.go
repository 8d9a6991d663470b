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

// Package phc steers PTP hardware clocks exposed as /dev/ptpN devices.
//
// A Device is a full clock.Clock whose identity is derived from the open
// device descriptor, plus the hardware-specific extras: capability
// discovery through the PTP ioctls and correlation of the hardware
// timebase with the system clock.
package phc

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/pendulum-project/clock-steering/clock"
	"golang.org/x/sys/unix"
)

// DefaultMaxClockFreqPPB value came from linuxptp project (clockadj.c)
const DefaultMaxClockFreqPPB = 500000.0

// Device is a PTP hardware clock. It embeds the steering operations of the
// clock package, dispatched through the dynamic clock ID derived from the
// device descriptor. The clock ID stays valid only while the descriptor is
// open, so the Device must outlive every clock operation issued through it.
type Device struct {
	clock.UnixClock

	f     *os.File
	owned bool
}

var _ clock.Clock = &Device{}

// Open opens a PTP device by path, e.g. /dev/ptp0, read/write. Failures
// surface through the clock error taxonomy.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	d := FromFile(f)
	d.owned = true
	return d, nil
}

// FromFile wraps an already-open PTP device file. The caller keeps ownership
// of the file: closing it invalidates the Device and every clock ID derived
// from it.
func FromFile(f *os.File) *Device {
	return &Device{UnixClock: clock.FromFD(f.Fd()), f: f}
}

// File returns the underlying device file.
func (d *Device) File() *os.File {
	return d.f
}

// Fd returns the underlying descriptor number.
func (d *Device) Fd() uintptr {
	return d.f.Fd()
}

// Path returns the path the device was opened with.
func (d *Device) Path() string {
	return d.f.Name()
}

// Close closes the device if this Device opened it. Devices wrapping a
// caller-owned file leave closing to the caller.
func (d *Device) Close() error {
	if !d.owned {
		return nil
	}
	return d.f.Close()
}

// Time reads the current time of the hardware clock.
func (d *Device) Time() (clock.Timestamp, error) {
	return d.Now()
}

// Caps returns the raw PTP capability record of the device.
func (d *Device) Caps() (*unix.PtpClockCaps, error) {
	caps, err := unix.IoctlPtpClockGetcaps(int(d.Fd()))
	if err != nil {
		return nil, classifyIoctlError(err)
	}
	return caps, nil
}

// Capabilities returns the adjustment limits reported by the hardware,
// falling back to the documented defaults when the device cannot report its
// own. The offset limit is never hardware-reported, so the default always
// applies there.
func (d *Device) Capabilities() (clock.ClockCapabilities, error) {
	result := clock.DefaultCapabilities()

	caps, err := d.Caps()
	if err != nil {
		if errors.Is(err, clock.ErrNotSupported) {
			return result, nil
		}
		return clock.ClockCapabilities{}, err
	}
	if caps.Max_adj > 0 {
		result.MaxFrequencyAdjustmentPPB = uint64(caps.Max_adj)
	}
	return result, nil
}

// MaxFreqAdjPPB returns the maximum frequency adjustment the hardware
// supports in PPB, with the linuxptp fallback for devices that report none.
func (d *Device) MaxFreqAdjPPB() (float64, error) {
	caps, err := d.Caps()
	if err != nil {
		return 0, err
	}
	return maxAdj(caps), nil
}

func maxAdj(caps *unix.PtpClockCaps) float64 {
	if caps == nil || caps.Max_adj == 0 {
		return DefaultMaxClockFreqPPB
	}
	return float64(caps.Max_adj)
}

// IfaceToPHCDevice returns the path to the PHC device associated with the
// given network interface.
func IfaceToPHCDevice(iface string) (string, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return "", fmt.Errorf("failed to create socket for ioctl: %w", err)
	}
	defer unix.Close(fd)
	info, err := unix.IoctlGetEthtoolTsInfo(fd, iface)
	if err != nil {
		return "", fmt.Errorf("getting interface %s info: %w", iface, err)
	}
	if info.Phc_index < 0 {
		return "", fmt.Errorf("%s: no PHC support", iface)
	}
	return fmt.Sprintf("/dev/ptp%d", info.Phc_index), nil
}

// IfaceData pairs a network interface with its timestamping capabilities.
type IfaceData struct {
	Iface  net.Interface
	TSInfo unix.EthtoolTsInfo
}

// PHCPath returns the device path for the interface's PHC, or empty when
// the interface has none.
func (d IfaceData) PHCPath() string {
	if d.TSInfo.Phc_index < 0 {
		return ""
	}
	return fmt.Sprintf("/dev/ptp%d", d.TSInfo.Phc_index)
}

// IfacesInfo is like net.Interfaces() but with added timestamping info.
func IfacesInfo() ([]IfaceData, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket for ioctl: %w", err)
	}
	defer unix.Close(fd)

	res := make([]IfaceData, 0, len(ifaces))
	for _, iface := range ifaces {
		info, err := unix.IoctlGetEthtoolTsInfo(fd, iface.Name)
		if err != nil {
			return nil, fmt.Errorf("getting interface %s info: %w", iface.Name, err)
		}
		res = append(res, IfaceData{Iface: iface, TSInfo: *info})
	}
	return res, nil
}
