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

package phc

import (
	"errors"
	"fmt"
	"time"

	"github.com/pendulum-project/clock-steering/clock"
	"golang.org/x/sys/unix"
)

// SysoffMeasurement is one correlation of the hardware clock with the
// system timebase: a hardware timestamp bracketed by two system reads. The
// bracket width bounds the correlation error.
type SysoffMeasurement struct {
	Before clock.Timestamp
	Device clock.Timestamp
	After  clock.Timestamp
}

// SysoffResult is an offset estimate derived from a measurement.
type SysoffResult struct {
	SysTime clock.Timestamp
	PHCTime clock.Timestamp
	Delay   time.Duration
	Offset  time.Duration
}

// Estimate derives the offset between the system and hardware timebases,
// assuming the hardware read happened at the midpoint of the bracket.
// Based on calculate_offset from ptp4l phc_ctl.c.
func (m SysoffMeasurement) Estimate() SysoffResult {
	interval := m.After.Sub(m.Before).Duration()
	sysTime := m.Before.Add(clock.OffsetFromDuration(interval / 2))
	offset := m.After.Sub(m.Device).Duration() - interval/2

	return SysoffResult{
		SysTime: sysTime,
		PHCTime: m.Device,
		Delay:   interval,
		Offset:  offset,
	}
}

func timestampFromPtpClockTime(t unix.PtpClockTime) clock.Timestamp {
	return clock.TimestampFromUnix(t.Sec, int64(t.Nsec))
}

// SysOffsetPrecise returns the raw hardware-assisted cross timestamp
// (PTP_SYS_OFFSET_PRECISE). Most NICs do not support it.
func (d *Device) SysOffsetPrecise() (*unix.PtpSysOffsetPrecise, error) {
	precise, err := unix.IoctlPtpSysOffsetPrecise(int(d.Fd()))
	if err != nil {
		return nil, classifyIoctlError(err)
	}
	return precise, nil
}

// SysOffsetExtended returns up to samples bracketed readings taken by the
// kernel (PTP_SYS_OFFSET_EXTENDED).
func (d *Device) SysOffsetExtended(samples uint) (*unix.PtpSysOffsetExtended, error) {
	extended, err := unix.IoctlPtpSysOffsetExtended(int(d.Fd()), samples)
	if err != nil {
		return nil, classifyIoctlError(err)
	}
	return extended, nil
}

// SysOffset correlates the hardware clock with the system TAI timebase.
// It prefers the hardware-assisted cross timestamp; when the device cannot
// do that, it falls back to bracketing a single hardware read between two
// system TAI reads. Either way the Before and After timestamps are TAI.
func (d *Device) SysOffset() (SysoffMeasurement, error) {
	precise, err := d.SysOffsetPrecise()
	if err == nil {
		tai, err := clock.Realtime.GetTAI()
		if err != nil {
			return SysoffMeasurement{}, err
		}
		return measurementFromPrecise(precise, tai), nil
	}
	if !errors.Is(err, clock.ErrNotSupported) {
		return SysoffMeasurement{}, err
	}
	return d.sysOffsetBracketed()
}

// measurementFromPrecise converts a cross-timestamp reply into a zero-width
// bracket. The kernel reports the system side in CLOCK_REALTIME, so the
// TAI-UTC offset shifts it onto the same timebase the bracketed fallback
// uses.
func measurementFromPrecise(precise *unix.PtpSysOffsetPrecise, taiOffset int) SysoffMeasurement {
	sys := timestampFromPtpClockTime(precise.Realtime).Add(clock.TimeOffset{Seconds: int64(taiOffset)})
	return SysoffMeasurement{
		Before: sys,
		Device: timestampFromPtpClockTime(precise.Device),
		After:  sys,
	}
}

// sysOffsetBracketed reads the device clock between two TAI reads.
func (d *Device) sysOffsetBracketed() (SysoffMeasurement, error) {
	before, err := gettime(unix.CLOCK_TAI)
	if err != nil {
		return SysoffMeasurement{}, err
	}
	dev, err := gettime(d.ClockID())
	if err != nil {
		return SysoffMeasurement{}, err
	}
	after, err := gettime(unix.CLOCK_TAI)
	if err != nil {
		return SysoffMeasurement{}, err
	}
	return SysoffMeasurement{Before: before, Device: dev, After: after}, nil
}

// BestSample picks the reading with the narrowest bracket out of an
// extended offset reply. Loosely based on sysoff_estimate from ptp4l
// sysoff.c.
func BestSample(extended *unix.PtpSysOffsetExtended) (SysoffResult, error) {
	if extended.Samples == 0 || int(extended.Samples) > len(extended.Ts) {
		return SysoffResult{}, fmt.Errorf("extended offset reply carries %d samples", extended.Samples)
	}
	best := measurementFromSample(extended.Ts[0]).Estimate()
	for i := 1; i < int(extended.Samples); i++ {
		candidate := measurementFromSample(extended.Ts[i]).Estimate()
		if candidate.Delay < best.Delay {
			best = candidate
		}
	}
	return best, nil
}

func measurementFromSample(sample [3]unix.PtpClockTime) SysoffMeasurement {
	return SysoffMeasurement{
		Before: timestampFromPtpClockTime(sample[0]),
		Device: timestampFromPtpClockTime(sample[1]),
		After:  timestampFromPtpClockTime(sample[2]),
	}
}
