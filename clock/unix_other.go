//go:build darwin || freebsd

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

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// UnixClock steers one OS clock, identified by an immutable clock ID.
//
// On non-Linux Unix platforms the kernel clock discipline API is not
// exposed, so only direct time reads and steps are available; frequency
// control, leap indicators, TAI and error estimates report ErrNotSupported.
type UnixClock struct {
	clockid int32
}

// Realtime is the system realtime (UTC) clock, the only well-known clock on
// this platform.
var Realtime = UnixClock{clockid: unix.CLOCK_REALTIME}

// FromClockID wraps a raw clock ID.
func FromClockID(clockid int32) UnixClock {
	return UnixClock{clockid: clockid}
}

// ClockID returns the raw clock ID used in every syscall.
func (c UnixClock) ClockID() int32 {
	return c.clockid
}

var _ Clock = UnixClock{}

func (c UnixClock) gettime() (unix.Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(c.clockid, &ts); err != nil {
		return unix.Timespec{}, classify(err)
	}
	return ts, nil
}

// Now returns the current time of the clock.
func (c UnixClock) Now() (Timestamp, error) {
	ts, err := c.gettime()
	if err != nil {
		return Timestamp{}, err
	}
	return normalize(int64(ts.Sec), int64(ts.Nsec), precisionNano), nil
}

// Resolution returns the resolution of the clock. Unavailable on this
// platform: the result is all zeros.
func (c UnixClock) Resolution() (Timestamp, error) {
	return Timestamp{}, nil
}

// Capabilities returns the documented default adjustment limits; this
// platform cannot report real ones.
func (c UnixClock) Capabilities() (ClockCapabilities, error) {
	return DefaultCapabilities(), nil
}

// GetFrequency is not supported on this platform.
func (c UnixClock) GetFrequency() (float64, error) {
	return 0, ErrNotSupported
}

// SetFrequency is not supported on this platform.
func (c UnixClock) SetFrequency(frequencyPPM float64, hold HoldFrequency) (Timestamp, error) {
	return Timestamp{}, ErrNotSupported
}

// AdjustFrequency is not supported on this platform.
func (c UnixClock) AdjustFrequency(multiplier float64, hold HoldFrequency) (Timestamp, error) {
	return Timestamp{}, ErrNotSupported
}

// StepClock changes the current time of the clock by an offset. Without a
// kernel offset mode the step is a read, an addition, and a direct write,
// so time passing between the two syscalls is absorbed into the step.
func (c UnixClock) StepClock(offset TimeOffset) (Timestamp, error) {
	ts, err := c.gettime()
	if err != nil {
		return Timestamp{}, err
	}

	stepped := normalize(int64(ts.Sec), int64(ts.Nsec), precisionNano).Add(offset)

	// settimeofday carries microseconds; the written clock loses the
	// sub-microsecond part of the computed value.
	tv := unix.NsecToTimeval(stepped.Seconds*nanosPerSecond + int64(stepped.Nanos))
	if err := unix.Settimeofday(&tv); err != nil {
		return Timestamp{}, classify(err)
	}

	return stepped, nil
}

// SetLeapSeconds is not supported on this platform.
func (c UnixClock) SetLeapSeconds(leap LeapIndicator) error {
	return ErrNotSupported
}

// DisableKernelNTPAlgorithm has no kernel discipline loop to disable on this
// platform, which counts as success.
func (c UnixClock) DisableKernelNTPAlgorithm() error {
	return IgnoreNotSupported(ErrNotSupported)
}

// EnableKernelNTPAlgorithm is not supported on this platform.
func (c UnixClock) EnableKernelNTPAlgorithm() error {
	return ErrNotSupported
}

// SetTAI is not supported on this platform.
func (c UnixClock) SetTAI(offset int) error {
	return ErrNotSupported
}

// GetTAI is not supported on this platform.
func (c UnixClock) GetTAI() (int, error) {
	return 0, ErrNotSupported
}

// ErrorEstimateUpdate has no kernel error bookkeeping to update on this
// platform, which counts as success.
func (c UnixClock) ErrorEstimateUpdate(estimatedError, maximumError time.Duration) error {
	return IgnoreNotSupported(ErrNotSupported)
}
