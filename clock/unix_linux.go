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
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// UnixClock steers one OS clock, identified by an immutable clock ID.
// The zero cost of copying it is intentional: it holds no state beyond the
// identity, and a clock ID derived from a device descriptor stays owned by
// whoever opened the descriptor.
type UnixClock struct {
	clockid int32
}

// Well-known system clocks.
var (
	// Realtime is the system realtime (UTC) clock.
	Realtime = UnixClock{clockid: unix.CLOCK_REALTIME}
	// TAI is the system TAI clock: monotone across leap seconds.
	TAI = UnixClock{clockid: unix.CLOCK_TAI}
)

// FromClockID wraps a raw clock ID.
func FromClockID(clockid int32) UnixClock {
	return UnixClock{clockid: clockid}
}

// FromFD derives a dynamic clock from an open PTP device descriptor. The
// clock is valid only while the descriptor stays open; the caller keeps
// ownership of the file.
func FromFD(fd uintptr) UnixClock {
	return UnixClock{clockid: FDToClockID(fd)}
}

// ClockID returns the raw clock ID used in every syscall.
func (c UnixClock) ClockID() int32 {
	return c.clockid
}

var _ Clock = UnixClock{}

// Adjtime issues the kernel clock adjustment syscall with a raw timex
// record, and returns the clock state (unix.TIME_OK and friends). The record
// is updated in place with the kernel's reply. This is the escape hatch for
// callers that need timex fields the high level operations do not cover.
func (c UnixClock) Adjtime(tx *unix.Timex) (int, error) {
	var state int
	var err error
	// The realtime clock supports the richer adjtimex call everywhere;
	// dynamic and TAI clocks go through clock_adjtime.
	if c.clockid == unix.CLOCK_REALTIME {
		state, err = unix.Adjtimex(tx)
	} else {
		state, err = unix.ClockAdjtime(c.clockid, tx)
	}
	return state, classify(err)
}

func (c UnixClock) gettime() (unix.Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(c.clockid, &ts); err != nil {
		return unix.Timespec{}, classify(err)
	}
	return ts, nil
}

// extractTime pulls the current time out of a kernel reply. Hardware clocks
// frequently leave the embedded time field zeroed, in which case a direct
// clock read (always nanosecond precision) substitutes.
func (c UnixClock) extractTime(tx *unix.Timex) (Timestamp, error) {
	sec, subsec := int64(tx.Time.Sec), int64(tx.Time.Usec)
	if sec != 0 && subsec != 0 {
		// The STA_NANO status bit says which unit the reply's time
		// field uses.
		p := precisionMicro
		if tx.Status&unix.STA_NANO != 0 {
			p = precisionNano
		}
		return normalize(sec, subsec, p), nil
	}

	ts, err := c.gettime()
	if err != nil {
		return Timestamp{}, err
	}
	return normalize(int64(ts.Sec), int64(ts.Nsec), precisionNano), nil
}

// updateStatus is a read-modify-write of the timex status field. Not atomic
// with respect to concurrent steering by other processes.
func (c UnixClock) updateStatus(update func(status int32) int32) error {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return err
	}
	req := statusRequest(update(tx.Status))
	_, err := c.Adjtime(req)
	return err
}

// Now returns the current time of the clock.
func (c UnixClock) Now() (Timestamp, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return Timestamp{}, err
	}
	return c.extractTime(&tx)
}

// Resolution returns the resolution of the clock.
func (c UnixClock) Resolution() (Timestamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(c.clockid, &ts); err != nil {
		return Timestamp{}, classify(err)
	}
	return normalize(int64(ts.Sec), int64(ts.Nsec), precisionNano), nil
}

// Capabilities returns the adjustment limits of the clock. The kernel's
// tolerance field is used when it reports one; otherwise the documented
// defaults apply. Hardware clocks report theirs through the PTP device
// instead (see package phc).
func (c UnixClock) Capabilities() (ClockCapabilities, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		if errors.Is(err, ErrNotSupported) {
			return DefaultCapabilities(), nil
		}
		return ClockCapabilities{}, err
	}
	caps := DefaultCapabilities()
	if tolerance := int64(tx.Tolerance); tolerance > 0 {
		caps.MaxFrequencyAdjustmentPPB = uint64(float64(tolerance) / PPBToTimexPPM)
	}
	return caps, nil
}

// GetFrequency returns the current frequency offset of the clock in PPM.
func (c UnixClock) GetFrequency() (float64, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return 0, err
	}
	return frequencyFromScaledPPM(int64(tx.Freq)), nil
}

// SetFrequency changes the frequency offset of the clock in PPM, saturating
// at the kernel limits, and returns the time the change was applied.
func (c UnixClock) SetFrequency(frequencyPPM float64, hold HoldFrequency) (Timestamp, error) {
	tx := frequencyRequest(frequencyPPM, hold)
	if _, err := c.Adjtime(tx); err != nil {
		return Timestamp{}, err
	}
	return c.extractTime(tx)
}

// AdjustFrequency changes the frequency of the clock by a multiplier applied
// to its current rate, without the caller first querying the absolute rate.
// To set the frequency to a fixed value use SetFrequency.
func (c UnixClock) AdjustFrequency(multiplier float64, hold HoldFrequency) (Timestamp, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return Timestamp{}, err
	}
	return c.SetFrequency(composeFrequency(int64(tx.Freq), multiplier), hold)
}

// StepClock changes the current time of the clock by an offset and returns
// the time at which the change was applied.
func (c UnixClock) StepClock(offset TimeOffset) (Timestamp, error) {
	tx := stepRequest(offset)
	if _, err := c.Adjtime(tx); err != nil {
		return Timestamp{}, err
	}
	return c.extractTime(tx)
}

// SetLeapSeconds changes the indicator for an upcoming leap second. Only the
// leap bit is asserted; unrelated status bits are left alone.
func (c UnixClock) SetLeapSeconds(leap LeapIndicator) error {
	return c.updateStatus(func(status int32) int32 {
		return status | leapStatusBits(leap)
	})
}

// LeapSeconds returns the leap second indicator currently set on the clock.
func (c UnixClock) LeapSeconds() (LeapIndicator, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return LeapNoWarning, err
	}
	return leapFromStatus(tx.Status), nil
}

// DisableKernelNTPAlgorithm turns off all kernel clock discipline: the
// phase-locked loop, the frequency-locked loop, and PPS time/frequency
// discipline. It is all your responsibility now. Clocks without such loops
// (external hardware clocks) are treated as success.
func (c UnixClock) DisableKernelNTPAlgorithm() error {
	return IgnoreNotSupported(c.updateStatus(func(status int32) int32 {
		return status &^ (unix.STA_PLL | unix.STA_FLL | unix.STA_PPSTIME | unix.STA_PPSFREQ)
	}))
}

// EnableKernelNTPAlgorithm enables the kernel phase-locked loop, used by the
// standard NTP algorithm. Custom discipline algorithms (NTP or PTP) should
// not enable this.
func (c UnixClock) EnableKernelNTPAlgorithm() error {
	return c.updateStatus(func(status int32) int32 {
		status |= unix.STA_PLL
		return status &^ (unix.STA_FLL | unix.STA_PPSTIME | unix.STA_PPSFREQ)
	})
}

// SetTAI sets the offset between TAI and UTC in seconds.
func (c UnixClock) SetTAI(offset int) error {
	_, err := c.Adjtime(taiRequest(offset))
	return err
}

// GetTAI returns the offset between TAI and UTC in seconds. Clocks with no
// TAI concept (pure hardware clocks) report 0.
func (c UnixClock) GetTAI() (int, error) {
	var tx unix.Timex
	if _, err := c.Adjtime(&tx); err != nil {
		return 0, err
	}
	return int(tx.Tai), nil
}

// ErrorEstimateUpdate provides the kernel with the current best estimates
// for the statistical error of the clock and the maximum error due to
// frequency drift and distance to the root clock. The kernel keeps these in
// microseconds, so finer input is truncated. Clocks that cannot track error
// estimates are treated as success.
func (c UnixClock) ErrorEstimateUpdate(estimatedError, maximumError time.Duration) error {
	_, err := c.Adjtime(errorEstimateRequest(estimatedError, maximumError))
	return IgnoreNotSupported(err)
}

// ReadStatus returns the kernel status bits and clock state, for diagnostics.
func (c UnixClock) ReadStatus() (Status, State, error) {
	var tx unix.Timex
	state, err := c.Adjtime(&tx)
	if err != nil {
		return 0, 0, err
	}
	return Status(tx.Status), State(state), nil
}
