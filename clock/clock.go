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

import "time"

// LeapIndicator announces an upcoming leap second to the kernel.
type LeapIndicator int

// Leap second indicators.
const (
	// LeapNoWarning means no leap second is pending.
	LeapNoWarning LeapIndicator = iota
	// Leap61 means the last minute of the day has 61 seconds.
	Leap61
	// Leap59 means the last minute of the day has 59 seconds.
	Leap59
	// LeapUnknown means the leap status is unknown (the clock is unsynchronized).
	LeapUnknown
)

func (l LeapIndicator) String() string {
	switch l {
	case LeapNoWarning:
		return "none"
	case Leap61:
		return "leap61"
	case Leap59:
		return "leap59"
	case LeapUnknown:
		return "unknown"
	}
	return "invalid"
}

// HoldFrequency controls whether a frequency change also freezes the small
// compensating frequency nudges the kernel normally makes alongside offset
// corrections (STA_FREQHOLD).
type HoldFrequency int

// HoldFrequency values. The zero value leaves the kernel behaviour unchanged.
const (
	HoldFrequencyDisable HoldFrequency = iota
	HoldFrequencyEnable
)

// ClockCapabilities describes the frequency and offset adjustment limits of
// a clock. For realtime clocks the values are hard-coded in the OS kernel;
// for PTP clocks they are reported by the hardware.
type ClockCapabilities struct {
	// MaxFrequencyAdjustmentPPB is the maximum frequency adjustment in
	// parts per billion.
	MaxFrequencyAdjustmentPPB uint64
	// MaxOffsetAdjustmentNS is the maximum offset adjustment in nanoseconds.
	MaxOffsetAdjustmentNS uint32
}

// DefaultCapabilities returns conservative fallback limits, used when a
// clock cannot report its own. These are folklore kernel values
// (32768000 ppm, 0.5s), not verified hardware limits.
func DefaultCapabilities() ClockCapabilities {
	return ClockCapabilities{
		MaxFrequencyAdjustmentPPB: 32_768_000_000,
		MaxOffsetAdjustmentNS:     500_000_000,
	}
}

// Clock reads information from and modifies an OS clock.
//
// Frequencies are expressed in PPM of drift relative to the clock's natural
// rate. Every fallible operation returns an Error from the closed taxonomy
// in this package. Operations documented as absorbing ErrNotSupported return
// nil when the underlying clock lacks the capability.
type Clock interface {
	// Now returns the current time of the clock.
	Now() (Timestamp, error)

	// Resolution returns the resolution of the clock. The returned
	// Timestamp is all zeros when the resolution is unavailable.
	Resolution() (Timestamp, error)

	// Capabilities returns the adjustment limits of the clock.
	Capabilities() (ClockCapabilities, error)

	// GetFrequency returns the current frequency offset of the clock in PPM.
	GetFrequency() (float64, error)

	// SetFrequency changes the frequency offset of the clock and returns
	// the time at which the change was applied.
	SetFrequency(frequencyPPM float64, hold HoldFrequency) (Timestamp, error)

	// StepClock changes the current time of the clock by an offset and
	// returns the time at which the change was applied.
	StepClock(offset TimeOffset) (Timestamp, error)

	// SetLeapSeconds changes the indicator for an upcoming leap second.
	SetLeapSeconds(leap LeapIndicator) error

	// DisableKernelNTPAlgorithm turns off the kernel discipline loops
	// (phase lock, frequency lock, PPS time, PPS frequency). Clocks
	// without such loops are treated as success.
	DisableKernelNTPAlgorithm() error

	// SetTAI sets the offset between TAI and UTC in seconds.
	SetTAI(offset int) error

	// GetTAI returns the offset between TAI and UTC in seconds.
	GetTAI() (int, error)

	// ErrorEstimateUpdate provides the kernel with the current best
	// estimates for the statistical error of the clock and the maximum
	// error. Clocks that cannot track these are treated as success.
	ErrorEstimateUpdate(estimatedError, maximumError time.Duration) error
}
