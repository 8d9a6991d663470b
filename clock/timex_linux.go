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

// Every steering operation builds its own timex request from scratch right
// before the syscall, so the fields each operation touches stay auditable.
// The mode bits select which fields the kernel consumes.

// frequencyRequest sets the frequency field, optionally freezing the small
// compensating frequency adjustments the kernel makes alongside offset
// corrections (ADJ_OFFSET). Without the hold, repeated offset corrections in
// the same direction accumulate into a long-term skew fix; the hold keeps
// frequency fully under the caller's control.
func frequencyRequest(frequencyPPM float64, hold HoldFrequency) *unix.Timex {
	tx := &unix.Timex{Modes: unix.ADJ_FREQUENCY}
	setFreq(tx, scaledPPMFromFrequency(frequencyPPM))
	if hold == HoldFrequencyEnable {
		tx.Modes |= unix.ADJ_STATUS
		tx.Status |= unix.STA_FREQHOLD
	}
	return tx
}

// stepRequest adds the offset to the current time. ADJ_NANO makes the
// sub-second part of the embedded timeval count nanoseconds.
func stepRequest(offset TimeOffset) *unix.Timex {
	tx := &unix.Timex{Modes: unix.ADJ_SETOFFSET | unix.ADJ_NANO}
	setTime(tx, offset.Seconds, int64(offset.Nanos))
	return tx
}

// statusRequest writes the full status field.
func statusRequest(status int32) *unix.Timex {
	return &unix.Timex{Modes: unix.ADJ_STATUS, Status: status}
}

// errorEstimateRequest feeds error statistics back to the kernel. The
// esterror/maxerror fields are always in microseconds, whatever unit the
// caller thinks in.
func errorEstimateRequest(estimatedError, maximumError time.Duration) *unix.Timex {
	tx := &unix.Timex{Modes: unix.ADJ_ESTERROR | unix.ADJ_MAXERROR}
	setErrorEstimate(tx, estimatedError.Microseconds(), maximumError.Microseconds())
	return tx
}

// taiRequest sets the TAI-UTC offset. ADJ_TAI consumes the constant field.
func taiRequest(offset int) *unix.Timex {
	tx := &unix.Timex{Modes: unix.ADJ_TAI}
	setConstant(tx, int64(offset))
	return tx
}

func leapStatusBits(leap LeapIndicator) int32 {
	switch leap {
	case Leap61:
		return unix.STA_INS
	case Leap59:
		return unix.STA_DEL
	case LeapUnknown:
		return unix.STA_UNSYNC
	default:
		return 0
	}
}

func leapFromStatus(status int32) LeapIndicator {
	switch {
	case status&unix.STA_INS != 0:
		return Leap61
	case status&unix.STA_DEL != 0:
		return Leap59
	case status&unix.STA_UNSYNC != 0:
		return LeapUnknown
	default:
		return LeapNoWarning
	}
}
