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
	"fmt"
	"math"
	"time"
)

const nanosPerSecond = 1_000_000_000

// Timestamp is a moment in time, an offset from the Unix epoch.
//
// The format maps directly onto the kernel time structures, and carries
// subnanoseconds for hardware that reports finer than nanosecond resolution.
type Timestamp struct {
	Seconds int64
	// Nanos is always in [0, 999999999].
	Nanos uint32
	// Subnanos is extra precision below one nanosecond, as reported by
	// some hardware clocks. Opaque: it never participates in arithmetic.
	Subnanos uint32
}

// TimeOffset is a relative change to a clock, used as input to StepClock.
// Negative offsets carry negative Seconds with Nanos as the non-negative
// sub-second remainder, which is the canonical form the kernel wants.
type TimeOffset struct {
	Seconds int64
	// Nanos is always in [0, 999999999].
	Nanos uint32
}

// OffsetFromDuration converts a stdlib duration into a TimeOffset.
func OffsetFromDuration(d time.Duration) TimeOffset {
	nsec := d.Nanoseconds()
	sec := nsec / nanosPerSecond
	rem := nsec % nanosPerSecond
	if rem < 0 {
		sec--
		rem += nanosPerSecond
	}
	return TimeOffset{Seconds: sec, Nanos: uint32(rem)}
}

// Duration converts the offset back into a stdlib duration. Offsets beyond
// the duration range saturate.
func (o TimeOffset) Duration() time.Duration {
	if o.Seconds > math.MaxInt64/nanosPerSecond ||
		(o.Seconds == math.MaxInt64/nanosPerSecond && int64(o.Nanos) > math.MaxInt64%nanosPerSecond) {
		return time.Duration(math.MaxInt64)
	}
	// Nanos is non-negative, so the boundary second cannot underflow.
	if o.Seconds < math.MinInt64/nanosPerSecond {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(o.Seconds)*time.Second + time.Duration(o.Nanos)
}

type precision int

const (
	precisionNano precision = iota
	precisionMicro
)

// normalize converts a raw (seconds, sub-second) pair reported by the OS
// into a canonical Timestamp. Hardware has been observed to report
// over-range nanosecond counts, so the sub-second part is folded into the
// seconds rather than rejected; seconds arithmetic wraps rather than traps.
func normalize(seconds int64, subseconds int64, p precision) Timestamp {
	nanos := subseconds
	if p == precisionMicro {
		if nanos > math.MaxInt64/1000 || nanos < math.MinInt64/1000 {
			nanos = 0
		} else {
			nanos *= 1000
		}
	}

	for nanos >= nanosPerSecond {
		seconds++
		nanos -= nanosPerSecond
	}
	for nanos < 0 {
		seconds--
		nanos += nanosPerSecond
	}

	return Timestamp{Seconds: seconds, Nanos: uint32(nanos)}
}

// TimestampFromUnix builds a Timestamp from raw Unix seconds and
// nanoseconds, normalizing an out-of-range nanosecond count.
func TimestampFromUnix(seconds, nanos int64) Timestamp {
	return normalize(seconds, nanos, precisionNano)
}

// IsZero reports whether the timestamp is the canonical zero value. Zero is
// used as a sentinel for "unavailable" in syscall replies.
func (t Timestamp) IsZero() bool {
	return t == Timestamp{}
}

// Compare orders timestamps lexicographically on (Seconds, Nanos, Subnanos).
// It returns -1 when t is before other, 0 when equal, and 1 when after.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.Seconds != other.Seconds:
		if t.Seconds < other.Seconds {
			return -1
		}
		return 1
	case t.Nanos != other.Nanos:
		if t.Nanos < other.Nanos {
			return -1
		}
		return 1
	case t.Subnanos != other.Subnanos:
		if t.Subnanos < other.Subnanos {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether t is before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Compare(other) < 0
}

// After reports whether t is after other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Compare(other) > 0
}

// Add applies an offset to the timestamp, renormalizing the result.
func (t Timestamp) Add(offset TimeOffset) Timestamp {
	ts := normalize(t.Seconds+offset.Seconds, int64(t.Nanos)+int64(offset.Nanos), precisionNano)
	ts.Subnanos = t.Subnanos
	return ts
}

// Sub returns the offset from other to t.
func (t Timestamp) Sub(other Timestamp) TimeOffset {
	sec := t.Seconds - other.Seconds
	nanos := int64(t.Nanos) - int64(other.Nanos)
	if nanos < 0 {
		sec--
		nanos += nanosPerSecond
	}
	return TimeOffset{Seconds: sec, Nanos: uint32(nanos)}
}

// Time converts the timestamp to a stdlib time.Time, dropping subnanoseconds.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.Seconds, t.Nanos)
}
