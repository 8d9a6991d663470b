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

import "math"

// man clock_adjtime(2):
// In struct timex, freq, ppsfreq, and stabil are ppm (parts per million)
// with a 16-bit fractional part, which means that a value of 1 in one of
// those fields actually means 2^-16 ppm, and 2^16=65536 is 1 ppm.

// PPBToTimexPPM converts PPB to timex scaled-ppm units and back.
const PPBToTimexPPM = 65.536

// maxFrequencyPPM is the kernel clamp on the frequency field expressed in
// PPM. Values beyond it saturate, matching the kernel's own behaviour, so
// callers never see an error where the kernel would silently clamp.
const maxFrequencyPPM = 32_768_000 - 1

// scaledPPMFromFrequency encodes a PPM frequency offset into the timex
// frequency field, saturating at the kernel limits.
func scaledPPMFromFrequency(frequencyPPM float64) int64 {
	clamped := math.Min(math.Max(frequencyPPM, -maxFrequencyPPM), maxFrequencyPPM)
	return int64(math.Round(clamped * 65536.0))
}

// frequencyFromScaledPPM decodes the timex frequency field into PPM,
// splitting off the 16-bit fractional part to keep the decode exact.
func frequencyFromScaledPPM(scaledPPM int64) float64 {
	return float64(scaledPPM>>16) + float64(scaledPPM&0xffff)/65536.0
}

// composeFrequency returns the PPM value that makes the clock run at
// multiplier times its current rate, given the current timex frequency
// field. For example, a clock at 10.0MHz that should run at 10.1MHz wants
// multiplier 1.01. A multiplier of exactly 1.0 reproduces the current field.
func composeFrequency(currentScaledPPM int64, multiplier float64) float64 {
	const m = 1_000_000.0

	currentPPM := frequencyFromScaledPPM(currentScaledPPM)

	// PPM runs in the opposite direction from the rate: positive PPM
	// means the clock is disciplined to run slower.
	currentMultiplier := 1.0 - currentPPM/m

	newMultiplier := currentMultiplier * multiplier

	return -((newMultiplier - 1.0) * m)
}
