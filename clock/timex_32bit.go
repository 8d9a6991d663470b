//go:build linux && (386 || arm)

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

import "golang.org/x/sys/unix"

// 32-bit counterparts of the timex field setters. The conversions truncate,
// matching what the C API can carry on these platforms.

func setFreq(tx *unix.Timex, scaledPPM int64) {
	tx.Freq = int32(scaledPPM)
}

func setTime(tx *unix.Timex, sec, subsec int64) {
	tx.Time.Sec = int32(sec)
	tx.Time.Usec = int32(subsec)
}

func setErrorEstimate(tx *unix.Timex, estUsec, maxUsec int64) {
	tx.Esterror = int32(estUsec)
	tx.Maxerror = int32(maxUsec)
}

func setConstant(tx *unix.Timex, constant int64) {
	tx.Constant = int32(constant)
}
