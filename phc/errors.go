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

	"github.com/pendulum-project/clock-steering/clock"
	"golang.org/x/sys/unix"
)

// classifyOpenError maps a device open failure into the clock error
// taxonomy. Unlike the syscall path, opening by path can fail in caller-
// controlled ways (bad path, symlink trouble), which all land on ErrInvalid
// rather than a panic.
func classifyOpenError(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return clock.ErrInvalid
	}
	switch errno {
	case unix.EPERM:
		return clock.ErrNoPermission
	case unix.EACCES:
		return clock.ErrNoAccess
	case unix.ENOENT, unix.ENXIO, unix.ENODEV:
		return clock.ErrNoDevice
	default:
		return clock.ErrInvalid
	}
}

// classifyIoctlError maps a PTP ioctl failure into the clock error
// taxonomy. ENOTTY means the descriptor is not a PTP clock or the kernel
// predates the request, which is a capability gap, not a fault.
func classifyIoctlError(err error) error {
	if err == nil {
		return nil
	}
	var errno unix.Errno
	if !errors.As(err, &errno) {
		panic(fmt.Sprintf("ptp ioctl returned a non-errno error: %v", err))
	}
	if errno == unix.ENOTTY {
		return clock.ErrNotSupported
	}
	return clock.FromErrno(errno)
}

// gettime is a direct read of an arbitrary clock at nanosecond precision.
func gettime(clockid int32) (clock.Timestamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockid, &ts); err != nil {
		var errno unix.Errno
		if !errors.As(err, &errno) {
			panic(fmt.Sprintf("clock_gettime returned a non-errno error: %v", err))
		}
		return clock.Timestamp{}, clock.FromErrno(errno)
	}
	return clock.TimestampFromUnix(int64(ts.Sec), int64(ts.Nsec)), nil
}
