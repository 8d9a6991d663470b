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

//go:build unix

package clock

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Error is the closed set of clock operation failures. Every error number
// the clock syscalls can legitimately produce maps to exactly one of these.
type Error uint8

// Clock errors.
const (
	// ErrNoPermission means the caller lacks the privilege (CAP_SYS_TIME)
	// to modify the clock.
	ErrNoPermission Error = iota + 1
	// ErrNoAccess means access to the clock device was denied.
	ErrNoAccess
	// ErrInvalid means the operation requested is invalid for this clock.
	ErrInvalid
	// ErrNoDevice means the clock device has gone away.
	ErrNoDevice
	// ErrNotSupported means the operation is not supported by this clock.
	ErrNotSupported
)

func (e Error) Error() string {
	switch e {
	case ErrNoPermission:
		return "insufficient permissions to interact with the clock"
	case ErrNoAccess:
		return "access to the clock denied"
	case ErrInvalid:
		return "invalid operation requested"
	case ErrNoDevice:
		return "clock device has gone away"
	case ErrNotSupported:
		return "clock operation not supported by the operating system"
	}
	return fmt.Sprintf("unknown clock error %d", uint8(e))
}

// Errno converts the error back into the OS error number it represents, for
// results that cross back into generic I/O shaped interfaces.
func (e Error) Errno() unix.Errno {
	switch e {
	case ErrNoPermission:
		return unix.EPERM
	case ErrNoAccess:
		return unix.EACCES
	case ErrInvalid:
		return unix.EINVAL
	case ErrNoDevice:
		return unix.ENODEV
	case ErrNotSupported:
		return unix.EOPNOTSUPP
	}
	panic(fmt.Sprintf("unknown clock error %d", uint8(e)))
}

// FromErrno converts the error numbers that adjtimex, clock_adjtime,
// clock_gettime and clock_settime can produce. Anything else means we broke
// the syscall contract (we always pass valid buffers and clock IDs), so it
// panics instead of inventing a new error kind.
func FromErrno(errno unix.Errno) Error {
	switch errno {
	case unix.EINVAL:
		return ErrInvalid
	// The man pages are unclear on whether non-dynamic clocks can return
	// ENODEV, handle it just in case.
	case unix.ENODEV:
		return ErrNoDevice
	case unix.EOPNOTSUPP:
		return ErrNotSupported
	case unix.EPERM:
		return ErrNoPermission
	case unix.EACCES:
		return ErrNoAccess
	case unix.EFAULT:
		panic("clock syscall reported EFAULT: we always pass valid buffers")
	default:
		panic(fmt.Sprintf("clock syscall reported unexpected error %d (%v)", int(errno), errno))
	}
}

// classify maps a raw syscall error into the Error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var errno unix.Errno
	if !errors.As(err, &errno) {
		panic(fmt.Sprintf("clock syscall returned a non-errno error: %v", err))
	}
	return FromErrno(errno)
}

// IgnoreNotSupported turns ErrNotSupported into success, to silently skip
// operations that a clock does not implement. All other values pass through
// untouched.
func IgnoreNotSupported(err error) error {
	if errors.Is(err, ErrNotSupported) {
		return nil
	}
	return err
}
