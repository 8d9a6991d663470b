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
	"io/fs"
	"testing"

	"github.com/pendulum-project/clock-steering/clock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassifyOpenError(t *testing.T) {
	testCases := []struct {
		in   error
		want error
	}{
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.ENOENT}, clock.ErrNoDevice},
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.ENXIO}, clock.ErrNoDevice},
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.ENODEV}, clock.ErrNoDevice},
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.EPERM}, clock.ErrNoPermission},
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.EACCES}, clock.ErrNoAccess},
		{&fs.PathError{Op: "open", Path: "/dev/ptp0", Err: unix.EMFILE}, clock.ErrInvalid},
		{errors.New("not an errno at all"), clock.ErrInvalid},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, classifyOpenError(tc.in), "classifying %v", tc.in)
	}
}

func TestClassifyIoctlError(t *testing.T) {
	require.NoError(t, classifyIoctlError(nil))
	require.Equal(t, clock.ErrNotSupported, classifyIoctlError(unix.ENOTTY))
	require.Equal(t, clock.ErrInvalid, classifyIoctlError(unix.EINVAL))
	require.Equal(t, clock.ErrNoPermission, classifyIoctlError(unix.EPERM))
	require.Panics(t, func() { _ = classifyIoctlError(errors.New("boom")) })
}

func TestGettime(t *testing.T) {
	ts, err := gettime(unix.CLOCK_REALTIME)
	require.NoError(t, err)
	require.False(t, ts.IsZero())
}
