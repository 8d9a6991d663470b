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

package monitor

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"

	"github.com/pendulum-project/clock-steering/clock"
)

// statusClock adds a canned timex status word on top of the mock
type statusClock struct {
	*MockClock
	status clock.Status
}

func (s statusClock) ReadStatus() (clock.Status, clock.State, error) {
	return s.status, clock.State(unix.TIME_OK), nil
}

func TestExporterSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := NewMockClock(ctrl)
	mockClock.EXPECT().GetFrequency().Return(12.5, nil)
	mockClock.EXPECT().GetTAI().Return(37, nil)
	mockClock.EXPECT().Capabilities().Return(clock.DefaultCapabilities(), nil)

	e := NewExporter(DefaultConfig(), []Source{{Name: "mock", Clock: mockClock}})
	e.scrape()

	labels := prometheus.Labels{"clock": "mock"}
	require.Equal(t, 12.5, testutil.ToFloat64(e.frequencyPPM.With(labels)))
	require.Equal(t, 37.0, testutil.ToFloat64(e.taiOffset.With(labels)))
	require.Equal(t, 32768000000.0, testutil.ToFloat64(e.maxFreqPPB.With(labels)))
	require.Equal(t, 0.0, testutil.ToFloat64(e.readFailures.With(labels)))
}

func TestExporterSampleFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := NewMockClock(ctrl)
	mockClock.EXPECT().GetFrequency().Return(0.0, clock.ErrNoPermission)
	// NotSupported is a capability gap, not a read failure
	mockClock.EXPECT().GetTAI().Return(0, clock.ErrNotSupported)
	mockClock.EXPECT().Capabilities().Return(clock.ClockCapabilities{}, clock.ErrInvalid)

	e := NewExporter(DefaultConfig(), []Source{{Name: "mock", Clock: mockClock}})
	e.scrape()

	labels := prometheus.Labels{"clock": "mock"}
	require.Equal(t, 2.0, testutil.ToFloat64(e.readFailures.With(labels)))
}

func TestExporterSynchronized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := NewMockClock(ctrl)
	mockClock.EXPECT().GetFrequency().Return(0.0, nil).Times(2)
	mockClock.EXPECT().GetTAI().Return(0, nil).Times(2)
	mockClock.EXPECT().Capabilities().Return(clock.DefaultCapabilities(), nil).Times(2)

	e := NewExporter(DefaultConfig(), []Source{
		{Name: "good", Clock: statusClock{MockClock: mockClock}},
		{Name: "bad", Clock: statusClock{MockClock: mockClock, status: clock.Status(unix.STA_UNSYNC)}},
	})
	e.scrape()

	require.Equal(t, 1.0, testutil.ToFloat64(e.synchronized.With(prometheus.Labels{"clock": "good"})))
	require.Equal(t, 0.0, testutil.ToFloat64(e.synchronized.With(prometheus.Labels{"clock": "bad"})))
}
