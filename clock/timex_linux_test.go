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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestStepRequest(t *testing.T) {
	tx := stepRequest(TimeOffset{Seconds: 1, Nanos: 200_000_000})
	require.Equal(t, uint32(unix.ADJ_SETOFFSET|unix.ADJ_NANO), tx.Modes)
	require.Equal(t, int64(1), int64(tx.Time.Sec))
	// with ADJ_NANO the timeval sub-second field counts nanoseconds
	require.Equal(t, int64(200_000_000), int64(tx.Time.Usec))
}

func TestStepRequestNegativeOffset(t *testing.T) {
	tx := stepRequest(OffsetFromDuration(-500 * time.Millisecond))
	require.Equal(t, int64(-1), int64(tx.Time.Sec))
	require.Equal(t, int64(500_000_000), int64(tx.Time.Usec))
}

func TestFrequencyRequest(t *testing.T) {
	tx := frequencyRequest(42, HoldFrequencyDisable)
	require.Equal(t, uint32(unix.ADJ_FREQUENCY), tx.Modes)
	require.Equal(t, int64(42)<<16, int64(tx.Freq))
	require.Zero(t, tx.Status&unix.STA_FREQHOLD)
}

func TestFrequencyRequestHold(t *testing.T) {
	tx := frequencyRequest(-1.5, HoldFrequencyEnable)
	require.Equal(t, uint32(unix.ADJ_FREQUENCY|unix.ADJ_STATUS), tx.Modes)
	require.Equal(t, int64(-98304), int64(tx.Freq))
	require.NotZero(t, tx.Status&unix.STA_FREQHOLD)
}

func TestFrequencyRequestSaturates(t *testing.T) {
	tx := frequencyRequest(1e12, HoldFrequencyDisable)
	require.Equal(t, int64(32_767_999)*65536, int64(tx.Freq))
}

func TestErrorEstimateRequest(t *testing.T) {
	tx := errorEstimateRequest(500*time.Millisecond, 1200*time.Millisecond)
	require.Equal(t, uint32(unix.ADJ_ESTERROR|unix.ADJ_MAXERROR), tx.Modes)
	// the kernel fields are microseconds, finer input truncates
	require.Equal(t, int64(500_000), int64(tx.Esterror))
	require.Equal(t, int64(1_200_000), int64(tx.Maxerror))

	tx = errorEstimateRequest(1500*time.Nanosecond, 2999*time.Nanosecond)
	require.Equal(t, int64(1), int64(tx.Esterror))
	require.Equal(t, int64(2), int64(tx.Maxerror))
}

func TestTAIRequest(t *testing.T) {
	tx := taiRequest(37)
	require.Equal(t, uint32(unix.ADJ_TAI), tx.Modes)
	require.Equal(t, int64(37), int64(tx.Constant))
}

func TestStatusRequest(t *testing.T) {
	tx := statusRequest(unix.STA_PLL | unix.STA_INS)
	require.Equal(t, uint32(unix.ADJ_STATUS), tx.Modes)
	require.Equal(t, int32(unix.STA_PLL|unix.STA_INS), tx.Status)
}

func TestLeapIndicatorRoundTrip(t *testing.T) {
	for _, leap := range []LeapIndicator{LeapNoWarning, Leap61, Leap59, LeapUnknown} {
		require.Equal(t, leap, leapFromStatus(leapStatusBits(leap)), "%v", leap)
	}
}

func TestLeapFromStatusIgnoresUnrelatedBits(t *testing.T) {
	require.Equal(t, Leap61, leapFromStatus(unix.STA_INS|unix.STA_PLL|unix.STA_NANO))
	require.Equal(t, LeapNoWarning, leapFromStatus(unix.STA_PLL|unix.STA_FREQHOLD))
}

func TestExtractTimeEmbedded(t *testing.T) {
	tx := &unix.Timex{}
	setTime(tx, 1667818190, 552297)

	// without STA_NANO the embedded timeval is microseconds
	ts, err := Realtime.extractTime(tx)
	require.NoError(t, err)
	require.Equal(t, Timestamp{Seconds: 1667818190, Nanos: 552297000}, ts)

	tx.Status = unix.STA_NANO
	ts, err = Realtime.extractTime(tx)
	require.NoError(t, err)
	require.Equal(t, Timestamp{Seconds: 1667818190, Nanos: 552297}, ts)
}

func TestExtractTimeFallsBackToClockRead(t *testing.T) {
	// hardware clocks may leave the embedded timestamp zeroed
	ts, err := Realtime.extractTime(&unix.Timex{})
	require.NoError(t, err)
	require.False(t, ts.IsZero())
}

func TestNowDoesNotCrash(t *testing.T) {
	ts, err := Realtime.Now()
	require.NoError(t, err)
	require.NotEqual(t, Timestamp{}, ts)
}

func TestResolution(t *testing.T) {
	ts, err := Realtime.Resolution()
	require.NoError(t, err)
	require.False(t, ts.IsZero())
}

func TestGetFrequency(t *testing.T) {
	_, err := Realtime.GetFrequency()
	require.NoError(t, err)
}

func TestGetTAI(t *testing.T) {
	_, err := Realtime.GetTAI()
	require.NoError(t, err)
}

func TestCapabilities(t *testing.T) {
	caps, err := Realtime.Capabilities()
	require.NoError(t, err)
	require.NotZero(t, caps.MaxFrequencyAdjustmentPPB)
	require.NotZero(t, caps.MaxOffsetAdjustmentNS)
}

func TestReadStatus(t *testing.T) {
	status, state, err := Realtime.ReadStatus()
	require.NoError(t, err)
	require.NotEmpty(t, state.String())
	_ = status
}

func TestTAIClockID(t *testing.T) {
	require.Equal(t, int32(unix.CLOCK_TAI), TAI.ClockID())
	require.Equal(t, int32(unix.CLOCK_REALTIME), Realtime.ClockID())
	require.Equal(t, FDToClockID(3), FromFD(3).ClockID())
}
