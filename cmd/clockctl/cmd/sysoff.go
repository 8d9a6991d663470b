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

package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pendulum-project/clock-steering/clock"
	"github.com/pendulum-project/clock-steering/phc"
)

var sysoffSamplesFlag uint

func init() {
	RootCmd.AddCommand(sysoffCmd)
	sysoffCmd.Flags().UintVarP(&sysoffSamplesFlag, "samples", "n", 5, "number of kernel-bracketed samples to take, 0 to use a single measurement")
}

func bestOffset(dev *phc.Device, samples uint) (phc.SysoffResult, error) {
	if samples > 0 {
		extended, err := dev.SysOffsetExtended(samples)
		if err == nil {
			return phc.BestSample(extended)
		}
		if !errors.Is(err, clock.ErrNotSupported) {
			return phc.SysoffResult{}, err
		}
		log.Debug("extended offset ioctl not supported, falling back to a single measurement")
	}
	m, err := dev.SysOffset()
	if err != nil {
		return phc.SysoffResult{}, err
	}
	return m.Estimate(), nil
}

var sysoffCmd = &cobra.Command{
	Use:   "sysoff",
	Short: "Measure the offset between a PTP hardware clock and the system clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		dev, err := targetDevice()
		if err != nil {
			log.Fatal(err)
		}
		defer dev.Close()

		result, err := bestOffset(dev, sysoffSamplesFlag)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("system time: %s\n", result.SysTime)
		fmt.Printf("phc time: %s\n", result.PHCTime)
		fmt.Printf("offset: %v\n", result.Offset)
		fmt.Printf("measurement delay: %v\n", result.Delay)
	},
}
