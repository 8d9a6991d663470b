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
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pendulum-project/clock-steering/clock"
)

var freqHoldFlag bool

func init() {
	RootCmd.AddCommand(freqCmd)
	freqCmd.AddCommand(freqSetCmd)
	freqCmd.AddCommand(freqAdjustCmd)
	freqSetCmd.Flags().BoolVar(&freqHoldFlag, "hold", false, "also freeze the kernel's compensating frequency nudges (STA_FREQHOLD)")
	freqAdjustCmd.Flags().BoolVar(&freqHoldFlag, "hold", false, "also freeze the kernel's compensating frequency nudges (STA_FREQHOLD)")
}

func holdFromFlag() clock.HoldFrequency {
	if freqHoldFlag {
		return clock.HoldFrequencyEnable
	}
	return clock.HoldFrequencyDisable
}

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Print the current frequency adjustment of the clock in PPM",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		freq, err := c.GetFrequency()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6f\n", freq)
	},
}

var freqSetCmd = &cobra.Command{
	Use:   "set <ppm>",
	Short: "Set the frequency adjustment of the clock to an absolute value in PPM",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		ppm, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatalf("parsing %q: %v", args[0], err)
		}
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		applied, err := c.SetFrequency(ppm, holdFromFlag())
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("applied at %v", applied)
	},
}

var freqAdjustCmd = &cobra.Command{
	Use:   "adjust <multiplier>",
	Short: "Multiply the current rate of the clock, i.e. 1.000005 to speed it up by 5 PPM",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		multiplier, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatalf("parsing %q: %v", args[0], err)
		}
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		applied, err := c.AdjustFrequency(multiplier, holdFromFlag())
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("applied at %v", applied)
	},
}
