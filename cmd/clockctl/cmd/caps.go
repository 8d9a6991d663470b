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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(capsCmd)
}

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Print the adjustment limits of the clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()

		caps, err := c.Capabilities()
		if err != nil {
			log.Fatal(err)
		}
		resolution, err := c.Resolution()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("max frequency adjustment: %d PPB (%.3f PPM)\n",
			caps.MaxFrequencyAdjustmentPPB, float64(caps.MaxFrequencyAdjustmentPPB)/1000.0)
		fmt.Printf("max offset adjustment: %v\n", time.Duration(caps.MaxOffsetAdjustmentNS))
		if !resolution.IsZero() {
			fmt.Printf("resolution: %s\n", resolution)
		}
	},
}
