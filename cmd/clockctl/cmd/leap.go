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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pendulum-project/clock-steering/clock"
)

func init() {
	RootCmd.AddCommand(leapCmd)
}

var leapIndicators = map[string]clock.LeapIndicator{
	"none":    clock.LeapNoWarning,
	"leap61":  clock.Leap61,
	"leap59":  clock.Leap59,
	"unknown": clock.LeapUnknown,
}

var leapCmd = &cobra.Command{
	Use:   "leap [none|leap61|leap59|unknown]",
	Short: "Print or set the leap second indicator of the clock",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()

		if len(args) == 0 {
			leap, err := c.LeapSeconds()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(leap)
			return
		}

		leap, ok := leapIndicators[args[0]]
		if !ok {
			log.Fatalf("unknown leap indicator %q, must be 'none', 'leap61', 'leap59' or 'unknown'", args[0])
		}
		if err := c.SetLeapSeconds(leap); err != nil {
			log.Fatal(err)
		}
	},
}
