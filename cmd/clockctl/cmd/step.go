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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pendulum-project/clock-steering/clock"
)

func init() {
	RootCmd.AddCommand(stepCmd)
}

var stepCmd = &cobra.Command{
	Use:   "step <offset>",
	Short: "Step the clock by a signed duration, i.e. 1.5s or -250ms",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		offset, err := time.ParseDuration(args[0])
		if err != nil {
			log.Fatalf("parsing %q: %v", args[0], err)
		}
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		applied, err := c.StepClock(clock.OffsetFromDuration(offset))
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("stepped by %v at %v", offset, applied)
	},
}
