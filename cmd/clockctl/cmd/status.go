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

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(statusCmd)
}

func printStatus(c kernelClock) error {
	now, err := c.Now()
	if err != nil {
		return err
	}
	freq, err := c.GetFrequency()
	if err != nil {
		return err
	}
	status, state, err := c.ReadStatus()
	if err != nil {
		return err
	}
	leap, err := c.LeapSeconds()
	if err != nil {
		return err
	}

	sync := color.GreenString("yes")
	if !status.Synchronized() {
		sync = color.RedString("no")
	}
	fmt.Printf("time: %s (%s)\n", now.Time().UTC().Format("2006-01-02T15:04:05.000000000Z07:00"), now)
	fmt.Printf("frequency adjustment: %.6f PPM\n", freq)
	fmt.Printf("status: 0x%04x (%v)\n", int32(status), status)
	fmt.Printf("state: %v\n", state)
	fmt.Printf("leap: %v\n", leap)
	fmt.Printf("synchronized: %s\n", sync)
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current time and discipline state of the clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		if err := printStatus(c); err != nil {
			log.Fatal(err)
		}
	},
}
