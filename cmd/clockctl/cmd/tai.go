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
)

func init() {
	RootCmd.AddCommand(taiCmd)
	taiCmd.AddCommand(taiSetCmd)
}

var taiCmd = &cobra.Command{
	Use:   "tai",
	Short: "Print the TAI-UTC offset applied by the kernel, in seconds",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		offset, err := c.GetTAI()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(offset)
	},
}

var taiSetCmd = &cobra.Command{
	Use:   "set <seconds>",
	Short: "Set the TAI-UTC offset, i.e. 37",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		offset, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("parsing %q: %v", args[0], err)
		}
		c, cleanup, err := targetClock()
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		if err := c.SetTAI(offset); err != nil {
			log.Fatal(err)
		}
	},
}
