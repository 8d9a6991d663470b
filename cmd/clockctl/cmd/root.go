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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is a main entry point. It's exported so clockctl could be easily extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "clockctl",
	Short: "Inspect and steer kernel and PTP hardware clocks",
}

var verbose bool
var clockFlag string
var deviceFlag string
var ifaceFlag string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&clockFlag, "clock", "c", "system", "well-known clock to target, 'system' or 'tai'")
	RootCmd.PersistentFlags().StringVarP(&deviceFlag, "device", "d", "", "PTP device to target, i.e. /dev/ptp0. Takes precedence over --clock")
	RootCmd.PersistentFlags().StringVarP(&ifaceFlag, "iface", "i", "", "network interface whose PHC to target, i.e. eth0. Takes precedence over --clock")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
