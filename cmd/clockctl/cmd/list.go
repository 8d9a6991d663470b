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
	"net"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/pendulum-project/clock-steering/phc"
)

func init() {
	RootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List network interfaces and their PTP hardware clocks",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		ifaces, err := phc.IfacesInfo()
		if err != nil {
			log.Fatal(err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"interface", "up", "phc", "hw timestamping"})
		for _, data := range ifaces {
			up := "no"
			if data.Iface.Flags&net.FlagUp != 0 {
				up = "yes"
			}
			device := data.PHCPath()
			if device == "" {
				device = "-"
			}
			hwts := "no"
			if data.TSInfo.So_timestamping&unix.SOF_TIMESTAMPING_RAW_HARDWARE != 0 {
				hwts = "yes"
			}
			table.Append([]string{data.Iface.Name, up, device, hwts})
		}
		table.Render()
	},
}
