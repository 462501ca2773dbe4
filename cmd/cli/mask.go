package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/probekit/cpu-affinity/pkg/affinity"
	"github.com/spf13/cobra"
)

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Print the affinity mask as a CPU list (taskset -c style)",
		RunE: func(cmd *cobra.Command, args []string) error {
			probe := affinity.New()
			cpus, err := probe.CPUs()
			if err != nil {
				return err
			}
			fmt.Println(formatCPUList(cpus))
			return nil
		},
	}
	return cmd
}

func formatCPUList(cpus []int) string {
	res := make([]string, 0, len(cpus))
	for _, cpu := range cpus {
		res = append(res, strconv.Itoa(cpu))
	}
	return strings.Join(res, ",")
}
