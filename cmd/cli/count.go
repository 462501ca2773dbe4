package main

import (
	"fmt"
	"log/slog"

	"github.com/probekit/cpu-affinity/pkg/affinity"
	"github.com/probekit/cpu-affinity/pkg/config"
	"github.com/probekit/cpu-affinity/pkg/cpucount"
	"github.com/spf13/cobra"
)

func newCountCmd(cfg *config.Config) *cobra.Command {
	var sentinel bool
	var fallback bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of CPUs in the process affinity mask",
		RunE: func(cmd *cobra.Command, args []string) error {
			probe := affinity.New()

			if sentinel {
				fmt.Println(probe.CountOrSentinel())
				return nil
			}

			count, err := probe.Count()
			if err != nil {
				if fallback {
					slog.Warn("Affinity query unavailable, using portable CPU count", "error", err)
					fmt.Println(cpucount.Online())
					return nil
				}
				return err
			}

			fmt.Println(count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sentinel, "sentinel", false, "Print -1 on failure instead of returning an error")
	cmd.Flags().BoolVar(&fallback, "fallback", cfg.Fallback, "Substitute the portable online CPU count when the affinity query is unavailable")
	return cmd
}
