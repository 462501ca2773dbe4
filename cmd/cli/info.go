package main

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/probekit/cpu-affinity/pkg/affinity"
	"github.com/probekit/cpu-affinity/pkg/cpucount"
	"github.com/spf13/cobra"
)

// Report describes the host CPU counts and the process affinity view.
type Report struct {
	AffinityCPUs   int    `json:"affinity_cpus"`
	OnlineCPUs     int    `json:"online_cpus"`
	ConfiguredCPUs int    `json:"configured_cpus"`
	PresentCPUs    int    `json:"present_cpus"`
	RuntimeCPUs    int    `json:"runtime_cpus"`
	Source         string `json:"source"`
}

// counter is the slice of the affinity probe the report needs.
type counter interface {
	Count() (int, error)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print a JSON report of host and process CPU counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(buildReport(affinity.New()))
		},
	}
	return cmd
}

func buildReport(probe counter) Report {
	rep := Report{
		OnlineCPUs:     cpucount.Online(),
		ConfiguredCPUs: cpucount.Configured(),
		PresentCPUs:    cpucount.Present(),
		RuntimeCPUs:    runtime.NumCPU(),
	}

	count, err := probe.Count()
	if err != nil {
		// The affinity concept is missing or the query was rejected.
		// Substitute the portable count, as external callers would.
		rep.AffinityCPUs = rep.OnlineCPUs
		rep.Source = "portable-fallback"
		return rep
	}

	rep.AffinityCPUs = count
	rep.Source = "sched_getaffinity"
	return rep
}
