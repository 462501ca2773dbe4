package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/probekit/cpu-affinity/pkg/affinity"
	"github.com/probekit/cpu-affinity/pkg/cpucount"
)

type report struct {
	AffinityCPUs int `json:"affinity_cpus"`
	OnlineCPUs   int `json:"online_cpus"`
	RuntimeCPUs  int `json:"runtime_cpus"`
}

func main() {
	jsonOut := flag.Bool("json", false, "Print a JSON report instead of the bare count")
	sentinel := flag.Bool("sentinel", false, "Print -1 on failure instead of exiting with an error")
	flag.Parse()

	probe := affinity.New()

	if *sentinel {
		fmt.Println(probe.CountOrSentinel())
		return
	}

	count, err := probe.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying affinity: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{
			AffinityCPUs: count,
			OnlineCPUs:   cpucount.Online(),
			RuntimeCPUs:  runtime.NumCPU(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(count)
}
