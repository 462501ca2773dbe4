// Package cpucount reports host logical CPU counts independent of any one
// process's affinity restriction.
package cpucount

import (
	"path/filepath"
	"runtime"
)

// onlineCPUs and configuredCPUs are defined in cpucount_linux.go for Linux
// and cpucount_other.go for other platforms.

// Online returns the number of logical CPUs currently online and
// schedulable on the host.
func Online() int {
	if n := onlineCPUs(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Configured returns the number of logical CPUs known to the kernel,
// including offline ones.
func Configured() int {
	if n := configuredCPUs(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Present returns the number of CPUs present in sysfs.
// It counts sysfs entries rather than asking the runtime, so CPUs taken
// offline after process start are still included.
func Present() int {
	matches, err := filepath.Glob("/sys/devices/system/cpu/cpu[0-9]*")
	if err != nil || len(matches) == 0 {
		return runtime.NumCPU()
	}
	return len(matches)
}
