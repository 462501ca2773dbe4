//go:build linux

package affinity

import "golang.org/x/sys/unix"

// CPUSet is an alias for the Linux-specific CPU affinity mask.
type CPUSet = unix.CPUSet

// currentMask wraps the Linux sched_getaffinity syscall for the calling
// process (pid 0). The mask lives on the stack for the duration of one
// query and is never cached.
func currentMask() (*CPUSet, error) {
	var mask CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return nil, err
	}
	return &mask, nil
}
