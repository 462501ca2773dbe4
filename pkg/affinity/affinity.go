// Package affinity reports how many logical CPUs the calling process is
// allowed to run on, according to the kernel's scheduling-affinity mask.
// It exists for callers that size worker pools: runtime.NumCPU alone
// over-reports when the process runs under taskset or a restricted cpuset.
package affinity

import (
	"errors"
	"fmt"

	"github.com/probekit/cpu-affinity/pkg/cpucount"
)

// CPUSet and currentMask are defined in affinity_linux.go for Linux
// and affinity_other.go for other platforms.

var (
	// ErrQueryFailed is returned when the OS rejects the affinity query.
	ErrQueryFailed = errors.New("affinity query failed")

	// ErrUnsupported is returned on platforms without a per-process
	// affinity mask concept. Callers detect it with errors.Is and fall
	// back to a portable CPU count.
	ErrUnsupported = errors.New("CPU affinity is only supported on Linux")
)

// Sentinel is the value CountOrSentinel returns when the query fails.
// A valid count is always >= 0.
const Sentinel = -1

// Source provides the calling process's current scheduling-affinity mask.
type Source interface {
	CurrentMask() (*CPUSet, error)
}

// OSSource reads the affinity mask from the kernel on every call.
type OSSource struct{}

// CurrentMask returns a fresh snapshot of the process affinity mask.
func (OSSource) CurrentMask() (*CPUSet, error) {
	return currentMask()
}

// Probe counts the logical CPUs in the calling process's affinity mask.
// It is read-only after construction and safe for concurrent use; every
// query allocates its own mask and touches no shared state.
type Probe struct {
	source Source
	online func() int
}

// New returns a Probe backed by the operating system.
func New() *Probe {
	return NewWithSource(OSSource{}, cpucount.Online)
}

// NewWithSource returns a Probe reading masks from src. online reports the
// host's online logical CPU count; nil selects the default query.
func NewWithSource(src Source, online func() int) *Probe {
	if online == nil {
		online = cpucount.Online
	}
	return &Probe{
		source: src,
		online: online,
	}
}

// Count returns the number of logical CPUs in the calling process's current
// affinity mask. The result is always in [0, online CPU count]. It is a
// point-in-time snapshot: the kernel may change the process affinity
// between calls, so treat the value as advisory.
func (p *Probe) Count() (int, error) {
	mask, err := p.source.CurrentMask()
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	nproc := p.online()
	count := 0
	for cpu := 0; cpu < nproc; cpu++ {
		if mask.IsSet(cpu) {
			count++
		}
	}
	return count, nil
}

// CountOrSentinel returns the affinity count, or Sentinel (-1) when the
// underlying query fails. It matches the raw integer contract expected by
// runtime-style callers that cannot consume structured errors.
func (p *Probe) CountOrSentinel() int {
	count, err := p.Count()
	if err != nil {
		return Sentinel
	}
	return count
}

// CPUs returns the logical CPU indices in the calling process's current
// affinity mask, in ascending order. Indices at or beyond the online CPU
// count are not reported.
func (p *Probe) CPUs() ([]int, error) {
	mask, err := p.source.CurrentMask()
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	nproc := p.online()
	cpus := make([]int, 0, nproc)
	for cpu := 0; cpu < nproc; cpu++ {
		if mask.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}

var defaultProbe = New()

// Count reports the affinity count using the default OS-backed probe.
func Count() (int, error) {
	return defaultProbe.Count()
}

// CountOrSentinel reports the affinity count using the default OS-backed
// probe, or Sentinel when the query fails.
func CountOrSentinel() int {
	return defaultProbe.CountOrSentinel()
}
