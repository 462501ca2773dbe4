//go:build !linux

package affinity

// CPUSet is a stub type for non-Linux platforms.
// The actual implementation only works on Linux.
type CPUSet struct {
	bits [16]uint64 // matches unix.CPUSet size
}

// Set marks cpu as part of the set.
func (s *CPUSet) Set(cpu int) {
	if cpu >= 0 && cpu < 1024 {
		s.bits[cpu/64] |= 1 << (uint(cpu) % 64)
	}
}

// IsSet reports whether cpu is part of the set.
func (s *CPUSet) IsSet(cpu int) bool {
	if cpu >= 0 && cpu < 1024 {
		return s.bits[cpu/64]&(1<<(uint(cpu)%64)) != 0
	}
	return false
}

// currentMask reports the missing affinity concept on non-Linux platforms.
// Callers are expected to substitute a portable CPU count.
func currentMask() (*CPUSet, error) {
	return nil, ErrUnsupported
}
