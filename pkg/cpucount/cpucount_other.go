//go:build !linux

package cpucount

// sysconf processor counts are not available on this platform; callers
// fall back to the runtime count.

func onlineCPUs() int { return 0 }

func configuredCPUs() int { return 0 }
