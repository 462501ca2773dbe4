//go:build linux

package cpucount

import "github.com/tklauser/go-sysconf"

func onlineCPUs() int {
	n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err != nil {
		return 0
	}
	return int(n)
}

func configuredCPUs() int {
	n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_CONF)
	if err != nil {
		return 0
	}
	return int(n)
}
