//go:build linux

package affinity

import "golang.org/x/sys/unix"

func pin(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}
