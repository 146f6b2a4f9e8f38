//go:build linux

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// affinityCPUs returns the number of CPUs in the calling thread's affinity
// mask, falling back to the logical CPU count if the syscall fails (e.g.
// inside some sandboxes that deny sched_getaffinity).
func affinityCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	n := set.Count()
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}
