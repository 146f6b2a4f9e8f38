//go:build !linux

package sysinfo

import "runtime"

// affinityCPUs falls back to the logical CPU count on platforms where
// sched_getaffinity has no equivalent wired up.
func affinityCPUs() int {
	return runtime.NumCPU()
}
