// Package sysinfo sizes the pipeline simulator's default worker count from
// the host's CPU affinity, the same role the teacher's dependency-free
// util.GetSystemInfo/AvailableMemoryBytes play for its encoder concurrency.
package sysinfo

import (
	"os"
	"runtime"
)

// Info describes the host the simulator is running on.
type Info struct {
	Hostname     string
	OS           string
	Arch         string
	AffinityCPUs int
}

// Collect gathers host information, including CPU affinity where the
// platform supports querying it.
func Collect() Info {
	hostname, _ := os.Hostname()
	return Info{
		Hostname:     hostname,
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		AffinityCPUs: affinityCPUs(),
	}
}

// DefaultWorkers returns a sensible default worker count for the pipeline:
// the number of CPUs this process is actually scheduled across, never less
// than one.
func DefaultWorkers() int {
	n := affinityCPUs()
	if n < 1 {
		return 1
	}
	return n
}
