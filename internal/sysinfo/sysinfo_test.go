package sysinfo

import "testing"

func TestDefaultWorkersAtLeastOne(t *testing.T) {
	if got := DefaultWorkers(); got < 1 {
		t.Errorf("DefaultWorkers() = %d, want >= 1", got)
	}
}

func TestCollectFillsHostFields(t *testing.T) {
	info := Collect()
	if info.OS == "" {
		t.Error("OS should not be empty")
	}
	if info.Arch == "" {
		t.Error("Arch should not be empty")
	}
	if info.AffinityCPUs < 1 {
		t.Errorf("AffinityCPUs = %d, want >= 1", info.AffinityCPUs)
	}
}
