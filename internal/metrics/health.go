package metrics

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

/*
 * Engine resource-health snapshot, grounded on the teacher's use of
 * gopsutil for its own system-metrics reporting.
 */

// HealthSnapshot is a point-in-time read of the process host's resource
// pressure, useful for deciding whether to shed decode passes under load.
type HealthSnapshot struct {
	CPUPercent    float64
	MemUsedBytes  uint64
	MemTotalBytes uint64
}

// ReadHealth samples CPU and memory usage. A failed sub-read leaves its
// zero value rather than aborting the whole snapshot.
func ReadHealth() HealthSnapshot {
	var snap HealthSnapshot

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		snap.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemUsedBytes = vm.Used
		snap.MemTotalBytes = vm.Total
	}
	return snap
}
