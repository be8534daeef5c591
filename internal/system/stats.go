// Package system reports process-level run statistics for the CLI's
// --stats flag.
package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// RunStats is a snapshot of what a run cost.
type RunStats struct {
	Elapsed    time.Duration
	RSSBytes   uint64
	CPUPercent float64
}

// Collect gathers stats for the current process. Failures degrade to
// zeroed fields rather than aborting the run being measured.
func Collect(start time.Time) RunStats {
	stats := RunStats{Elapsed: time.Since(start)}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		stats.RSSBytes = mem.RSS
	}
	if pct, err := proc.CPUPercent(); err == nil {
		stats.CPUPercent = pct
	}
	return stats
}

// String formats the stats the way the CLI prints them.
func (s RunStats) String() string {
	return fmt.Sprintf("elapsed %s | rss %.1f MB | cpu %.1f%%",
		s.Elapsed.Round(time.Millisecond),
		float64(s.RSSBytes)/(1024*1024),
		s.CPUPercent)
}
