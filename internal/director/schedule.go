package director

import "autocam/internal/geom"

// Schedule is the persisted form of a computed motion list, consumed by
// the renderer and the timeline-visualization UI.
type Schedule struct {
	Version string    `yaml:"version"`
	Output  geom.Size `yaml:"output"`
	Motions []Motion  `yaml:"motions"`
}

// ScheduleVersion is written into every schedule file.
const ScheduleVersion = "1.0"

// NewSchedule wraps a motion list for persistence.
func NewSchedule(output geom.Size, motions []Motion) *Schedule {
	return &Schedule{
		Version: ScheduleVersion,
		Output:  output,
		Motions: motions,
	}
}
