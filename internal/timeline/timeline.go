// Package timeline maps between the three time axes of a project:
// source time (the raw recording), timeline time (edited, with gaps
// where cuts were made) and output time (continuous, as exported).
package timeline

import "fmt"

// Window is a half-open [StartMs, EndMs) slice of timeline time that
// survives the cut. Windows for a timeline are sorted by StartMs and
// pairwise non-overlapping; ValidateWindows enforces that at the
// boundary so the mapping loops can trust it.
type Window struct {
	ID      string `json:"id" yaml:"id"`
	StartMs int64  `json:"start_ms" yaml:"start_ms"`
	EndMs   int64  `json:"end_ms" yaml:"end_ms"`
}

// Duration returns the window length in milliseconds.
func (w Window) Duration() int64 {
	return w.EndMs - w.StartMs
}

// ValidateWindows rejects lists that break the sorted/non-overlapping
// contract. Zero-length windows are allowed; they contribute no output
// time.
func ValidateWindows(windows []Window) error {
	for i, w := range windows {
		if w.EndMs < w.StartMs {
			return fmt.Errorf("window %d (%q): end %d before start %d", i, w.ID, w.EndMs, w.StartMs)
		}
		if i > 0 && w.StartMs < windows[i-1].EndMs {
			return fmt.Errorf("window %d (%q): starts at %d before previous window ends at %d", i, w.ID, w.StartMs, windows[i-1].EndMs)
		}
	}
	return nil
}

// Mapper converts times between the three axes. OffsetMs is the
// timeline position of source time zero.
type Mapper struct {
	Windows  []Window
	OffsetMs int64
}

// TimelineToOutput maps an edited-timeline time to continuous output
// time. The second result is false when the time falls in a cut gap
// (or outside every window).
func (m Mapper) TimelineToOutput(timelineMs int64) (int64, bool) {
	var acc int64
	for _, w := range m.Windows {
		if timelineMs < w.StartMs {
			// Before this window without having matched an earlier
			// one: inside a gap.
			return 0, false
		}
		if timelineMs < w.EndMs {
			return acc + (timelineMs - w.StartMs), true
		}
		acc += w.Duration()
	}
	return 0, false
}

// OutputToTimeline is the inverse of TimelineToOutput.
func (m Mapper) OutputToTimeline(outputMs int64) (int64, bool) {
	if outputMs < 0 {
		return 0, false
	}
	var acc int64
	for _, w := range m.Windows {
		if outputMs < acc+w.Duration() {
			return w.StartMs + (outputMs - acc), true
		}
		acc += w.Duration()
	}
	return 0, false
}

// SourceToOutput composes the fixed timeline offset with the
// timeline-to-output mapping.
func (m Mapper) SourceToOutput(sourceMs int64) (int64, bool) {
	return m.TimelineToOutput(sourceMs + m.OffsetMs)
}

// OutputToSource is the inverse of SourceToOutput.
func (m Mapper) OutputToSource(outputMs int64) (int64, bool) {
	t, ok := m.OutputToTimeline(outputMs)
	if !ok {
		return 0, false
	}
	return t - m.OffsetMs, true
}

// OutputDuration returns the total exported duration.
func (m Mapper) OutputDuration() int64 {
	var total int64
	for _, w := range m.Windows {
		total += w.Duration()
	}
	return total
}

// Range is a half-open [StartMs, EndMs) span of output time.
type Range struct {
	StartMs int64
	EndMs   int64
}

// SourceRangeToOutput clamps a half-open source interval to the portion
// that survives cutting. The second result is false when the interval
// starts inside a gap. The returned range may be shorter than the input
// when the interval straddles a gap or runs past the last window.
func (m Mapper) SourceRangeToOutput(startMs, endMs int64) (Range, bool) {
	outStart, ok := m.SourceToOutput(startMs)
	if !ok {
		return Range{}, false
	}

	// The end is clamped rather than rejected: accumulate all output
	// time the interval covers, stopping at the gap (if any) the end
	// falls into.
	timelineEnd := endMs + m.OffsetMs
	var outEnd int64
	for _, w := range m.Windows {
		if timelineEnd >= w.EndMs {
			outEnd += w.Duration()
			continue
		}
		if timelineEnd > w.StartMs {
			outEnd += timelineEnd - w.StartMs
		}
		break
	}

	if outEnd < outStart {
		outEnd = outStart
	}
	return Range{StartMs: outStart, EndMs: outEnd}, true
}
