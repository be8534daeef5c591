// Package hover synthesizes hover pseudo-events from noisy cursor
// samples: wherever the cursor dwells inside a small box for long
// enough, one hover event covering the dwell is emitted. Clicks,
// scrolls and other deliberate interactions break dwell continuity.
package hover

import (
	"math"

	"autocam/internal/events"
	"autocam/internal/geom"
)

const (
	// DefaultBoxFraction of the larger source dimension bounds how far
	// the cursor may wander while still counting as one dwell.
	DefaultBoxFraction = 0.1

	// DefaultMinDurationMs is the shortest dwell worth a hover.
	DefaultMinDurationMs = 1000
)

// Detector finds dwells in an ordered run of cursor samples.
type Detector struct {
	BoxSize       float64
	MinDurationMs int64
}

// NewDetector sizes the dwell box from the source dimensions.
func NewDetector(input geom.Size) *Detector {
	return &Detector{
		BoxSize:       DefaultBoxFraction * math.Max(input.Width, input.Height),
		MinDurationMs: DefaultMinDurationMs,
	}
}

// Detect scans samples (cursor positions, timestamp ascending) against
// boundaries (sorted timestamps of disruptive events) and returns the
// synthesized hover events. Samples without positions are ignored.
//
// The scan is a single left-to-right pass: from each candidate start it
// greedily grows a window while the running bounding box stays within
// BoxSize, remembers the furthest sample that already satisfies the
// duration requirement, and emits at most one hover per dwell before
// resuming past it.
func (d *Detector) Detect(samples []events.Event, boundaries []int64) []events.Event {
	var hovers []events.Event

	i := 0
	for i < len(samples) {
		if samples[i].Position == nil {
			i++
			continue
		}
		start := samples[i]

		limit := nextBoundaryAfter(boundaries, start.TimestampMs)

		// The dwell cannot reach minimum duration before the next
		// interaction cuts it off.
		if start.TimestampMs+d.MinDurationMs > limit {
			i++
			continue
		}

		minX, maxX := start.Position.X, start.Position.X
		minY, maxY := start.Position.Y, start.Position.Y
		sumX, sumY := start.Position.X, start.Position.Y
		count := 1

		validEnd := -1
		var validSumX, validSumY float64
		validCount := 0

		j := i + 1
		for j < len(samples) {
			s := samples[j]
			if s.Position == nil {
				j++
				continue
			}
			if s.TimestampMs >= limit {
				break
			}

			minX = math.Min(minX, s.Position.X)
			maxX = math.Max(maxX, s.Position.X)
			minY = math.Min(minY, s.Position.Y)
			maxY = math.Max(maxY, s.Position.Y)
			if maxX-minX > d.BoxSize || maxY-minY > d.BoxSize {
				break
			}

			sumX += s.Position.X
			sumY += s.Position.Y
			count++

			if s.TimestampMs-start.TimestampMs >= d.MinDurationMs {
				validEnd = j
				validSumX, validSumY = sumX, sumY
				validCount = count
			}
			j++
		}

		if validEnd < 0 {
			i++
			continue
		}

		centroid := geom.Point{
			X: validSumX / float64(validCount),
			Y: validSumY / float64(validCount),
		}
		hovers = append(hovers, events.Event{
			Kind:        events.Hover,
			TimestampMs: start.TimestampMs,
			EndTimeMs:   samples[validEnd].TimestampMs,
			Position:    &centroid,
		})
		i = validEnd + 1
	}

	return hovers
}

// nextBoundaryAfter returns the first boundary strictly after t, or a
// sentinel past every sample when none exists.
func nextBoundaryAfter(boundaries []int64, t int64) int64 {
	for _, b := range boundaries {
		if b > t {
			return b
		}
	}
	return math.MaxInt64
}
