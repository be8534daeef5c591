// Package renderer answers, for any output timestamp, the exact camera
// rectangle the motion schedule implies. It is called once per rendered
// frame, so it allocates nothing beyond the returned value.
package renderer

import (
	"sort"

	"autocam/internal/director"
	"autocam/internal/geom"
	"autocam/internal/timeline"
)

// span is a motion resolved onto the output time axis.
type span struct {
	startMs int64
	endMs   int64
	rect    geom.Rect
}

// ViewportAt interpolates the camera rectangle at outputMs. Motions may
// arrive in any order; those whose end time falls in a cut gap are
// discarded. A motion interrupted by a later one hands over its
// partially-travelled rectangle rather than snapping to its target, so
// the camera path stays continuous.
func ViewportAt(motions []director.Motion, tm timeline.Mapper, outputMs int64, output geom.Size) geom.Rect {
	fullView := output.Rect()

	spans := make([]span, 0, len(motions))
	for _, m := range motions {
		end, ok := tm.SourceToOutput(m.SourceEndMs)
		if !ok {
			continue
		}
		spans = append(spans, span{
			startMs: end - m.DurationMs,
			endMs:   end,
			rect:    m.Rect,
		})
	}
	// Producers are not required to pre-sort.
	sort.Slice(spans, func(i, j int) bool { return spans[i].startMs < spans[j].startMs })

	current := fullView
	for k, s := range spans {
		if outputMs < s.startMs {
			// Still holding the state before this motion begins.
			return current
		}

		// A later motion starting before this one finishes interrupts
		// it mid-flight.
		interruptMs := s.endMs
		if k+1 < len(spans) && spans[k+1].startMs < s.endMs {
			interruptMs = spans[k+1].startMs
		}

		queryMs := outputMs
		if queryMs > interruptMs {
			queryMs = interruptMs
		}

		// Progress runs against the motion's full duration so the
		// easing curve keeps its shape even when cut short.
		var progress float64
		if s.endMs <= s.startMs {
			progress = 1 // zero-duration motion snaps
		} else {
			progress = easeInOutQuad(float64(queryMs-s.startMs) / float64(s.endMs-s.startMs))
		}
		interpolated := geom.LerpRect(current, s.rect, progress)

		if outputMs <= interruptMs {
			return interpolated
		}
		// Interrupted before finishing: carry the partial state into
		// the next motion.
		current = interpolated
	}

	return current
}

// easeInOutQuad is quadratic ease-in-out, clamped to [0, 1].
func easeInOutQuad(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
