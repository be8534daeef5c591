// Package director turns a session's interaction events into a camera
// motion schedule: the minimal ordered list of pan/zoom transitions
// that keeps every noteworthy moment framed, without camera churn for
// insignificant changes.
package director

import (
	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/timeline"
	"autocam/internal/view"
)

// Motion describes one camera transition. The camera arrives at Rect
// (an output-space viewport) at the output time SourceEndMs maps to,
// having started DurationMs earlier.
type Motion struct {
	SourceEndMs int64     `json:"source_end_ms" yaml:"source_end_ms"`
	DurationMs  int64     `json:"duration_ms" yaml:"duration_ms"`
	Rect        geom.Rect `json:"rect" yaml:"rect"`
	Reason      string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Director computes motion schedules. All fields are read-only after
// construction; Schedule is a pure function of its input, so one
// Director may serve concurrent callers.
type Director struct {
	View *view.Mapper
	Time timeline.Mapper

	// MaxZoom caps how far the camera may zoom in (viewport never
	// smaller than output/MaxZoom).
	MaxZoom float64

	// TransitionMs is how long each camera move takes.
	TransitionMs int64

	// TailBufferMs excludes the very end of the output from triggering
	// new motions, so the camera settles instead of thrashing.
	TailBufferMs int64

	// SizeEpsilon is the fraction of the previous viewport's dimensions
	// below which a size change is not worth a motion.
	SizeEpsilon float64
}

// New creates a Director with the default tuning constants.
func New(v *view.Mapper, tm timeline.Mapper, maxZoom float64) *Director {
	if maxZoom <= 1 {
		maxZoom = 1
	}
	return &Director{
		View:         v,
		Time:         tm,
		MaxZoom:      maxZoom,
		TransitionMs: 500,
		TailBufferMs: 3000,
		SizeEpsilon:  0.25,
	}
}

// Schedule processes events (source-time, any order) into an ordered
// motion list. Events falling in cut gaps are skipped, hovers that stay
// in frame are suppressed, and a final motion returns the camera to the
// full view before the end of the output.
func (d *Director) Schedule(evts []events.Event) []Motion {
	canvas := d.View.Output.Rect()
	outputDur := d.Time.OutputDuration()
	cutoff := outputDur - d.TailBufferMs

	type timedEvent struct {
		events.Event
		outputMs int64
	}
	var visible []timedEvent
	for _, e := range evts {
		switch e.Kind {
		case events.Click, events.Hover, events.Scroll, events.Typing, events.URL:
		default:
			continue
		}
		out, ok := d.Time.SourceToOutput(e.TimestampMs)
		if !ok {
			continue // cut away
		}
		if out > cutoff {
			continue // inside the tail buffer
		}
		visible = append(visible, timedEvent{Event: e, outputMs: out})
	}

	// Defensive ordering: callers hand events in whatever order the
	// capture produced them. Insertion sort keeps equal-time events in
	// input order.
	for i := 1; i < len(visible); i++ {
		for j := i; j > 0 && visible[j].outputMs < visible[j-1].outputMs; j-- {
			visible[j], visible[j-1] = visible[j-1], visible[j]
		}
	}

	var motions []Motion
	lastViewport := canvas

	for _, te := range visible {
		mustSee := d.mustSeeRect(te.Event)
		target := d.targetViewport(mustSee)

		if !d.shouldEmit(te.Kind, mustSee, target, lastViewport) {
			continue
		}

		src, ok := d.Time.OutputToSource(te.outputMs)
		if !ok {
			continue
		}
		motions = append(motions, Motion{
			SourceEndMs: src,
			DurationMs:  d.TransitionMs,
			Rect:        target,
			Reason:      string(te.Kind),
		})
		lastViewport = target
	}

	// Settle back on the full canvas before the output ends.
	if outputDur > 0 && !lastViewport.ApproxEqual(canvas, 1e-6) {
		resetAt := cutoff + d.TransitionMs
		if resetAt >= outputDur {
			resetAt = outputDur - 1
		}
		if resetAt < 0 {
			resetAt = 0
		}
		if src, ok := d.Time.OutputToSource(resetAt); ok {
			motions = append(motions, Motion{
				SourceEndMs: src,
				DurationMs:  d.TransitionMs,
				Rect:        canvas,
				Reason:      "reset",
			})
		}
	}

	return motions
}

// mustSeeRect computes the minimal output-space region the event
// requires on screen.
func (d *Director) mustSeeRect(e events.Event) geom.Rect {
	canvas := d.View.Output.Rect()

	switch e.Kind {
	case events.URL:
		// Navigation resets to the full view.
		return canvas

	case events.Scroll, events.Typing:
		target := d.View.InputToOutputRect(*e.Target).Scaled(1.1)
		if target.Width > canvas.Width {
			target.Width = canvas.Width
		}

		// Viewport height implied by framing the target's width at the
		// output aspect ratio.
		impliedHeight := target.Width * canvas.Height / canvas.Width

		center := target.Center()
		if target.Height > impliedHeight {
			// Tall content: follow the cursor vertically, not the
			// whole block.
			cursor := d.View.InputToOutputPoint(*e.Position)
			center.Y = cursor.Y
			target.Height = impliedHeight
		}
		return target.CenteredAt(center).ClampTo(canvas)

	default: // click, hover
		size := geom.Rect{
			Width:  canvas.Width / (2 * d.MaxZoom),
			Height: canvas.Height / (2 * d.MaxZoom),
		}
		pos := d.View.InputToOutputPoint(*e.Position)
		return size.CenteredAt(pos).ClampTo(canvas)
	}
}

// targetViewport sizes the camera window for a must-see rect: at least
// output/MaxZoom, fully containing the rect, locked to the output
// aspect ratio, centered on the rect and clamped to the canvas.
func (d *Director) targetViewport(mustSee geom.Rect) geom.Rect {
	canvas := d.View.Output.Rect()
	if canvas.IsEmpty() {
		return canvas
	}

	w := canvas.Width / d.MaxZoom
	h := canvas.Height / d.MaxZoom
	if mustSee.Width > w {
		w = mustSee.Width
	}
	if mustSee.Height > h {
		h = mustSee.Height
	}

	// Grow the short dimension to restore the output aspect ratio.
	aspect := canvas.Width / canvas.Height
	if w/aspect >= h {
		h = w / aspect
	} else {
		w = h * aspect
	}

	vp := geom.Rect{Width: w, Height: h}.CenteredAt(mustSee.Center())
	return vp.ClampTo(canvas)
}

// shouldEmit decides whether the event deserves a camera move given the
// viewport the camera currently holds.
func (d *Director) shouldEmit(kind events.Kind, mustSee, target, last geom.Rect) bool {
	contained := last.ContainsRect(mustSee)

	if kind == events.Hover {
		// Hovers never cause churn while the user is still in frame.
		return !contained
	}

	if !contained {
		return true
	}
	// A significant size change is itself worth a move, even when the
	// must-see area technically still fits.
	return absFloat(target.Width-last.Width) > d.SizeEpsilon*last.Width ||
		absFloat(target.Height-last.Height) > d.SizeEpsilon*last.Height
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
