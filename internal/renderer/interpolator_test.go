package renderer

import (
	"math"
	"testing"

	"autocam/internal/director"
	"autocam/internal/geom"
	"autocam/internal/timeline"
)

var (
	testOutput = geom.Size{Width: 1000, Height: 1000}
	fullView   = geom.Rect{Width: 1000, Height: 1000}
)

func testMapper() timeline.Mapper {
	return timeline.Mapper{Windows: []timeline.Window{{StartMs: 0, EndMs: 100000}}}
}

func TestViewportAtNoMotions(t *testing.T) {
	tm := testMapper()
	for _, ts := range []int64{0, 500, 99999} {
		if got := ViewportAt(nil, tm, ts, testOutput); !got.ApproxEqual(fullView, 1e-9) {
			t.Errorf("ViewportAt(%d) = %+v, want full view", ts, got)
		}
	}
}

func TestViewportAtSingleMotion(t *testing.T) {
	tm := testMapper()
	target := geom.Rect{X: 250, Y: 250, Width: 500, Height: 500}
	motions := []director.Motion{
		{SourceEndMs: 2000, DurationMs: 1000, Rect: target},
	}

	// Before the motion starts: full view.
	if got := ViewportAt(motions, tm, 500, testOutput); !got.ApproxEqual(fullView, 1e-9) {
		t.Errorf("before start = %+v, want full view", got)
	}

	// Halfway: eased progress is exactly 0.5 for quadratic in-out.
	got := ViewportAt(motions, tm, 1500, testOutput)
	want := geom.Rect{X: 125, Y: 125, Width: 750, Height: 750}
	if !got.ApproxEqual(want, 1e-9) {
		t.Errorf("midpoint = %+v, want %+v", got, want)
	}

	// At and after the end: the target holds.
	for _, ts := range []int64{2000, 5000, 99999} {
		if got := ViewportAt(motions, tm, ts, testOutput); !got.ApproxEqual(target, 1e-9) {
			t.Errorf("ViewportAt(%d) = %+v, want target", ts, got)
		}
	}
}

func TestViewportAtEasingShape(t *testing.T) {
	tm := testMapper()
	target := geom.Rect{X: 0, Y: 0, Width: 500, Height: 500}
	motions := []director.Motion{
		{SourceEndMs: 2000, DurationMs: 1000, Rect: target},
	}

	// Quadratic ease-in: at quarter progress the camera has covered
	// 2*(0.25)^2 = 12.5% of the distance.
	got := ViewportAt(motions, tm, 1250, testOutput)
	wantWidth := 1000 - 0.125*500
	if math.Abs(got.Width-wantWidth) > 1e-9 {
		t.Errorf("quarter-progress width = %f, want %f", got.Width, wantWidth)
	}
}

func TestViewportAtZeroDurationSnaps(t *testing.T) {
	tm := testMapper()
	target := geom.Rect{X: 100, Y: 100, Width: 300, Height: 300}
	motions := []director.Motion{
		{SourceEndMs: 2000, DurationMs: 0, Rect: target},
	}

	if got := ViewportAt(motions, tm, 2000, testOutput); !got.ApproxEqual(target, 1e-9) {
		t.Errorf("zero-duration motion at its end = %+v, want target", got)
	}
	if got := ViewportAt(motions, tm, 1999, testOutput); !got.ApproxEqual(fullView, 1e-9) {
		t.Errorf("just before snap = %+v, want full view", got)
	}
}

func TestViewportAtInterruption(t *testing.T) {
	tm := testMapper()
	first := geom.Rect{X: 250, Y: 250, Width: 500, Height: 500}
	second := geom.Rect{X: 0, Y: 0, Width: 250, Height: 250}
	motions := []director.Motion{
		{SourceEndMs: 2000, DurationMs: 1000, Rect: first},  // spans [1000, 2000]
		{SourceEndMs: 2500, DurationMs: 1000, Rect: second}, // spans [1500, 2500], interrupts at 1500
	}

	// At the interruption boundary the first motion is half travelled.
	atBoundary := ViewportAt(motions, tm, 1500, testOutput)
	halfway := geom.Rect{X: 125, Y: 125, Width: 750, Height: 750}
	if !atBoundary.ApproxEqual(halfway, 1e-9) {
		t.Errorf("at interruption = %+v, want %+v", atBoundary, halfway)
	}

	// No jump discontinuity: one millisecond later the camera has
	// barely moved from the handed-over state.
	justAfter := ViewportAt(motions, tm, 1501, testOutput)
	if !justAfter.ApproxEqual(atBoundary, 1.0) {
		t.Errorf("discontinuity at interruption: %+v -> %+v", atBoundary, justAfter)
	}

	// The second motion finishes at its own target, never having
	// visited the first motion's target.
	if got := ViewportAt(motions, tm, 2500, testOutput); !got.ApproxEqual(second, 1e-9) {
		t.Errorf("after second motion = %+v, want %+v", got, second)
	}
}

func TestViewportAtUnsortedMotions(t *testing.T) {
	tm := testMapper()
	first := geom.Rect{X: 250, Y: 250, Width: 500, Height: 500}
	second := geom.Rect{X: 500, Y: 500, Width: 500, Height: 500}

	ordered := []director.Motion{
		{SourceEndMs: 2000, DurationMs: 500, Rect: first},
		{SourceEndMs: 5000, DurationMs: 500, Rect: second},
	}
	shuffled := []director.Motion{ordered[1], ordered[0]}

	for _, ts := range []int64{0, 1750, 2000, 4800, 5000, 9000} {
		a := ViewportAt(ordered, tm, ts, testOutput)
		b := ViewportAt(shuffled, tm, ts, testOutput)
		if !a.ApproxEqual(b, 1e-9) {
			t.Errorf("at %d: ordered %+v != shuffled %+v", ts, a, b)
		}
	}
}

func TestViewportAtMotionsInGaps(t *testing.T) {
	// Only [0, 1000) of the timeline survives; a motion ending at
	// timeline 5000 was cut away entirely.
	tm := timeline.Mapper{Windows: []timeline.Window{{StartMs: 0, EndMs: 1000}}}
	motions := []director.Motion{
		{SourceEndMs: 5000, DurationMs: 500, Rect: geom.Rect{Width: 100, Height: 100}},
	}

	if got := ViewportAt(motions, tm, 500, testOutput); !got.ApproxEqual(fullView, 1e-9) {
		t.Errorf("all motions cut: %+v, want full view", got)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0},
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := easeInOutQuad(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("easeInOutQuad(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
