package director

import (
	"reflect"
	"testing"

	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/timeline"
	"autocam/internal/view"
)

func newTestDirector() *Director {
	v := view.New(
		geom.Size{Width: 1000, Height: 1000},
		geom.Size{Width: 1000, Height: 1000},
		0,
	)
	tm := timeline.Mapper{Windows: []timeline.Window{{ID: "w", StartMs: 0, EndMs: 20000}}}
	return New(v, tm, 2)
}

func click(ts int64, x, y float64) events.Event {
	return events.Event{Kind: events.Click, TimestampMs: ts, Position: &geom.Point{X: x, Y: y}}
}

func TestScheduleSingleClick(t *testing.T) {
	d := newTestDirector()

	motions := d.Schedule([]events.Event{click(5000, 500, 500)})
	if len(motions) != 2 {
		t.Fatalf("expected click motion + reset, got %d motions", len(motions))
	}

	m := motions[0]
	if m.SourceEndMs != 5000 {
		t.Errorf("SourceEndMs = %d, want 5000", m.SourceEndMs)
	}
	if m.DurationMs != 500 {
		t.Errorf("DurationMs = %d, want 500", m.DurationMs)
	}
	// maxZoom 2 on a 1000px canvas: viewport is 500x500.
	if m.Rect.Width != 500 || m.Rect.Height != 500 {
		t.Errorf("viewport = %+v, want 500x500", m.Rect)
	}
	if c := m.Rect.Center(); c.X != 500 || c.Y != 500 {
		t.Errorf("viewport center = %+v, want {500 500}", c)
	}
	if m.Reason != "click" {
		t.Errorf("Reason = %q, want click", m.Reason)
	}

	reset := motions[1]
	if !reset.Rect.ApproxEqual(geom.Rect{Width: 1000, Height: 1000}, 1e-9) {
		t.Errorf("reset rect = %+v, want full canvas", reset.Rect)
	}
	// Lands at end-of-output − buffer + transition = 17500.
	if reset.SourceEndMs != 17500 {
		t.Errorf("reset SourceEndMs = %d, want 17500", reset.SourceEndMs)
	}
}

func TestScheduleClickNearCornerClamps(t *testing.T) {
	d := newTestDirector()

	motions := d.Schedule([]events.Event{click(5000, 0, 0)})
	if len(motions) < 1 {
		t.Fatal("expected at least one motion")
	}
	want := geom.Rect{X: 0, Y: 0, Width: 500, Height: 500}
	if !motions[0].Rect.ApproxEqual(want, 1e-9) {
		t.Errorf("corner click viewport = %+v, want %+v", motions[0].Rect, want)
	}
}

func TestScheduleRepeatedClickSuppressed(t *testing.T) {
	d := newTestDirector()

	motions := d.Schedule([]events.Event{
		click(3000, 500, 500),
		click(6000, 510, 505), // still framed, same viewport size
	})

	// One move plus the reset; the second click changes nothing.
	if len(motions) != 2 {
		t.Fatalf("expected 2 motions, got %d", len(motions))
	}
	if motions[1].Reason != "reset" {
		t.Errorf("second motion = %q, want reset", motions[1].Reason)
	}
}

func TestScheduleHoverSuppressedWhileFramed(t *testing.T) {
	d := newTestDirector()

	hover := events.Event{
		Kind:        events.Hover,
		TimestampMs: 4000,
		EndTimeMs:   6000,
		Position:    &geom.Point{X: 500, Y: 500},
	}

	// Camera starts at the full canvas; the hover's must-see rect is
	// trivially framed, so nothing is emitted, and no reset is needed.
	if motions := d.Schedule([]events.Event{hover}); len(motions) != 0 {
		t.Errorf("framed hover produced %d motions", len(motions))
	}

	// After zooming into the opposite corner, the same hover is out of
	// frame and moves the camera.
	motions := d.Schedule([]events.Event{click(2000, 50, 50), hover})
	var reasons []string
	for _, m := range motions {
		reasons = append(reasons, m.Reason)
	}
	if !reflect.DeepEqual(reasons, []string{"click", "hover", "reset"}) {
		t.Errorf("reasons = %v, want [click hover reset]", reasons)
	}
}

func TestScheduleURLResetsToFullView(t *testing.T) {
	d := newTestDirector()

	motions := d.Schedule([]events.Event{
		click(2000, 100, 100),
		{Kind: events.URL, TimestampMs: 6000, URL: "https://example.com"},
	})

	if len(motions) != 2 {
		t.Fatalf("expected click + url motions, got %d", len(motions))
	}
	if !motions[1].Rect.ApproxEqual(geom.Rect{Width: 1000, Height: 1000}, 1e-9) {
		t.Errorf("url viewport = %+v, want full canvas", motions[1].Rect)
	}
	// The camera is already at full view afterwards; no extra reset.
	if motions[1].Reason != "url" {
		t.Errorf("final motion = %q, want url", motions[1].Reason)
	}
}

func TestScheduleSkipsEventsInGaps(t *testing.T) {
	d := newTestDirector()
	d.Time = timeline.Mapper{Windows: []timeline.Window{
		{StartMs: 0, EndMs: 4000},
		{StartMs: 10000, EndMs: 26000},
	}}

	motions := d.Schedule([]events.Event{
		click(6000, 500, 500),  // cut away
		click(12000, 500, 500), // survives
	})

	if len(motions) != 2 {
		t.Fatalf("expected surviving click + reset, got %d motions", len(motions))
	}
	if motions[0].SourceEndMs != 12000 {
		t.Errorf("SourceEndMs = %d, want 12000", motions[0].SourceEndMs)
	}
}

func TestScheduleTailBufferExcludesLateEvents(t *testing.T) {
	d := newTestDirector()

	// Output runs 20000ms; the last 3000ms must not trigger motions.
	if motions := d.Schedule([]events.Event{click(18500, 500, 500)}); len(motions) != 0 {
		t.Errorf("tail-buffer click produced %d motions", len(motions))
	}
}

func TestScheduleTallScrollFollowsCursor(t *testing.T) {
	d := newTestDirector()

	// A tall, narrow block: its height exceeds the viewport implied by
	// its width, so the camera centers on the cursor vertically.
	scroll := events.Event{
		Kind:        events.Scroll,
		TimestampMs: 5000,
		Position:    &geom.Point{X: 500, Y: 800},
		Target:      &geom.Rect{X: 400, Y: 0, Width: 200, Height: 1000},
	}

	motions := d.Schedule([]events.Event{scroll})
	if len(motions) < 1 {
		t.Fatal("expected a motion for the scroll")
	}
	vp := motions[0].Rect
	c := vp.Center()
	if c.X != 500 {
		t.Errorf("viewport center x = %f, want 500 (target centroid)", c.X)
	}
	// Clamped to the canvas bottom, the viewport must still cover the
	// cursor.
	if !vp.ContainsPoint(geom.Point{X: 500, Y: 800}) {
		t.Errorf("viewport %+v does not cover the cursor", vp)
	}
}

func TestScheduleUnsortedInput(t *testing.T) {
	d := newTestDirector()

	a := d.Schedule([]events.Event{click(8000, 900, 900), click(2000, 100, 100)})
	b := d.Schedule([]events.Event{click(2000, 100, 100), click(8000, 900, 900)})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("event order changed the schedule:\n%v\nvs\n%v", a, b)
	}
	if len(a) > 0 && a[0].SourceEndMs != 2000 {
		t.Errorf("first motion at %d, want 2000", a[0].SourceEndMs)
	}
}

func TestScheduleIdempotent(t *testing.T) {
	d := newTestDirector()
	input := []events.Event{
		click(2000, 100, 100),
		{Kind: events.URL, TimestampMs: 4000},
		click(8000, 900, 900),
	}

	first := d.Schedule(input)
	second := d.Schedule(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("schedule is not idempotent:\n%v\nvs\n%v", first, second)
	}
}

func TestScheduleNoEvents(t *testing.T) {
	d := newTestDirector()
	if motions := d.Schedule(nil); len(motions) != 0 {
		t.Errorf("no events produced %d motions", len(motions))
	}
}
