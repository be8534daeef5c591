// Package events defines the interaction-event stream a recorded
// session carries. Events are a tagged union: every event has a Kind
// and a timestamp, and kinds contribute their own optional fields.
package events

import (
	"fmt"
	"sort"

	"autocam/internal/geom"
)

// Kind discriminates event variants.
type Kind string

const (
	Click     Kind = "click"
	Mouse     Kind = "mouse" // cursor position sample
	MouseDown Kind = "mousedown"
	MouseUp   Kind = "mouseup"
	URL       Kind = "url" // navigation
	KeyDown   Kind = "keydown"
	Scroll    Kind = "scroll"
	Typing    Kind = "typing"
	Hover     Kind = "hover" // synthesized, never recorded
)

// Event is one recorded (or synthesized) interaction. Timestamps are
// milliseconds on the axis of whatever stream the event belongs to;
// events are immutable once produced.
type Event struct {
	Kind        Kind        `json:"kind"`
	TimestampMs int64       `json:"timestamp_ms"`
	EndTimeMs   int64       `json:"end_time_ms,omitempty"` // hover only
	Position    *geom.Point `json:"position,omitempty"`
	Target      *geom.Rect  `json:"target,omitempty"` // scroll/typing: source-space region involved
	URL         string      `json:"url,omitempty"`
	Key         string      `json:"key,omitempty"`
}

// Validate checks that the fields a kind requires are present.
func (e Event) Validate() error {
	switch e.Kind {
	case Click, Mouse, MouseDown, MouseUp:
		if e.Position == nil {
			return fmt.Errorf("%s event at %dms has no position", e.Kind, e.TimestampMs)
		}
	case Scroll, Typing:
		if e.Target == nil {
			return fmt.Errorf("%s event at %dms has no target rect", e.Kind, e.TimestampMs)
		}
		if e.Position == nil {
			return fmt.Errorf("%s event at %dms has no cursor position", e.Kind, e.TimestampMs)
		}
	case Hover:
		if e.Position == nil {
			return fmt.Errorf("hover event at %dms has no position", e.TimestampMs)
		}
		if e.EndTimeMs < e.TimestampMs {
			return fmt.Errorf("hover event at %dms ends before it starts", e.TimestampMs)
		}
	case URL, KeyDown:
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return nil
}

// SortByTime returns a copy of the events ordered by timestamp. Ties
// keep their original relative order.
func SortByTime(evts []Event) []Event {
	out := make([]Event, len(evts))
	copy(out, evts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimestampMs < out[j].TimestampMs
	})
	return out
}

// Filter returns the events matching any of the given kinds, in input
// order.
func Filter(evts []Event, kinds ...Kind) []Event {
	var out []Event
	for _, e := range evts {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// BoundaryTimes extracts the sorted timestamps of events that break
// hover continuity (anything that is a deliberate interaction rather
// than plain cursor motion).
func BoundaryTimes(evts []Event) []int64 {
	var times []int64
	for _, e := range evts {
		switch e.Kind {
		case Click, MouseDown, MouseUp, Scroll, Typing, KeyDown, URL:
			times = append(times, e.TimestampMs)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times
}
