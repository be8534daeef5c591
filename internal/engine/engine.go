// Package engine wires a loaded session and tuning config into the
// viewport motion pipeline: hover synthesis, scheduling, and per-frame
// camera interpolation.
package engine

import (
	"math"

	"autocam/internal/config"
	"autocam/internal/director"
	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/hover"
	"autocam/internal/renderer"
	"autocam/internal/session"
	"autocam/internal/timeline"
	"autocam/internal/view"
)

// Project binds one session to its mappers and tuning. It is immutable
// after New, so concurrent callers may share it.
type Project struct {
	Session *session.Session
	Config  config.Config

	View *view.Mapper
	Time timeline.Mapper
}

// New builds the mappers for a session.
func New(s *session.Session, cfg config.Config) *Project {
	return &Project{
		Session: s,
		Config:  cfg,
		View:    view.New(s.Input, s.Output, cfg.Padding),
		Time: timeline.Mapper{
			Windows:  s.Windows,
			OffsetMs: s.OffsetMs,
		},
	}
}

// Events returns the recorded stream plus synthesized hover events,
// sorted by source time.
func (p *Project) Events() []events.Event {
	detector := &hover.Detector{
		BoxSize:       p.Config.HoverBoxFraction * math.Max(p.Session.Input.Width, p.Session.Input.Height),
		MinDurationMs: p.Config.HoverMinMs,
	}

	samples := events.SortByTime(events.Filter(p.Session.Events, events.Mouse))
	boundaries := events.BoundaryTimes(p.Session.Events)
	hovers := detector.Detect(samples, boundaries)

	merged := make([]events.Event, 0, len(p.Session.Events)+len(hovers))
	merged = append(merged, p.Session.Events...)
	merged = append(merged, hovers...)
	return events.SortByTime(merged)
}

// Schedule computes the camera motion list for the session. Calling it
// again with the same project yields an identical list.
func (p *Project) Schedule() []director.Motion {
	d := director.New(p.View, p.Time, p.Config.MaxZoom)
	d.TransitionMs = p.Config.TransitionMs
	d.TailBufferMs = p.Config.TailBufferMs
	d.SizeEpsilon = p.Config.SizeEpsilon
	return d.Schedule(p.Events())
}

// ViewportAt interpolates the camera rectangle at an output timestamp.
func (p *Project) ViewportAt(motions []director.Motion, outputMs int64) geom.Rect {
	return renderer.ViewportAt(motions, p.Time, outputMs, p.Session.Output)
}

// OutputDuration returns the exported length in milliseconds.
func (p *Project) OutputDuration() int64 {
	return p.Time.OutputDuration()
}
