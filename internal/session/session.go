// Package session loads recorded sessions: the JSON document a capture
// agent emits, holding the recording geometry, the edit windows and the
// raw interaction-event stream.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/timeline"
)

// Session is one recorded screen session plus its edit state.
type Session struct {
	// Input is the source recording's pixel size.
	Input geom.Size `json:"input"`
	// Output is the export canvas's pixel size.
	Output geom.Size `json:"output"`
	// OffsetMs is the timeline position of source time zero.
	OffsetMs int64 `json:"offset_ms"`
	// Windows are the retained slices of timeline time, sorted and
	// non-overlapping.
	Windows []timeline.Window `json:"windows"`
	// Events is the captured interaction stream, source-time.
	Events []events.Event `json:"events"`
}

// Validate checks the invariants the engine assumes after loading.
func (s *Session) Validate() error {
	if s.Input.IsZero() {
		return fmt.Errorf("input size %gx%g is not positive", s.Input.Width, s.Input.Height)
	}
	if s.Output.IsZero() {
		return fmt.Errorf("output size %gx%g is not positive", s.Output.Width, s.Output.Height)
	}
	if err := timeline.ValidateWindows(s.Windows); err != nil {
		return fmt.Errorf("windows: %w", err)
	}
	for _, e := range s.Events {
		if e.Kind == events.Hover {
			return fmt.Errorf("recorded stream contains a hover event at %dms; hovers are synthesized, never captured", e.TimestampMs)
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and validates a session JSON file.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session json: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the session as indented JSON, the same shape Load reads.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
