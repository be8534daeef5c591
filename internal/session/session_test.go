package session

import (
	"path/filepath"
	"testing"

	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/timeline"
)

func validSession() *Session {
	return &Session{
		Input:  geom.Size{Width: 1920, Height: 1080},
		Output: geom.Size{Width: 1280, Height: 720},
		Windows: []timeline.Window{
			{ID: "intro", StartMs: 0, EndMs: 5000},
			{ID: "demo", StartMs: 8000, EndMs: 20000},
		},
		Events: []events.Event{
			{Kind: events.Click, TimestampMs: 1000, Position: &geom.Point{X: 100, Y: 100}},
			{Kind: events.URL, TimestampMs: 2000, URL: "https://example.com"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := validSession()
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Input != s.Input || loaded.Output != s.Output {
		t.Errorf("sizes changed: %+v / %+v", loaded.Input, loaded.Output)
	}
	if len(loaded.Windows) != 2 || loaded.Windows[1].ID != "demo" {
		t.Errorf("windows changed: %+v", loaded.Windows)
	}
	if len(loaded.Events) != 2 || loaded.Events[0].Position.X != 100 {
		t.Errorf("events changed: %+v", loaded.Events)
	}
}

func TestValidateRejectsBadSessions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Session)
	}{
		{"zero input size", func(s *Session) { s.Input = geom.Size{} }},
		{"zero output size", func(s *Session) { s.Output.Height = 0 }},
		{"overlapping windows", func(s *Session) { s.Windows[1].StartMs = 4000 }},
		{"click without position", func(s *Session) { s.Events[0].Position = nil }},
		{"recorded hover", func(s *Session) {
			s.Events = append(s.Events, events.Event{
				Kind: events.Hover, TimestampMs: 100, EndTimeMs: 1200,
				Position: &geom.Point{X: 1, Y: 1},
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate accepted a broken session")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
