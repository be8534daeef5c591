package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"autocam/internal/config"
	"autocam/internal/events"
	"autocam/internal/geom"
	"autocam/internal/session"
	"autocam/internal/timeline"
)

func newGenerateCmd() *cobra.Command {
	var (
		output   string
		duration int64
		clicks   int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample session or config file",
		Long: `Generates sample data for trying the pipeline end to end.

Use "generate session" to create a synthetic recorded session.
Use "generate config" to create an example tuning file.`,
	}

	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Generate a synthetic session JSON file",
		Long: `Creates a session with a plausible interaction script: the cursor
wanders, dwells, clicks, scrolls through a content block and finally
navigates away. A cut gap in the middle exercises the time mapping.`,
		Example: `  autocam generate session --output demo.json
  autocam generate session --duration 30000 --clicks 5 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := generateSession(duration, clicks, seed)
			if err := s.Save(output); err != nil {
				return fmt.Errorf("write session: %w", err)
			}
			fmt.Printf("Generated session with %d events to %s\n", len(s.Events), output)
			fmt.Printf("  Duration: %dms (with one cut gap)\n", duration)
			fmt.Printf("  Clicks:   %d\n", clicks)
			return nil
		},
	}

	sessionCmd.Flags().StringVar(&output, "output", "demo.json", "output file path")
	sessionCmd.Flags().Int64Var(&duration, "duration", 30000, "recording length in milliseconds")
	sessionCmd.Flags().IntVar(&clicks, "clicks", 4, "number of clicks to script")
	sessionCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	configCmd := &cobra.Command{
		Use:     "config",
		Short:   "Generate an example tuning YAML file",
		Example: `  autocam generate config --output autocam.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteExample(output); err != nil {
				return err
			}
			fmt.Printf("Generated example config at %s\n", output)
			return nil
		},
	}

	configCmd.Flags().StringVar(&output, "output", "autocam.yaml", "output file path")

	cmd.AddCommand(sessionCmd, configCmd)
	return cmd
}

// generateSession scripts a plausible user: move, dwell, click, repeat,
// with one scroll and a final navigation, and one cut gap in the edit.
func generateSession(duration int64, clicks int, seed int64) *session.Session {
	rng := rand.New(rand.NewSource(seed))
	input := geom.Size{Width: 1920, Height: 1080}

	s := &session.Session{
		Input:  input,
		Output: geom.Size{Width: 1280, Height: 720},
	}

	// Cut out a slice around two thirds in.
	gapStart := duration * 2 / 3
	gapEnd := gapStart + duration/10
	s.Windows = []timeline.Window{
		{ID: "take-1", StartMs: 0, EndMs: gapStart},
		{ID: "take-2", StartMs: gapEnd, EndMs: duration},
	}

	span := duration / int64(clicks+1)
	cursor := geom.Point{X: input.Width / 2, Y: input.Height / 2}

	for i := 0; i < clicks; i++ {
		target := geom.Point{
			X: 100 + rng.Float64()*(input.Width-200),
			Y: 100 + rng.Float64()*(input.Height-200),
		}
		start := int64(i) * span

		// Travel samples toward the target, then a dwell on it.
		for step := int64(0); step < 5; step++ {
			t := float64(step) / 5
			s.Events = append(s.Events, events.Event{
				Kind:        events.Mouse,
				TimestampMs: start + step*100,
				Position: &geom.Point{
					X: geom.Lerp(cursor.X, target.X, t),
					Y: geom.Lerp(cursor.Y, target.Y, t),
				},
			})
		}
		for step := int64(0); step < 6; step++ {
			jitter := geom.Point{
				X: target.X + rng.Float64()*8 - 4,
				Y: target.Y + rng.Float64()*8 - 4,
			}
			s.Events = append(s.Events, events.Event{
				Kind:        events.Mouse,
				TimestampMs: start + 500 + step*300,
				Position:    &jitter,
			})
		}
		s.Events = append(s.Events, events.Event{
			Kind:        events.Click,
			TimestampMs: start + 2400,
			Position:    &target,
		})
		cursor = target
	}

	// One scroll through a content column mid-session.
	s.Events = append(s.Events, events.Event{
		Kind:        events.Scroll,
		TimestampMs: duration / 2,
		Position:    &cursor,
		Target: &geom.Rect{
			X: input.Width / 4, Y: 0,
			Width: input.Width / 2, Height: input.Height,
		},
	})

	// Navigate away near the end.
	s.Events = append(s.Events, events.Event{
		Kind:        events.URL,
		TimestampMs: duration - duration/8,
		URL:         "https://example.com/done",
	})

	return s
}
