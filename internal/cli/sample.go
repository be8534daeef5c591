package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"autocam/internal/config"
	"autocam/internal/engine"
	"autocam/internal/session"
)

func newSampleCmd() *cobra.Command {
	var (
		configPath string
		at         []int64
		every      int64
	)

	cmd := &cobra.Command{
		Use:   "sample <session.json>",
		Short: "Print interpolated camera rectangles at output times",
		Long: `Computes the schedule for a session and prints the exact camera
rectangle at the requested output timestamps, one line per sample.`,
		Example: `  autocam sample demo.json --at 0 --at 5000 --at 12000
  autocam sample demo.json --every 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			sess, err := session.Load(args[0])
			if err != nil {
				return err
			}

			project := engine.New(sess, cfg)
			motions := project.Schedule()

			times := at
			if every > 0 {
				times = times[:0]
				for t := int64(0); t < project.OutputDuration(); t += every {
					times = append(times, t)
				}
			}
			if len(times) == 0 {
				return fmt.Errorf("nothing to sample: pass --at or --every")
			}

			for _, t := range times {
				rect := project.ViewportAt(motions, t)
				fmt.Printf("%8dms  x=%8.2f y=%8.2f w=%8.2f h=%8.2f zoom=%.2f\n",
					t, rect.X, rect.Y, rect.Width, rect.Height,
					project.View.ZoomScale(rect))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "autocam.yaml", "tuning config file (defaults apply if absent)")
	cmd.Flags().Int64SliceVar(&at, "at", nil, "output timestamps to sample, in milliseconds")
	cmd.Flags().Int64Var(&every, "every", 0, "sample the whole output at this interval in milliseconds")

	return cmd
}
