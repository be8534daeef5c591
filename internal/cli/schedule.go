package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"autocam/internal/config"
	"autocam/internal/director"
	"autocam/internal/engine"
	"autocam/internal/session"
	"autocam/internal/system"
)

func newScheduleCmd() *cobra.Command {
	var (
		configPath string
		output     string
		showStats  bool
	)

	cmd := &cobra.Command{
		Use:   "schedule <session.json>",
		Short: "Compute a camera motion schedule for a session",
		Long: `Loads a recorded session, synthesizes hover events from cursor dwells,
and computes the camera motion schedule, written as YAML.`,
		Example: `  autocam schedule demo.json
  autocam schedule demo.json --output schedule.yaml --config autocam.yaml
  autocam schedule demo.json --stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

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

			schedule := director.NewSchedule(sess.Output, motions)
			if err := director.WriteSchedule(schedule, output); err != nil {
				return fmt.Errorf("write schedule: %w", err)
			}

			log.Printf("[*] %d events in, %d motions out (%.1fs of output)",
				len(sess.Events), len(motions), float64(project.OutputDuration())/1000)
			log.Printf("[+] Schedule written to %s", output)

			if showStats {
				log.Printf("[*] %s", system.Collect(start))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "autocam.yaml", "tuning config file (defaults apply if absent)")
	cmd.Flags().StringVar(&output, "output", "schedule.yaml", "schedule output path")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print run statistics")

	return cmd
}
