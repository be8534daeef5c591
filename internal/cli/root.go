package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root autocam command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "autocam",
		Short: "Virtual camera scheduling for screen recordings",
		Long: `autocam turns a recorded screen session into a virtual camera schedule:
a sequence of pan/zoom viewport motions that follows the user's clicks,
scrolls, typing and dwells without manual keyframing.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newScheduleCmd(),
		newSampleCmd(),
		newPreviewCmd(),
		newGenerateCmd(),
	)

	return root
}
