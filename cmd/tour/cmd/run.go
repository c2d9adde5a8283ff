package cmd

import (
	"github.com/spf13/cobra"
)

// newRunCmd represents the run command
func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the tour and print every lesson",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, opts)
		},
	}
}

func runTour(cmd *cobra.Command, opts *options) error {
	tour, err := buildTour(cmd, opts)
	if err != nil {
		return err
	}
	_, err = tour.Run(cmd.Context(), cmd.OutOrStdout())
	return err
}
