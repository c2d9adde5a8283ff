package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// newGraphCmd represents the graph command
func newGraphCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "print the lesson sequence as a Graphviz DOT graph",
		Long:  `Pipe the output into "dot -Tsvg" to render it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := buildTour(cmd, opts)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tour.Visualize())
			return err
		},
	}
}
