package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newListCmd represents the list command
func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the lessons in running order",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := buildTour(cmd, opts)
			if err != nil {
				return err
			}
			lessons, err := tour.Lessons()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, l := range lessons {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Title, strings.Join(l.Tags, ",")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
