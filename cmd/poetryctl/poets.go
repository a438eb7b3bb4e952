package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPoetsCmd(c *cli) *cobra.Command {
	poets := &cobra.Command{
		Use:   "poets",
		Short: "Browse the poet catalogue",
	}

	poets.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all poets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.client.ListPoets(cmd.Context())
			if err != nil {
				return fmt.Errorf("list poets: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLUG\tNAME\tSINDHI NAME")
			for _, p := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Slug, p.EnglishName, p.SindhiName)
			}
			return tw.Flush()
		},
	})

	return poets
}
