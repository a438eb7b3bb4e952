package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDictCmd(c *cli) *cobra.Command {
	dict := &cobra.Command{
		Use:   "dict",
		Short: "Manage the romanization dictionary",
	}

	dict.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Publish new dictionary words to the romanizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.client.Sync(cmd.Context())
			if err != nil {
				return fmt.Errorf("dictionary sync: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced dictionary: %d new entries\n", n)
			return nil
		},
	})

	return dict
}
