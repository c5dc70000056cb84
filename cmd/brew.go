package cmd

import "github.com/spf13/cobra"

func newBrewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brew NAME...",
		Short: "Brew the named drinks, printing one result per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return brew(cmd.OutOrStdout(), current.machine, args)
		},
	}
}
