package cmd

import (
	"github.com/spf13/cobra"
)

// newInitCommand is an explicit spelling of the bare `vite-setup` run.
func newInitCommand(run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Same as running vite-setup with no arguments",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}
