// Package cli implements pagerctl, a local front end to the pager.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the pagerctl root command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pagerctl",
		Short:         "Inspect pagination windows without a running server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewDescribeCmd())
	return cmd
}
