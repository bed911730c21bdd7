package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		// Printing the version must not depend on a readable config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateColorMode(root.color)
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			name := color.New(color.Bold)
			if root.useColor(out) {
				name.EnableColor()
			} else {
				name.DisableColor()
			}
			fmt.Fprintf(out, "%s %s (commit %s, built %s)\n", name.Sprint("fieldmask"), version, commit, date)
		},
	}
}
