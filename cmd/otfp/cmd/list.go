package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/builder"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"kinds"},
	Short:   "List the supported package kinds",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range builder.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
