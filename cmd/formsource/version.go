// Version command for the formsource CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldstudy/formsource/pkg/formsource"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the formsource version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "formsource", formsource.Version)
	},
}
