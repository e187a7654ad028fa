package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the build version and commit.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the obexd build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("obexd %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
