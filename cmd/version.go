package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X majasdoc/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the majasdoc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("majasdoc %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
