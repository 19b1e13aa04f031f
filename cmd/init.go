package cmd

import (
	"github.com/spf13/cobra"

	"majasdoc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a majasdoc.yml",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
