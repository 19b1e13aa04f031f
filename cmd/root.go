package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "majasdoc",
	Short: "Self-hosted room and media catalog for a documented home",
	Long: `Majasdoc serves a single-page catalog of a documented physical
space: rooms, photos, and videos with hashtag filtering, free-text
search, and offline-friendly media caching. The catalog is a single
static JSON document loaded once per session.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "majasdoc.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
