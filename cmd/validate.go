package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"majasdoc/internal/catalog"
	"majasdoc/internal/config"
	"majasdoc/internal/media"
	"majasdoc/internal/progress"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the document and media library for missing or orphaned files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		doc, err := catalog.Load(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		reporter := progress.NewReporter("Checking media")
		reporter.Start(len(media.References(doc)))
		report, err := media.Check(doc, cfg.MediaDir, cfg.Include, cfg.Exclude,
			func(done int, ref media.Reference) {
				reporter.Update(done, ref.Path)
			})
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("checking media library: %w", err)
		}

		fmt.Printf("%d references checked, %d missing, %d orphans\n",
			report.Checked, len(report.Missing), len(report.Orphans))

		for _, ref := range report.Missing {
			fmt.Printf("  missing: %s (room %s)\n", ref.Path, ref.RoomID)
		}
		if verbose {
			for _, orphan := range report.Orphans {
				fmt.Printf("  orphan: %s\n", orphan)
			}
		}

		if !report.OK() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
