package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"path"
	"time"

	"github.com/spf13/cobra"

	"majasdoc/internal/catalog"
	"majasdoc/internal/config"
	"majasdoc/internal/media"
	"majasdoc/internal/progress"
)

var (
	warmTarget string
	warmUser   string
	warmPass   string
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-populate a running server's media cache",
	Long: `Requests every media file the catalog references against a running
majasdoc server, so its cache-first media cache is fully populated
before the first visitor. This is the CLI counterpart of a service
worker's install-time precache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		doc, err := catalog.Load(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		target := warmTarget
		if target == "" {
			target = fmt.Sprintf("http://localhost:%d", cfg.Port)
		}

		jar, err := cookiejar.New(nil)
		if err != nil {
			return err
		}
		client := &http.Client{Jar: jar, Timeout: 60 * time.Second}

		if warmUser != "" {
			if err := login(client, target, warmUser, warmPass); err != nil {
				return fmt.Errorf("logging in: %w", err)
			}
		}

		refs := media.References(doc)
		reporter := progress.NewReporter("Warming cache")
		reporter.Start(len(refs))

		warmed := 0
		for i, ref := range refs {
			url := target + path.Join("/media", ref.Path)
			resp, err := client.Get(url)
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					warmed++
				}
			}
			reporter.Update(i+1, ref.Path)
		}
		reporter.Finish()

		fmt.Printf("warmed %d/%d media files on %s\n", warmed, len(refs), target)
		return nil
	},
}

// login authenticates against the server's session gate so the media
// requests pass it.
func login(client *http.Client, target, user, pass string) error {
	body, _ := json.Marshal(map[string]string{"username": user, "password": pass})
	resp, err := client.Post(target+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected with status %d", resp.StatusCode)
	}
	return nil
}

func init() {
	warmCmd.Flags().StringVar(&warmTarget, "target", "", "server base URL (default: localhost with the configured port)")
	warmCmd.Flags().StringVar(&warmUser, "user", "", "username for the session gate")
	warmCmd.Flags().StringVar(&warmPass, "pass", "", "password for the session gate")
	rootCmd.AddCommand(warmCmd)
}
