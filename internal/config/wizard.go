package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to majasdoc! Let's configure your catalog.")
	fmt.Println()

	cfg := DefaultConfig()

	webPrompt := promptui.Prompt{
		Label:   "Web directory (SPA shell and data.json)",
		Default: cfg.WebDir,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("directory is required")
			}
			return nil
		},
	}
	webDir, err := webPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("web directory: %w", err)
	}
	cfg.WebDir = webDir
	cfg.DataFile = webDir + "/data.json"
	cfg.MediaDir = webDir + "/media"

	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	precachePrompt := promptui.Select{
		Label: "Precache media into the asset cache at startup",
		Items: []string{"no", "yes"},
	}
	_, precache, err := precachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("precache selection: %w", err)
	}
	cfg.PrecacheMedia = precache == "yes"

	if _, err := os.Stat(path); err == nil {
		overwritePrompt := promptui.Select{
			Label: fmt.Sprintf("%s exists, overwrite", path),
			Items: []string{"yes", "no"},
		}
		_, answer, err := overwritePrompt.Run()
		if err != nil {
			return nil, err
		}
		if answer == "no" {
			fmt.Println("Keeping the existing config.")
			return cfg, nil
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nWrote %s\n", path)
	return cfg, nil
}
