package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			printConfig(a.config)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration to the config path, creating
directories as needed. Refuses to overwrite an existing file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}

			if err := config.Default().SaveTo(path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	})

	return cmd
}

func printConfig(cfg *config.Config) {
	fmt.Printf("Config file: %s\n\n", config.DefaultConfigPath())
	fmt.Printf("[schedule]\n")
	fmt.Printf("  day_start        = %s\n", cfg.Schedule.DayStart)
	fmt.Printf("  day_end          = %s\n", cfg.Schedule.DayEnd)
	fmt.Printf("  min_slot_minutes = %d\n", cfg.Schedule.MinSlotMinutes)
	fmt.Printf("[storage]\n")
	fmt.Printf("  db_path = %s\n", cfg.Storage.DBPath)
	fmt.Printf("[ui]\n")
	fmt.Printf("  theme = %s\n", cfg.UI.Theme)
	fmt.Printf("[llm]\n")
	fmt.Printf("  provider = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model    = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url = %s\n", cfg.LLM.BaseURL)
}
