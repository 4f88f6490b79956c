package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/storefront/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the configuration file",
	Long: `Write the effective settings (defaults, environment and flags) to
~/.config/storefront/config.yaml. An existing file is kept unless --force
is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing configuration file")
}

// loadConfig loads and validates configuration with flag overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagTerm != "" {
		cfg.Search.Term = flagTerm
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := config.ConfigFile()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "search.term:        %s\n", cfg.Search.Term)
	fmt.Fprintf(out, "search.page_size:   %d\n", cfg.Search.PageSize)
	fmt.Fprintf(out, "search.lookahead:   %d\n", cfg.Search.Lookahead)
	fmt.Fprintf(out, "api.base_url:       %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "api.timeout:        %s\n", cfg.API.Timeout)
	fmt.Fprintf(out, "favorites.backend:  %s\n", cfg.Favorites.Backend)
	fmt.Fprintf(out, "favorites.path:     %s\n", cfg.Favorites.Path)
	fmt.Fprintf(out, "log.level:          %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "log.file:           %s\n", cfg.Log.File)
	return nil
}
