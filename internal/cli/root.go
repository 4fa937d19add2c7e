// Package cli implements the wallplan command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panelwright/wallplan/internal/model"
	"github.com/panelwright/wallplan/internal/project"
)

var rootCmd = &cobra.Command{
	Use:   "wallplan",
	Short: "Panel cutting planner for prefabricated wall panels",
	Long: "Wallplan covers building walls with fixed-width prefabricated panels.\n" +
		"It detects wall contacts, classifies joints, cuts panels, and reuses\n" +
		"leftover pieces across walls to minimize waste.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .wallplan.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".wallplan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("WALLPLAN")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// logger returns a text logger on stderr when --verbose is set, otherwise a
// discarded stream.
func logger() *slog.Logger {
	if verbose, _ := rootCmd.Flags().GetBool("verbose"); verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}

// loadConfig reads the persisted app config and overlays any values set
// through viper (config file, environment).
func loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to load app config: %w", err)
	}
	if viper.IsSet("max_panel_width") {
		cfg.DefaultMaxPanelWidth = viper.GetFloat64("max_panel_width")
	}
	if viper.IsSet("trim_allowance") {
		cfg.DefaultTrimAllowance = viper.GetFloat64("trim_allowance")
	}
	if viper.IsSet("default_thickness") {
		cfg.DefaultThickness = viper.GetFloat64("default_thickness")
	}
	if viper.IsSet("default_wall_height") {
		cfg.DefaultWallHeight = viper.GetFloat64("default_wall_height")
	}
	if viper.IsSet("keep_leftovers") {
		cfg.KeepLeftovers = viper.GetBool("keep_leftovers")
	}
	return cfg, nil
}
