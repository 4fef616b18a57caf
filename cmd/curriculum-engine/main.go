// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the curriculum-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the curriculum-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "curriculum-engine",
	Short: "Assemble ordered curricula from open textbook topic records",
	Long: `curriculum-engine turns raw topic records harvested from open textbooks
into a complete, ordered curriculum per discipline. The pipeline deduplicates
concepts, clusters them by content area, derives a prerequisite graph,
resolves cycles, sequences by educational tier, and expands clusters to a
fixed target size.

Use build to run the pipeline over a topic file, check to audit a generated
curriculum, and store to manage previously saved runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./curriculum-engine.yaml or ~/.config/curriculum-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("curriculum-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "curriculum-engine"))
		}
	}

	viper.SetEnvPrefix("CURRICULUM_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
