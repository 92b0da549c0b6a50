// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-summarizer CLI.
// Each pipeline stage is reachable as a subcommand (plan, search,
// summarize) plus run-log inspection (runs); summarize executes the whole
// pipeline: plan, retrieve, summarize, evaluate.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-summarizer/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the research-summarizer CLI.
var rootCmd = &cobra.Command{
	Use:   "research-summarizer",
	Short: "Turn a research question into a scored literature summary",
	Long: `research-summarizer turns a natural-language research query into a
structured, multi-section literature summary with deterministic quality
scores. The pipeline plans the search with a chat model, retrieves and
deduplicates papers from academic APIs, summarizes them under a hard time
budget, and evaluates the result.

Each stage is a subcommand: plan, search, and summarize. The summarize
command runs the full pipeline and can log completed runs locally.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-summarizer.yaml or ~/.config/research-summarizer/config.yaml)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: mock, openai, or ollama (default mock)")
	rootCmd.PersistentFlags().String("model", "", "LLM model identifier")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-summarizer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-summarizer"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_SUMMARIZER")
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
