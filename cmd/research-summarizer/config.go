// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "research-summarizer/0.1"
)

// buildConfig materializes the immutable pipeline configuration once, from
// config file, environment, secrets, and command flags (highest precedence).
// Stages receive this value explicitly and never read configuration ambiently.
func buildConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultTimeout,
				UserAgent: defaultUserAgent,
			},
			Categories: []string{"cs.LG", "cs.AI"},
			MaxRetries: 2,
		},
		LLM: types.LLMConfig{
			Provider:   types.ProviderMock,
			MaxRetries: 3,
		},
		Summary: types.SummaryConfig{
			Budget:    120 * time.Second,
			MaxPapers: 10,
		},
		RunLog: types.RunLogConfig{
			Dir: "runs",
		},
	}

	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetStringSlice("search.categories"); len(v) > 0 {
		cfg.Search.Categories = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = types.LLMProvider(v)
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetDuration("summary.budget"); v > 0 {
		cfg.Summary.Budget = v
	}
	if v := viper.GetString("run_log.dir"); v != "" {
		cfg.RunLog.Dir = v
	}

	// Flags override file and environment.
	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		cfg.LLM.Provider = types.LLMProvider(v)
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.LLM.Model = v
	}

	cfg.LLM.APIKey = secretDefault("openai-api-key", viper.GetString("llm.api_key"))

	return cfg
}
