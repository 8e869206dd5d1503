package cmd

import (
	"context"
	"fmt"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/aitools/internal/config"
)

type (
	ctxKeyClackPromptStarted struct{}
	ctxKeyConfig             struct{}
)

func injectIntoCommandContextWithKey[K comparable, V any](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// commandConfig returns the configuration loaded by the root command, or
// the defaults when none was loaded.
func commandConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(ctxKeyConfig{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.NewDefault()
}

// setupCommandClackIntro shows the clack intro and marks the session as
// started so errors are reported through clack.
func setupCommandClackIntro(cmd *cobra.Command) {
	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)
}
