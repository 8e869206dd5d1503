package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/buildinfo"
	"github.com/zbiljic/aitools/internal/config"
	"github.com/zbiljic/aitools/internal/logging"
	"github.com/zbiljic/aitools/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "aitools"

var rootFlags = rootOptions{}

type rootOptions struct {
	Debug      bool
	NoColor    bool
	ConfigFile string
}

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Password tools and AI helpers",
	Long: `Generate and analyze passwords, and run quick AI tasks
(summaries, code explanations, translations, document Q&A) against
the configured LLM providers.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		Date:    buildinfo.BuildDate,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRunE: rootPersistentPreRunE,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.FromContext(cmd.Context()).Sync() //nolint:errcheck
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Usage() //nolint:errcheck
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootFlags.Debug, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&rootFlags.ConfigFile, "config", "", "Path to the config file (default: searched)")
}

func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	logger, err := logging.New(rootFlags.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	ctx = logging.WithContext(ctx, logger)
	cmd.SetContext(ctx)

	if rootFlags.NoColor || isNotTerminal {
		color.NoColor = true
	}

	var cfg *config.Config
	if rootFlags.ConfigFile != "" {
		cfg, err = config.LoadFrom(rootFlags.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	path, found := config.GetPath()
	if rootFlags.ConfigFile != "" {
		path, found = rootFlags.ConfigFile, true
	}
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("path", path),
		zap.Bool("found", found),
	)

	injectIntoCommandContextWithKey(cmd, ctxKeyConfig{}, cfg)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}
