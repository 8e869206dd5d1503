package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbiljic/aitools/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Long:  `Writes the default configuration to the given path, or to ~/.config/aitools/aitools.json.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInitE,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path the configuration is loaded from",
	Args:  cobra.NoArgs,
	RunE:  runConfigPathE,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShowE,
}

var configFlags = configOptions{
	Output: JSONOutput,
}

type configOptions struct {
	Force  bool
	Output OutputFormat
}

func init() {
	configInitCmd.Flags().BoolVar(&configFlags.Force, "force", false, "Overwrite an existing file")
	addOutputFlag(configShowCmd, &configFlags.Output)

	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInitE(cmd *cobra.Command, args []string) error {
	path := config.GetDefaultPath()
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := config.Init(path, configFlags.Force); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", path)
	return nil
}

func runConfigPathE(cmd *cobra.Command, args []string) error {
	if rootFlags.ConfigFile != "" {
		fmt.Println(rootFlags.ConfigFile)
		return nil
	}

	if path, ok := config.GetPath(); ok {
		fmt.Println(path)
		return nil
	}

	fmt.Printf("No configuration file found, defaults are used (create one at %s)\n", config.GetDefaultPath())
	return nil
}

func runConfigShowE(cmd *cobra.Command, args []string) error {
	cfg := *commandConfig(cmd)

	// never print secrets
	providers := make(map[string]config.ProviderConfig, len(cfg.Providers))
	for name, p := range cfg.Providers {
		if p.APIKey != "" {
			p.APIKey = "********"
		}
		providers[name] = p
	}
	cfg.Providers = providers

	if configFlags.Output == TextOutput {
		configFlags.Output = YAMLOutput
	}

	return writeStructured(os.Stdout, configFlags.Output, cfg)
}
