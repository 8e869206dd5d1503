package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// OutputFormat selects how results are written.
type OutputFormat enumflag.Flag

const (
	TextOutput OutputFormat = iota
	JSONOutput
	YAMLOutput
)

// OutputFormatIds maps OutputFormat to their string representations.
var OutputFormatIds = map[OutputFormat][]string{
	TextOutput: {"text"},
	JSONOutput: {"json"},
	YAMLOutput: {"yaml", "yml"},
}

// addCommonLLMFlags adds the common LLM provider and model flags to a command
func addCommonLLMFlags(cmd *cobra.Command, provider *ProviderType, model *string) {
	cmd.Flags().VarP(enumflag.New(provider, "provider", ProviderIds, enumflag.EnumCaseInsensitive), "provider", "p", "LLM provider to use (auto, phind, openai, claude, googleai, openrouter, groq, deepseek)")
	cmd.Flags().StringVarP(model, "model", "m", "", "Specific model to use for the selected provider")
}

// addOutputFlag adds the --output flag to a command
func addOutputFlag(cmd *cobra.Command, format *OutputFormat) {
	cmd.Flags().VarP(enumflag.New(format, "format", OutputFormatIds, enumflag.EnumCaseInsensitive), "output", "o", "Output format (text, json, yaml)")
}
