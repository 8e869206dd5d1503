package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/logging"
	"github.com/zbiljic/aitools/pkg/password"
	"github.com/zbiljic/aitools/pkg/promptsx"
	"github.com/zbiljic/aitools/pkg/termio"
)

var analyzeCmd = &cobra.Command{
	Use: "analyze [password]",
	Aliases: []string{
		"a",
		"strength",
	},
	Short:       "Analyze password strength",
	Long:        `Scores a password from 0 to 7 and lists what would make it stronger. The password is taken from the argument, from stdin, or asked for when running in a terminal.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runAnalyzeE,
}

var analyzeFlags = analyzeOptions{
	Output: TextOutput,
}

func analyzeAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&analyzeFlags.Hide, "hide", false, "Do not echo the analyzed password")
	addOutputFlag(cmd, &analyzeFlags.Output)
}

func init() {
	analyzeAddFlags(analyzeCmd)

	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOptions struct {
	Hide   bool
	Output OutputFormat
}

type analyzeResult struct {
	Password        string `json:"password,omitempty" yaml:"password,omitempty"`
	password.Report `yaml:",inline"`
}

// readPasswordLine reads the first line of r without its line ending.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func analyzePromptPassword() (string, error) {
	termio.ClearStdinBuffer()

	return prompts.Password(prompts.PasswordParams{
		Message: "Password to analyze",
	})
}

func runAnalyzeE(cmd *cobra.Command, args []string) error {
	var (
		pw          string
		err         error
		interactive bool
	)

	switch {
	case len(args) == 1:
		pw = args[0]
	case isInteractive() && analyzeFlags.Output == TextOutput:
		interactive = true
		setupCommandClackIntro(cmd)
		pw, err = analyzePromptPassword()
	default:
		pw, err = readPasswordLine(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	report := password.Analyze(pw)

	logging.FromContext(cmd.Context()).Debug("password analyzed",
		zap.Int("length", report.Length),
		zap.Int("score", report.Score),
		zap.String("label", string(report.Label)),
	)

	shown := pw
	if analyzeFlags.Hide || interactive {
		shown = strings.Repeat("*", report.Length)
	}

	if analyzeFlags.Output != TextOutput {
		result := analyzeResult{Report: report}
		if !analyzeFlags.Hide {
			result.Password = pw
		}
		return writeStructured(os.Stdout, analyzeFlags.Output, result)
	}

	if interactive {
		promptsx.Note(strings.TrimSpace(formatReport(shown, report)))
		prompts.Outro(fmt.Sprintf("%s Strength: %s", picocolors.Green("✔"), colorStrength(report.Label)))
		return nil
	}

	fmt.Printf("\n%s", formatReport(shown, report))
	return nil
}
