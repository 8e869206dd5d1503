package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/config"
	"github.com/zbiljic/aitools/internal/logging"
	"github.com/zbiljic/aitools/pkg/password"
	"github.com/zbiljic/aitools/pkg/promptsx"
)

var passwdCmd = &cobra.Command{
	Use: "passwd",
	Aliases: []string{
		"pw",
		"password",
	},
	Short:       "Generate secure passwords",
	Long:        `Generates random passwords from the selected character sets and reports their strength. Defaults come from the "password" section of the config.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runPasswdE,
}

var passwdFlags = passwdOptions{
	Length:     password.DefaultLength,
	Lowercase:  true,
	Uppercase:  true,
	Digits:     true,
	Count:      1,
	BcryptCost: 0,
	Output:     TextOutput,
}

func passwdAddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&passwdFlags.Length, "length", "l", password.DefaultLength, "Password length")
	cmd.Flags().BoolVar(&passwdFlags.Lowercase, "lowercase", true, "Include lowercase letters")
	cmd.Flags().BoolVar(&passwdFlags.Uppercase, "uppercase", true, "Include uppercase letters")
	cmd.Flags().BoolVar(&passwdFlags.Digits, "numbers", true, "Include numbers")
	cmd.Flags().BoolVar(&passwdFlags.Symbols, "symbols", false, "Include symbols")
	cmd.Flags().IntVarP(&passwdFlags.Count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&passwdFlags.Bcrypt, "bcrypt", false, "Also print the bcrypt hash of each password")
	cmd.Flags().IntVar(&passwdFlags.BcryptCost, "bcrypt-cost", 0, "bcrypt cost (default from config)")
	cmd.Flags().BoolVarP(&passwdFlags.Interactive, "interactive", "i", false, "Choose the policy interactively")
	addOutputFlag(cmd, &passwdFlags.Output)
}

func init() {
	passwdAddFlags(passwdCmd)

	rootCmd.AddCommand(passwdCmd)
}

type passwdOptions struct {
	Length      int
	Lowercase   bool
	Uppercase   bool
	Digits      bool
	Symbols     bool
	Count       int
	Bcrypt      bool
	BcryptCost  int
	Interactive bool
	Output      OutputFormat
}

// generatedPassword is one generated password with its analysis.
type generatedPassword struct {
	Password string            `json:"password" yaml:"password"`
	Strength password.Strength `json:"strength" yaml:"strength"`
	Score    int               `json:"score" yaml:"score"`
	Hash     string            `json:"bcrypt,omitempty" yaml:"bcrypt,omitempty"`
}

// passwdPolicy starts from the config defaults and applies every flag
// the user set explicitly.
func passwdPolicy(cmd *cobra.Command, defaults config.PasswordConfig) password.Policy {
	policy := defaults.Policy()

	flags := cmd.Flags()
	if flags.Changed("length") {
		policy.Length = passwdFlags.Length
	}
	if flags.Changed("lowercase") {
		policy.Lowercase = passwdFlags.Lowercase
	}
	if flags.Changed("uppercase") {
		policy.Uppercase = passwdFlags.Uppercase
	}
	if flags.Changed("numbers") {
		policy.Digits = passwdFlags.Digits
	}
	if flags.Changed("symbols") {
		policy.Symbols = passwdFlags.Symbols
	}

	return policy
}

func passwdPromptPolicy(policy password.Policy) (password.Policy, error) {
	lengthStr, err := prompts.Text(prompts.TextParams{
		Message:      "Password length",
		Placeholder:  strconv.Itoa(password.DefaultLength),
		InitialValue: strconv.Itoa(policy.Length),
		Validate: func(value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 1 {
				return errors.New("please enter a positive number")
			}
			return nil
		},
	})
	if err != nil {
		return policy, err
	}
	policy.Length, _ = strconv.Atoi(strings.TrimSpace(lengthStr))

	classes := []struct {
		message string
		value   *bool
	}{
		{"Include lowercase letters?", &policy.Lowercase},
		{"Include uppercase letters?", &policy.Uppercase},
		{"Include numbers?", &policy.Digits},
		{"Include symbols?", &policy.Symbols},
	}
	for _, c := range classes {
		include, err := prompts.Confirm(prompts.ConfirmParams{
			Message:      c.message,
			InitialValue: *c.value,
		})
		if err != nil {
			return policy, err
		}
		*c.value = include
	}

	return policy, nil
}

func passwdGenerate(policy password.Policy, count int, withHash bool, cost int) ([]generatedPassword, error) {
	passwords, err := password.GenerateN(policy, count)
	if err != nil {
		return nil, err
	}

	results := make([]generatedPassword, 0, len(passwords))
	for _, pw := range passwords {
		report := password.Analyze(pw)
		result := generatedPassword{
			Password: pw,
			Strength: report.Label,
			Score:    report.Score,
		}
		if withHash {
			result.Hash, err = password.Hash(pw, cost)
			if err != nil {
				return nil, err
			}
		}
		results = append(results, result)
	}

	return results, nil
}

func runPasswdE(cmd *cobra.Command, args []string) error {
	cfg := commandConfig(cmd)
	log := logging.FromContext(cmd.Context())

	policy := passwdPolicy(cmd, cfg.Password)

	cost := cfg.Password.BcryptCost
	if cmd.Flags().Changed("bcrypt-cost") {
		cost = passwdFlags.BcryptCost
	}

	interactive := passwdFlags.Interactive && isInteractive() && passwdFlags.Output == TextOutput
	if interactive {
		setupCommandClackIntro(cmd)

		var err error
		policy, err = passwdPromptPolicy(policy)
		if err != nil {
			return err
		}
	}

	log.Debug("generating passwords",
		zap.Int("length", policy.Length),
		zap.Stringers("classes", policy.Enabled()),
		zap.Int("count", passwdFlags.Count),
		zap.Bool("bcrypt", passwdFlags.Bcrypt),
	)

	results, err := passwdGenerate(policy, passwdFlags.Count, passwdFlags.Bcrypt, cost)
	if err != nil {
		return err
	}

	if passwdFlags.Output != TextOutput {
		if len(results) == 1 {
			return writeStructured(os.Stdout, passwdFlags.Output, results[0])
		}
		return writeStructured(os.Stdout, passwdFlags.Output, results)
	}

	if interactive {
		var lines []string
		for _, r := range results {
			line := fmt.Sprintf("%s  %s", picocolors.Bold(r.Password), colorStrength(r.Strength))
			if r.Hash != "" {
				line += "\n" + picocolors.Gray(r.Hash)
			}
			lines = append(lines, line)
		}
		promptsx.Note(strings.Join(lines, "\n"))
		prompts.Outro(fmt.Sprintf("%s Generated %d password(s)", picocolors.Green("✔"), len(results)))
		return nil
	}

	for _, r := range results {
		fmt.Printf("\nGenerated Password: %s\n", r.Password)
		fmt.Printf("Strength: %s\n", colorStrength(r.Strength))
		if r.Hash != "" {
			fmt.Printf("bcrypt: %s\n", r.Hash)
		}
	}

	return nil
}
