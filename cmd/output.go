package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/zbiljic/aitools/pkg/password"
)

var strengthColors = map[password.Strength]*color.Color{
	password.Weak:   color.New(color.FgRed, color.Bold),
	password.Fair:   color.New(color.FgYellow, color.Bold),
	password.Good:   color.New(color.FgCyan, color.Bold),
	password.Strong: color.New(color.FgGreen, color.Bold),
}

// colorStrength renders the label in its color. Colors are dropped when
// color.NoColor is set.
func colorStrength(s password.Strength) string {
	if c, ok := strengthColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case JSONOutput:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAMLOutput:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format: %d", format)
}

// formatReport renders an analysis the way the analyze command prints it.
func formatReport(pw string, report password.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Password: %s\n", pw)
	fmt.Fprintf(&sb, "Strength: %s\n", colorStrength(report.Label))
	fmt.Fprintf(&sb, "Score: %d/%d\n", report.Score, password.MaxScore)

	if len(report.Feedback) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, item := range report.Feedback {
			fmt.Fprintf(&sb, "  - %s\n", item)
		}
	}

	return sb.String()
}
