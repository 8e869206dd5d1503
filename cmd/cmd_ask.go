package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
	"go.uber.org/zap"

	"github.com/zbiljic/aitools/internal/logging"
	"github.com/zbiljic/aitools/pkg/llm"
	"github.com/zbiljic/aitools/pkg/pdftext"
	"github.com/zbiljic/aitools/pkg/promptsx"
)

const askAgent = "ask"

var askCmd = &cobra.Command{
	Use:   "ask [instruction...]",
	Short: "Run an AI task on text or a document",
	Long: `Sends an instruction, optionally with a document (PDF or text file), to an LLM provider.

Tasks:
` + llm.DescribeTasks(),
	Example: `  aitools ask "What is a goroutine?"
  aitools ask -t summarize -f meeting-notes.txt
  aitools ask -t qa -f handbook.pdf "How many vacation days do I get?"
  git diff | aitools ask -t review-code`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.ArbitraryArgs,
	RunE:        runAskE,
}

var askFlags = askOptions{
	Task:            llm.ChatTask,
	Provider:        AutoProvider,
	CandidateCount:  llm.DefaultCandidates,
	MaxDocumentSize: llm.DefaultMaxDocumentSize,
}

func askAddFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(enumflag.New(&askFlags.Task, "task", llm.TaskIds, enumflag.EnumCaseInsensitive), "task", "t", "Task to run (chat, summarize, explain-code, review-code, translate, sentiment, qa)")
	addCommonLLMFlags(cmd, &askFlags.Provider, &askFlags.Model)
	cmd.Flags().StringVarP(&askFlags.File, "file", "f", "", "Document to include (PDF or text)")
	cmd.Flags().StringVar(&askFlags.Language, "lang", "", "Target language for the translate task")
	cmd.Flags().StringVar(&askFlags.System, "system", "", "Override the task's system prompt")
	cmd.Flags().IntVarP(&askFlags.CandidateCount, "count", "n", llm.DefaultCandidates, "Number of answers to generate")
	cmd.Flags().IntVar(&askFlags.MaxDocumentSize, "max-doc", llm.DefaultMaxDocumentSize, "Maximum document size sent to the LLM (in characters, 0 for no limit)")
}

func init() {
	askAddFlags(askCmd)

	rootCmd.AddCommand(askCmd)
}

type askOptions struct {
	Task            llm.Task
	Provider        ProviderType
	Model           string
	File            string
	Language        string
	System          string
	CandidateCount  int
	MaxDocumentSize int
}

// askReadStdin returns piped stdin, or an empty string when stdin is a
// terminal.
func askReadStdin(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && f == os.Stdin && isInteractive() {
		return "", nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

// askBuildRequest assembles the request from args, the document flag
// and piped stdin. With a document, piped input becomes the instruction;
// without one, piped input is the document when args are present.
func askBuildRequest(args []string, stdin string) (llm.Request, error) {
	req := llm.Request{
		Task:         askFlags.Task,
		Instruction:  strings.Join(args, " "),
		Language:     askFlags.Language,
		SystemPrompt: askFlags.System,
		Candidates:   askFlags.CandidateCount,
	}

	if askFlags.File != "" {
		doc, err := pdftext.ExtractFile(askFlags.File)
		if err != nil {
			return req, err
		}
		req.Document = doc
		if req.Instruction == "" {
			req.Instruction = strings.TrimSpace(stdin)
		}
	} else if strings.TrimSpace(stdin) != "" {
		if req.Instruction == "" {
			req.Instruction = stdin
		} else {
			req.Document = stdin
		}
	}

	req.Document = llm.TruncateDocument(req.Document, askFlags.MaxDocumentSize)

	return req, req.Validate()
}

func runAskE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	var stdin string
	if len(args) == 0 || askFlags.File == "" {
		var err error
		if stdin, err = askReadStdin(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	req, err := askBuildRequest(args, stdin)
	if err != nil {
		return err
	}

	aip, err := initializeLLMProvider(ctx, commandConfig(cmd), askAgent, askFlags.Provider, askFlags.Model)
	if err != nil {
		return err
	}

	log.Debug("provider selected", zap.String("provider", aip.String()), zap.Stringer("task", req.Task))

	interactive := isInteractive()

	var spinner *prompts.SpinnerController
	if interactive {
		setupCommandClackIntro(cmd)
		if askFlags.File != "" {
			promptsx.InfoWithLastLine(fmt.Sprintf("Document %s (%d characters)", askFlags.File, len([]rune(req.Document))))
		}
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start(fmt.Sprintf("Running %s with %s", req.Task, aip.String()))
	}

	answers, err := llm.Complete(ctx, aip, req)
	if err != nil {
		if spinner != nil {
			spinner.Stop("Request failed", 1)
		}
		return err
	}

	if !interactive {
		fmt.Println(strings.Join(answers, "\n\n---\n\n"))
		return nil
	}

	spinner.Stop(fmt.Sprintf("Received %d answer(s)", len(answers)), 0)
	for _, answer := range answers {
		promptsx.Note(answer)
	}
	prompts.Outro(fmt.Sprintf("%s Done", picocolors.Green("✔")))

	return nil
}
