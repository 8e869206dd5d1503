package llm

import (
	"fmt"
	"sort"
	"strings"
)

var taskDescriptions = map[string]string{
	ChatTask.String():        "Answer a free-form question",
	SummarizeTask.String():   "Summarize text or a document",
	ExplainCodeTask.String(): "Explain source code",
	ReviewCodeTask.String():  "Review source code for issues",
	TranslateTask.String():   "Translate text (requires --lang)",
	SentimentTask.String():   "Classify sentiment",
	QATask.String():          "Answer questions about a document",
}

// DescribeTasks lists every task with a short description.
func DescribeTasks() string {
	return mapToString(taskDescriptions)
}

func mapToString(m map[string]string) string {
	var entries []string
	for k, v := range m {
		entries = append(entries, fmt.Sprintf(`- "%s": "%s"`, k, v))
	}
	sort.Strings(entries)
	return strings.Join(entries, "\n")
}
