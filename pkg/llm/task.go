package llm

import "fmt"

// Task selects the system prompt sent with a request.
type Task int

const (
	// ChatTask answers free-form questions.
	ChatTask Task = iota
	// SummarizeTask condenses the input.
	SummarizeTask
	// ExplainCodeTask explains source code.
	ExplainCodeTask
	// ReviewCodeTask reviews source code.
	ReviewCodeTask
	// TranslateTask translates the input into a target language.
	TranslateTask
	// SentimentTask classifies the sentiment of the input.
	SentimentTask
	// QATask answers questions using only the supplied document.
	QATask
)

// TaskIds maps Task to their string representations.
var TaskIds = map[Task][]string{
	ChatTask:        {"chat"},
	SummarizeTask:   {"summarize", "summary"},
	ExplainCodeTask: {"explain-code", "explain"},
	ReviewCodeTask:  {"review-code", "review"},
	TranslateTask:   {"translate"},
	SentimentTask:   {"sentiment"},
	QATask:          {"qa"},
}

var taskSystemPrompts = map[Task]string{
	ChatTask: "You are a helpful assistant. Answer clearly and concisely.",
	SummarizeTask: `You summarize text.
1. Keep the key facts, decisions and action items
2. Use short bullet points
3. Do not add information that is not in the text`,
	ExplainCodeTask: `You explain source code to a developer.
1. Start with a one sentence overview
2. Walk through the important parts in order
3. Point out anything surprising or error-prone`,
	ReviewCodeTask: `You review source code.
1. List bugs first, then readability and performance issues
2. Reference the relevant lines or identifiers
3. Suggest a concrete fix for each finding`,
	TranslateTask: "You are a translator. Output only the translated text, preserving formatting.",
	SentimentTask: "Classify the sentiment of the text as positive, negative, neutral or mixed. Answer with the label followed by a one sentence reason.",
	QATask:        "Answer the question using only the provided document. If the document does not contain the answer, say so.",
}

// String returns the canonical name of the task.
func (t Task) String() string {
	if ids, ok := TaskIds[t]; ok {
		return ids[0]
	}
	return fmt.Sprintf("UnknownTask(%d)", int(t))
}

// SystemPrompt returns the system prompt of the task.
func (t Task) SystemPrompt() string {
	if p, ok := taskSystemPrompts[t]; ok {
		return p
	}
	return taskSystemPrompts[ChatTask]
}
