package llm

import (
	"strings"
	"testing"
)

func TestMapToString(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]string
		expected []string
	}{
		{
			name:     "Empty map",
			input:    map[string]string{},
			expected: []string{},
		},
		{
			name: "Single entry",
			input: map[string]string{
				"chat": "Answer a question",
			},
			expected: []string{`- "chat": "Answer a question"`},
		},
		{
			name: "Multiple entries",
			input: map[string]string{
				"summarize": "Summarize text",
				"qa":        "Answer questions",
			},
			expected: []string{
				`- "qa": "Answer questions"`,
				`- "summarize": "Summarize text"`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := mapToString(tc.input)

			for _, expected := range tc.expected {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected result to contain %q, but got %q", expected, result)
				}
			}

			// Check that we have the right number of lines
			if len(tc.expected) > 0 {
				lines := strings.Split(strings.TrimSpace(result), "\n")
				if len(lines) != len(tc.expected) {
					t.Errorf("Expected %d lines, but got %d lines", len(tc.expected), len(lines))
				}
			}
		})
	}
}

func TestDescribeTasks(t *testing.T) {
	result := DescribeTasks()

	for task := range TaskIds {
		if !strings.Contains(result, `"`+task.String()+`"`) {
			t.Errorf("Expected task %q to be described, got %q", task.String(), result)
		}
	}

	lines := strings.Split(result, "\n")
	if len(lines) != len(TaskIds) {
		t.Errorf("Expected %d lines, but got %d lines", len(TaskIds), len(lines))
	}
}

func TestTruncateDocument(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		max      int
		expected string
	}{
		{name: "Disabled", doc: "abcdef", max: 0, expected: "abcdef"},
		{name: "Short enough", doc: "abc", max: 3, expected: "abc"},
		{name: "Truncated", doc: "abcdef", max: 4, expected: "abcd" + truncatedDocumentNotice},
		{name: "Multibyte", doc: "ééééé", max: 2, expected: "éé" + truncatedDocumentNotice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateDocument(tc.doc, tc.max); got != tc.expected {
				t.Errorf("TruncateDocument(%q, %d) = %q; want %q", tc.doc, tc.max, got, tc.expected)
			}
		})
	}
}
