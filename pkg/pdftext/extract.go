// Package pdftext turns documents into plain text for prompting.
package pdftext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document contains no extractable text.
var ErrNoText = errors.New("no extractable text found")

// Extract returns the text of every readable page of the PDF at path.
// Pages that fail to decode are skipped.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var text strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
	}

	extracted := strings.TrimSpace(text.String())
	if extracted == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}

	return extracted, nil
}

// ExtractFile returns the text of a document. PDF files are decoded,
// anything else is read as UTF-8 text.
func ExtractFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return Extract(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}

	return text, nil
}
