package llm

// Default values for completion requests
const (
	DefaultCandidates      = 1
	DefaultMaxDocumentSize = 50000
)

const truncatedDocumentNotice = "\n[document truncated]"

// TruncateDocument shortens doc to at most max runes, appending a notice
// when anything was cut. A max of zero or less disables truncation.
func TruncateDocument(doc string, max int) string {
	if max <= 0 {
		return doc
	}
	runes := []rune(doc)
	if len(runes) <= max {
		return doc
	}
	return string(runes[:max]) + truncatedDocumentNotice
}
