package llm

import "errors"

var (
	// ErrEmptyRequest is returned when a request carries neither an
	// instruction nor a document.
	ErrEmptyRequest = errors.New("nothing to send: provide an instruction or a document")

	// ErrMissingLanguage is returned for translations without a target language.
	ErrMissingLanguage = errors.New("translation requires a target language")

	// ErrNoProvider is returned when no provider is configured.
	ErrNoProvider = errors.New("no available LLM providers found - please configure at least one provider's API key")

	// ErrNoCandidates is returned when a provider answered with nothing usable.
	ErrNoCandidates = errors.New("no answers were generated, try again")
)
