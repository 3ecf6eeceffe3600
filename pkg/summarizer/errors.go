package summarizer

// ProviderError wraps a transport or API failure from the LLM provider.
// The attempt is a hard failure; the caller marks the record failed.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "summarizer provider: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ParseError wraps a schema violation in the provider's output. Any response
// that does not decode into a structured memory is a hard failure of the
// attempt, never a partial success.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "summarizer output: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
