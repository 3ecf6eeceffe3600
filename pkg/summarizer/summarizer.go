// Package summarizer turns a batch of conversation messages into a
// StructuredMemory by calling an external LLM.
//
// The LLM is reached through a CallFunc so that providers are swappable and
// tests can inject a canned response. Failures are typed: ProviderError for
// transport/API problems, ParseError for output that violates the structured
// schema. Both are hard failures of the summarization attempt.
package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mnemolabs/mnemo/pkg/memory"
)

// CallFunc is the signature for an LLM inference call: prompt in, raw text
// response out.
type CallFunc func(ctx context.Context, prompt string) (string, error)

const instructions = `You are a conversation memory assistant. Extract durable, structured information from conversation segments.

Return ONLY a valid JSON object with these optional keys:
{
  "facts": ["key facts worth remembering"],
  "decisions": ["decisions or conclusions reached"],
  "user_preferences": ["stated user preferences"],
  "open_questions": ["questions raised but not yet answered"],
  "entities": [{"name": "...", "aliases": ["..."], "notes": "..."}]
}

Guidelines:
- Preserve important details like names, IDs, dates, or specific values mentioned
- Focus on information that would help understand future questions in context
- Use neutral, factual language
- Omit keys that have nothing to report`

// Summarizer extracts structured memory from conversation segments.
type Summarizer struct {
	call CallFunc
}

// New creates a Summarizer backed by the given LLM call.
func New(call CallFunc) *Summarizer {
	return &Summarizer{call: call}
}

// Summarize calls the LLM with the prior memory (if any) and the new
// messages, and decodes the response into a StructuredMemory.
func (s *Summarizer) Summarize(ctx context.Context, prior *memory.StructuredMemory, messages []memory.Message) (memory.StructuredMemory, error) {
	prompt, err := BuildPrompt(prior, messages)
	if err != nil {
		return memory.StructuredMemory{}, err
	}

	response, err := s.call(ctx, prompt)
	if err != nil {
		return memory.StructuredMemory{}, &ProviderError{Err: err}
	}

	return ParseResponse(response)
}

// BuildPrompt renders the summarization prompt. With a prior memory the
// model is asked to extract and merge; without, to extract fresh.
func BuildPrompt(prior *memory.StructuredMemory, messages []memory.Message) (string, error) {
	transcript := memory.FormatTranscript(messages)

	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n\n")

	if prior != nil {
		priorJSON, err := prior.Encode()
		if err != nil {
			return "", err
		}
		b.WriteString("Previous memory:\n")
		b.WriteString(priorJSON)
		b.WriteString("\n\nNew messages to incorporate:\n")
		b.WriteString(transcript)
		b.WriteString("\n\nExtract and merge new information with the previous memory.")
	} else {
		b.WriteString("Conversation messages:\n")
		b.WriteString(transcript)
		b.WriteString("\n\nExtract key information from this conversation.")
	}

	return b.String(), nil
}

// ParseResponse decodes the LLM's raw text into a StructuredMemory. The JSON
// object is extracted from the response body, tolerating markdown fences and
// surrounding prose, but any schema violation inside it is a ParseError.
func ParseResponse(response string) (memory.StructuredMemory, error) {
	jsonStr := response
	if idx := strings.Index(response, "{"); idx >= 0 {
		if endIdx := strings.LastIndex(response, "}"); endIdx > idx {
			jsonStr = response[idx : endIdx+1]
		}
	}

	if strings.TrimSpace(jsonStr) == "" {
		return memory.StructuredMemory{}, &ParseError{Raw: response, Err: errors.New("empty response")}
	}

	var m memory.StructuredMemory
	if err := json.Unmarshal([]byte(jsonStr), &m); err != nil {
		return memory.StructuredMemory{}, &ParseError{Raw: response, Err: err}
	}

	return m, nil
}
