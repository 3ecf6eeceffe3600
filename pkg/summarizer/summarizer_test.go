package summarizer

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/memory"
)

var _ = Describe("BuildPrompt", func() {
	messages := []memory.Message{
		{Role: "user", Content: "my name is Ada"},
		{Role: "assistant", Content: "nice to meet you, Ada"},
	}

	It("asks for fresh extraction without prior memory", func() {
		prompt, err := BuildPrompt(nil, messages)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("Conversation messages:"))
		Expect(prompt).To(ContainSubstring("User: my name is Ada"))
		Expect(prompt).To(ContainSubstring("Extract key information"))
		Expect(prompt).NotTo(ContainSubstring("Previous memory:"))
	})

	It("includes the prior memory and asks for a merge", func() {
		prior := &memory.StructuredMemory{Facts: []string{"user is named Ada"}}

		prompt, err := BuildPrompt(prior, messages)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("Previous memory:"))
		Expect(prompt).To(ContainSubstring(`"user is named Ada"`))
		Expect(prompt).To(ContainSubstring("New messages to incorporate:"))
		Expect(prompt).To(ContainSubstring("merge new information"))
	})
})

var _ = Describe("ParseResponse", func() {
	It("parses a bare JSON object", func() {
		m, err := ParseResponse(`{"facts": ["a"], "decisions": ["b"]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Facts).To(Equal([]string{"a"}))
		Expect(m.Decisions).To(Equal([]string{"b"}))
	})

	It("tolerates markdown fences around the object", func() {
		m, err := ParseResponse("```json\n{\"facts\": [\"a\"]}\n```")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Facts).To(Equal([]string{"a"}))
	})

	It("tolerates surrounding prose", func() {
		m, err := ParseResponse(`Here is the memory you asked for: {"facts": ["a"]} hope that helps!`)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Facts).To(Equal([]string{"a"}))
	})

	It("returns a ParseError for an empty response", func() {
		_, err := ParseResponse("")

		var perr *ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
	})

	It("returns a ParseError carrying the raw response on schema violations", func() {
		_, err := ParseResponse(`{"facts": "not a list"}`)

		var perr *ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Raw).To(Equal(`{"facts": "not a list"}`))
	})
})

var _ = Describe("Summarize", func() {
	messages := []memory.Message{{Role: "user", Content: "hello"}}

	It("returns the parsed memory from the call", func() {
		s := New(func(_ context.Context, _ string) (string, error) {
			return `{"facts": ["the user said hello"]}`, nil
		})

		m, err := s.Summarize(context.Background(), nil, messages)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Facts).To(Equal([]string{"the user said hello"}))
	})

	It("wraps call failures as ProviderError", func() {
		cause := errors.New("connection refused")
		s := New(func(_ context.Context, _ string) (string, error) {
			return "", cause
		})

		_, err := s.Summarize(context.Background(), nil, messages)

		var perr *ProviderError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(errors.Is(err, cause)).To(BeTrue())
	})

	It("passes the prior memory through to the prompt", func() {
		var captured string
		s := New(func(_ context.Context, prompt string) (string, error) {
			captured = prompt
			return `{"facts": ["a"]}`, nil
		})

		prior := &memory.StructuredMemory{Facts: []string{"known already"}}
		_, err := s.Summarize(context.Background(), prior, messages)
		Expect(err).NotTo(HaveOccurred())
		Expect(captured).To(ContainSubstring("known already"))
	})
})

var _ = Describe("NewCaller", func() {
	It("falls back to ollama when the provider needs a key and none is set", func() {
		GinkgoT().Setenv("OPENAI_API_KEY", "")
		GinkgoT().Setenv("ANTHROPIC_API_KEY", "")

		call, err := NewCaller(CallerConfig{Provider: "openai"})
		Expect(err).NotTo(HaveOccurred())
		Expect(call).NotTo(BeNil())
	})

	It("builds a caller for each known provider with a key", func() {
		for _, provider := range []string{"openai", "anthropic", "ollama"} {
			call, err := NewCaller(CallerConfig{Provider: provider, APIKey: "test-key"})
			Expect(err).NotTo(HaveOccurred(), provider)
			Expect(call).NotTo(BeNil(), provider)
		}
	})

	It("rejects an unsupported provider", func() {
		_, err := NewCaller(CallerConfig{Provider: "bard", APIKey: "test-key"})
		Expect(err).To(MatchError(ContainSubstring("unsupported provider")))
	})
})
