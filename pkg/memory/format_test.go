package memory

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatStructuredMemory", func() {
	It("returns empty for a nil memory", func() {
		Expect(FormatStructuredMemory(nil)).To(Equal(""))
	})

	It("renders only the populated sections", func() {
		text := FormatStructuredMemory(&StructuredMemory{
			Facts:         []string{"a", "b"},
			OpenQuestions: []string{"q?"},
		})

		Expect(text).To(ContainSubstring("Facts: a; b"))
		Expect(text).To(ContainSubstring("Open questions: q?"))
		Expect(text).NotTo(ContainSubstring("Decisions"))
	})

	It("renders entity notes in parentheses", func() {
		text := FormatStructuredMemory(&StructuredMemory{
			Entities: []Entity{{Name: "Ada", Notes: "engineer"}, {Name: "Bob"}},
		})

		Expect(text).To(ContainSubstring("Entities: Ada (engineer); Bob"))
	})
})

var _ = Describe("FormatTranscript", func() {
	It("renders role-prefixed lines with capitalized roles", func() {
		text := FormatTranscript([]Message{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi there"},
		})

		Expect(text).To(Equal("User: hello\nAssistant: hi there"))
	})
})

var _ = Describe("FormatContextForWorkflow", func() {
	It("returns empty for nil or empty context", func() {
		Expect(FormatContextForWorkflow(nil)).To(Equal(""))
		Expect(FormatContextForWorkflow(&ConversationContext{})).To(Equal(""))
	})

	It("renders memory and chat history sections with explanations", func() {
		text := FormatContextForWorkflow(&ConversationContext{
			Memory:      &StructuredMemory{Facts: []string{"a"}},
			GapMessages: []Message{{Role: "user", Content: "hello"}},
		})

		Expect(text).To(ContainSubstring("<memory>"))
		Expect(text).To(ContainSubstring("</memory>"))
		Expect(text).To(ContainSubstring("<chat_history>"))
		Expect(text).To(ContainSubstring("Recent messages not yet summarized"))
	})

	It("explains chat history differently when no memory exists", func() {
		text := FormatContextForWorkflow(&ConversationContext{
			GapMessages: []Message{{Role: "user", Content: "hello"}},
		})

		Expect(text).NotTo(ContainSubstring("<memory>"))
		Expect(text).To(ContainSubstring("Previous messages in this conversation"))
	})
})
