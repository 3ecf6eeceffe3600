package memory

import (
	"fmt"
	"strings"
)

// FormatStructuredMemory flattens a structured memory into natural language
// suitable for inclusion in a downstream prompt.
func FormatStructuredMemory(m *StructuredMemory) string {
	if m == nil {
		return ""
	}

	var parts []string

	if len(m.Facts) > 0 {
		parts = append(parts, "Facts: "+strings.Join(m.Facts, "; "))
	}
	if len(m.Decisions) > 0 {
		parts = append(parts, "Decisions: "+strings.Join(m.Decisions, "; "))
	}
	if len(m.UserPreferences) > 0 {
		parts = append(parts, "User preferences: "+strings.Join(m.UserPreferences, "; "))
	}

	if len(m.Entities) > 0 {
		entityStrs := make([]string, 0, len(m.Entities))
		for _, e := range m.Entities {
			if e.Notes != "" {
				entityStrs = append(entityStrs, fmt.Sprintf("%s (%s)", e.Name, e.Notes))
			} else {
				entityStrs = append(entityStrs, e.Name)
			}
		}
		parts = append(parts, "Entities: "+strings.Join(entityStrs, "; "))
	}

	if len(m.OpenQuestions) > 0 {
		parts = append(parts, "Open questions: "+strings.Join(m.OpenQuestions, "; "))
	}

	return strings.Join(parts, "\n")
}

// FormatTranscript renders messages as "Role: content" lines with the role
// capitalized, one message per line.
func FormatTranscript(messages []Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, capitalize(msg.Role)+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}

// FormatContextForWorkflow renders a ConversationContext with XML tags for
// the downstream agent: a <memory> section for the summarized older history,
// a <chat_history> section for the gap messages, and a trailing explanation
// of what each section contains. Returns "" when there is nothing to show.
func FormatContextForWorkflow(ctx *ConversationContext) string {
	if ctx == nil {
		return ""
	}

	var parts []string
	var explanations []string

	if ctx.Memory != nil {
		if memoryText := FormatStructuredMemory(ctx.Memory); memoryText != "" {
			parts = append(parts, "<memory>\n"+memoryText+"\n</memory>")
			explanations = append(explanations, "<memory>: Summarized key information from older messages")
		}
	}

	if len(ctx.GapMessages) > 0 {
		parts = append(parts, "<chat_history>\n"+FormatTranscript(ctx.GapMessages)+"\n</chat_history>")
		if ctx.Memory != nil {
			explanations = append(explanations, "<chat_history>: Recent messages not yet summarized")
		} else {
			explanations = append(explanations, "<chat_history>: Previous messages in this conversation")
		}
	}

	if len(parts) == 0 {
		return ""
	}

	explanation := "The above provides context from this conversation:\n- " + strings.Join(explanations, "\n- ")
	return strings.Join(parts, "\n") + "\n\n" + explanation
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
