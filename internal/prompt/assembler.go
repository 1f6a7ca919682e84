package prompt

import (
	"strings"

	"lensbot/internal/history"
	"lensbot/internal/llm"
)

// Assemble builds the bounded message list for a generation call:
// system instruction, prior turns (private) or a synthesized transcript
// (group), an optional system message with the enrichment blob, and the
// final user message. Size is bounded by the history capacity and the
// enrichment truncation budget.
func Assemble(v Variant, turns []history.Turn, enrichment, userText string, group bool) []llm.Message {
	msgs := []llm.Message{{Role: "system", Content: v.System}}

	if group {
		if tr := transcript(turns); tr != "" {
			msgs = append(msgs, llm.Message{Role: "user", Content: "Разговор в чате до этого момента:\n" + tr})
		}
	} else {
		for _, t := range turns {
			role := t.Role
			if role == "" {
				role = history.RoleUser
			}
			msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
		}
	}

	if enrichment != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: "Данные из внешних источников:\n\n" + enrichment})
	}

	return append(msgs, llm.Message{Role: "user", Content: userText})
}

// transcript flattens group memory into "speaker: text" lines.
func transcript(turns []history.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		speaker := t.Speaker
		if speaker == "" {
			speaker = t.Role
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
