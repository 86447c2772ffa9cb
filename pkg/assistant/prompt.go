package assistant

import "strings"

// Dialogue labels used both in prompt assembly and answer cleanup. The
// completion backend has no message protocol, so the entire state is
// linearized into one prompt with these labels.
const (
	labelUser      = "Пользователь"
	labelAssistant = "Ассистент"

	instructionsHeader = "=== Instructions ==="
	historyHeader      = "=== Dialogue history ==="
)

// BuildPrompt assembles the single-shot prompt: instructions block,
// dialogue history block, the current user line and a trailing
// assistant cue. Empty sections are dropped entirely, headers included.
// Deterministic and pure; empty inputs are allowed.
func BuildPrompt(instructions []string, history, userText string) string {
	sections := make([]string, 0, 6)

	joined := strings.TrimSpace(strings.Join(instructions, "\n"))
	if joined != "" {
		sections = append(sections, instructionsHeader, joined)
	}
	if strings.TrimSpace(history) != "" {
		sections = append(sections, historyHeader, history)
	}
	sections = append(sections, labelUser+": "+userText, labelAssistant+":")

	return strings.Join(sections, "\n")
}

// RenderHistory formats recent turns for the history block, oldest
// first, each line role-labeled, joined by ";\n".
func RenderHistory(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		label := labelAssistant
		if t.Role == RoleUser {
			label = labelUser
		}
		lines = append(lines, label+": "+t.Text)
	}
	return strings.Join(lines, ";\n")
}
