package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptFull(t *testing.T) {
	instructions := []string{"Ты голосовой ассистент.", "Отвечай кратко."}
	history := "Пользователь: привет;\nАссистент: Привет!"

	prompt := BuildPrompt(instructions, history, "как дела?")

	assert.Equal(t, strings.Join([]string{
		"=== Instructions ===",
		"Ты голосовой ассистент.\nОтвечай кратко.",
		"=== Dialogue history ===",
		"Пользователь: привет;\nАссистент: Привет!",
		"Пользователь: как дела?",
		"Ассистент:",
	}, "\n"), prompt)
}

func TestBuildPromptDropsEmptySections(t *testing.T) {
	tests := []struct {
		name         string
		instructions []string
		history      string
	}{
		{"no instructions", nil, "Пользователь: привет"},
		{"blank instructions", []string{"", "  "}, "Пользователь: привет"},
		{"no history", []string{"Будь вежлив."}, ""},
		{"whitespace history", []string{"Будь вежлив."}, "   "},
		{"nothing", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.instructions, tt.history, "вопрос")

			if len(tt.instructions) == 0 || strings.TrimSpace(strings.Join(tt.instructions, "")) == "" {
				assert.NotContains(t, prompt, "=== Instructions ===")
			}
			if strings.TrimSpace(tt.history) == "" {
				assert.NotContains(t, prompt, "=== Dialogue history ===")
			}
			assert.True(t, strings.HasSuffix(prompt, "Пользователь: вопрос\nАссистент:"))
		})
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt([]string{"x"}, "h", "q")
	b := BuildPrompt([]string{"x"}, "h", "q")
	assert.Equal(t, a, b)
}

func TestRenderHistory(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "привет"},
		{Role: RoleAssistant, Text: "Привет!"},
		{Role: RoleUser, Text: "как дела?"},
	}

	got := RenderHistory(turns)

	assert.Equal(t, "Пользователь: привет;\nАссистент: Привет!;\nПользователь: как дела?", got)
}

func TestRenderHistoryEmpty(t *testing.T) {
	assert.Equal(t, "", RenderHistory(nil))
}
