package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCommands(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		commands []string
	}{
		{
			name:     "no commands",
			in:       "просто ответ",
			want:     "просто ответ",
			commands: nil,
		},
		{
			name:     "single command",
			in:       "Хорошо. [COMMAND]TG_MESSAGE: привет[/COMMAND]",
			want:     "Хорошо. ",
			commands: []string{"TG_MESSAGE: привет"},
		},
		{
			name:     "two adjacent commands stay separate",
			in:       "[COMMAND]a[/COMMAND][COMMAND]b[/COMMAND]",
			want:     "",
			commands: []string{"a", "b"},
		},
		{
			name:     "multiline body",
			in:       "[COMMAND]\nTG_MESSAGE: длинный\nтекст\n[/COMMAND]",
			want:     "",
			commands: []string{"TG_MESSAGE: длинный\nтекст"},
		},
		{
			name:     "command in the middle",
			in:       "до [COMMAND]x[/COMMAND] после",
			want:     "до  после",
			commands: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripped, commands := ExtractCommands(tt.in)
			assert.Equal(t, tt.want, stripped)
			assert.Equal(t, tt.commands, commands)
		})
	}
}

func TestWrapCommand(t *testing.T) {
	wrapped := WrapCommand("TG_MESSAGE: привет")
	stripped, commands := ExtractCommands(wrapped)
	assert.Equal(t, "", stripped)
	assert.Equal(t, []string{"TG_MESSAGE: привет"}, commands)
}

func TestDetectLocalCommand(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		body  string
		match bool
	}{
		{"wake word with verb", "Ере, отправь сообщение маме", "сообщение маме", true},
		{"misspelled wake word", "иерихон сделай отчёт", "отчёт", true},
		{"uppercase normalized", "ЕРЕ НАПИШИ привет", "привет", true},
		{"verbless telegram form", "напиши сообщение в телеграм что я опоздаю", "что я опоздаю", true},
		{"no wake word", "какая сегодня погода", "", false},
		{"wake word mid-sentence ignored", "я говорил ере отправь", "", false},
		{"empty remainder is no match", "ере отправь", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := DetectLocalCommand(tt.in)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.body, body)
		})
	}
}
