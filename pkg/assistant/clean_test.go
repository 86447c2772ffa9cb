package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "echoed user turn removed",
			in:   "Хороший вопрос.\nПользователь: а что дальше?\nне знаю",
			want: "Хороший вопрос.\nне знаю",
		},
		{
			name: "assistant cue removed",
			in:   "Ассистент: Привет!",
			want: "Привет!",
		},
		{
			name: "keeps only first paragraph",
			in:   "Первый абзац.\n\nВторой абзац.",
			want: "Первый абзац.",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAnswer(tt.in))
		})
	}
}

func TestSimpleClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Сегодня солнечно.", "Сегодня солнечно."},
		{"leading label stripped", "Assistant: Hello there", "Hello there"},
		{"output label stripped", "Output: результат", "результат"},
		{"part label stripped", "Часть 1: начало", "начало"},
		{"whitespace collapsed", "много    пробелов\n\tи табов", "много пробелов и табов"},
		{"empty becomes apology", "", FallbackApology},
		{"dots become apology", "...", FallbackApology},
		{"dots and spaces become apology", " . . . ", FallbackApology},
		{"too short becomes apology", "ok", FallbackApology},
		{"three runes survive", "да!", "да!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimpleClean(tt.in))
		})
	}
}

func TestCleanComposed(t *testing.T) {
	got := Clean("Assistant: Hello there\n\nUser: bye")
	assert.Equal(t, "Hello there", got)

	// degenerate after cleanup falls through to the apology
	assert.Equal(t, FallbackApology, Clean("Ассистент: ..."))
}
