package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty yields one part", "", 10, []string{""}},
		{"short stays whole", "привет", 10, []string{"привет"}},
		{"exact boundary", "abcde", 5, []string{"abcde"}},
		{"splits over boundary", "abcdef", 5, []string{"abcde", "f"}},
		{"multiple chunks", strings.Repeat("x", 12), 5, []string{"xxxxx", "xxxxx", "xx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitText(tt.text, tt.size))
		})
	}
}

func TestSplitTextCountsRunes(t *testing.T) {
	// multi-byte text must split on rune boundaries, not bytes
	parts := SplitText("привет", 3)
	assert.Equal(t, []string{"при", "вет"}, parts)
}

func TestSplitTextLongMessage(t *testing.T) {
	text := strings.Repeat("а", MaxMessageLength+1)
	parts := SplitText(text, MaxMessageLength)

	assert.Len(t, parts, 2)
	assert.Len(t, []rune(parts[0]), MaxMessageLength)
	assert.Len(t, []rune(parts[1]), 1)
}
