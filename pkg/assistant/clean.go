package assistant

import (
	"regexp"
	"strings"
)

var (
	userEchoRe   = regexp.MustCompile(`Пользователь:.*?\n`)
	assistantRe  = regexp.MustCompile(`Ассистент:`)
	leadLabelRe  = regexp.MustCompile(`(?i)^(Assistant:|Output:|Answer:|Часть\s*\d+:)\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	dotsOnlyRe   = regexp.MustCompile(`^[\.\s]+$`)
)

// CleanAnswer strips the role labels a completion model tends to echo
// back (a hallucinated following user turn, assistant cues) and keeps
// only the first paragraph.
func CleanAnswer(text string) string {
	if text == "" {
		return ""
	}
	text = userEchoRe.ReplaceAllString(text, "")
	text = assistantRe.ReplaceAllString(text, "")
	firstBlock := strings.SplitN(text, "\n\n", 2)[0]
	return strings.TrimSpace(firstBlock)
}

// Clean is the full cleanup applied to a raw completion answer:
// paragraph truncation and label stripping first, then normalization
// with the apology fallback for degenerate results.
func Clean(text string) string {
	return SimpleClean(CleanAnswer(text))
}

// SimpleClean normalizes a raw answer for speaking: leading service
// labels removed, whitespace collapsed. Degenerate results (empty,
// punctuation-only, shorter than 3 characters) become the fixed
// apology, which is a terminal "I don't know" state rather than an error.
func SimpleClean(text string) string {
	if text == "" {
		return FallbackApology
	}

	t := strings.TrimSpace(text)
	t = leadLabelRe.ReplaceAllString(t, "")
	t = whitespaceRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)

	if t == "" || dotsOnlyRe.MatchString(t) || len([]rune(t)) < 3 {
		return FallbackApology
	}
	return t
}
