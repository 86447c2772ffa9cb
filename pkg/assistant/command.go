package assistant

import (
	"regexp"
	"strings"
)

// commandRe matches one marker-delimited command block. The lazy body
// match keeps adjacent blocks separated.
var commandRe = regexp.MustCompile(`(?s)\[COMMAND\](.*?)\[/COMMAND\]`)

// ExtractCommands scans for all non-overlapping command blocks and
// returns the text with the blocks removed plus the trimmed command
// bodies in order of appearance.
func ExtractCommands(text string) (string, []string) {
	matches := commandRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	commands := make([]string, 0, len(matches))
	for _, m := range matches {
		commands = append(commands, strings.TrimSpace(m[1]))
	}

	stripped := commandRe.ReplaceAllString(text, "")
	return stripped, commands
}

// Wake-word pattern table for the local fast path. The variants cover
// the transcription misspellings the speech backend produces for the
// assistant's name, each followed by an imperative verb; the last two
// fire without a wake word. Kept as a flat table: matching is a pure
// lookup, no model round trip.
var localCommandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^еле[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ере[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^не ери[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^не ере[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^гере[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^пере[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ге рин[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^герин[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^и рехон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^иерихон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ирихон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^и\s*рихон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^иери[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ери[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ери\s*хон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ере\s*хон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ере\s*хан[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ири[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ири\s*хон[, ]*\s*(сделай|отправь|напиши)`),
	regexp.MustCompile(`^ири\s*хан[, ]*\s*(сделай|отправь|напиши)`),

	regexp.MustCompile(`^напиши\s+сообщение\s+в\s+телеграм[, ]*`),
	regexp.MustCompile(`^отправ(ь|и)\s+сообщение\s+в\s+телеграм[, ]*`),
}

// DetectLocalCommand checks the utterance against the wake-word table.
// On match the remainder of the utterance is returned as the command
// body; an empty remainder is treated as no match. This shortcut
// bypasses the completion round trip for the highest-frequency command.
func DetectLocalCommand(userText string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(userText))

	for _, p := range localCommandPatterns {
		if p.MatchString(text) {
			body := strings.TrimSpace(p.ReplaceAllString(text, ""))
			if body != "" {
				return body, true
			}
		}
	}

	return "", false
}
