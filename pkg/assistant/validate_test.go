package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgstruct/bff/pkg/ai/llm"
)

// ============================================================================
// Rule Validator
// ============================================================================

func TestApplyRules(t *testing.T) {
	rules := []Rule{
		{Value: "Никогда не обсуждать зарплаты"},
		{Value: "never discuss politics"},
	}

	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"clean answer passes", "Сегодня хорошая погода.", "Сегодня хорошая погода."},
		{"topic word triggers refusal", "Твои зарплаты выросли.", RefusalReply},
		{"english topic triggers refusal", "Let's talk politics today.", RefusalReply},
		{"case insensitive", "ПОЛИТИКА — сложная тема. politics везде.", RefusalReply},
		{"stopwords alone never trigger", "не говорить про это нельзя", "не говорить про это нельзя"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyRules(rules, tt.answer))
		})
	}
}

func TestApplyRulesNoRules(t *testing.T) {
	assert.Equal(t, "ответ", ApplyRules(nil, "ответ"))
}

func TestRuleViolatedShortTokensIgnored(t *testing.T) {
	// tokens shorter than 4 runes carry no topic signal
	assert.False(t, ruleViolated("не говори да", "да да да"))
}

// ============================================================================
// Action Validator
// ============================================================================

// routeCompleter answers by matching markers in the prompt text
type routeCompleter struct {
	calls  []string
	routes map[string]string
	err    error
}

func (f *routeCompleter) Complete(_ context.Context, prompt string, _ ...llm.Option) (llm.Completion, error) {
	f.calls = append(f.calls, prompt)
	if f.err != nil {
		return llm.Completion{}, f.err
	}
	for marker, answer := range f.routes {
		if strings.Contains(prompt, marker) {
			return llm.Completion{Answer: answer}, nil
		}
	}
	return llm.Completion{}, nil
}

func newValidator(c *routeCompleter) *ActionValidator {
	return NewActionValidator(llm.NewClient(c))
}

func TestValidateAnswerUsesModelOutput(t *testing.T) {
	fake := &routeCompleter{routes: map[string]string{
		"Check the assistant's answer": "Исправленный ответ.",
	}}

	got := newValidator(fake).ValidateAnswer(context.Background(), "вопрос", "кривой ответ")

	assert.Equal(t, "Исправленный ответ.", got)
	assert.Len(t, fake.calls, 1)
}

func TestValidateAnswerFallsBackOnError(t *testing.T) {
	fake := &routeCompleter{err: errors.New("backend down")}

	got := newValidator(fake).ValidateAnswer(context.Background(), "вопрос", "исходный ответ")

	assert.Equal(t, "исходный ответ", got)
}

func TestValidateAnswerFallsBackOnEmpty(t *testing.T) {
	fake := &routeCompleter{routes: map[string]string{}}

	got := newValidator(fake).ValidateAnswer(context.Background(), "вопрос", "исходный ответ")

	assert.Equal(t, "исходный ответ", got)
}

func TestValidateCommandNoActionStripsBlocks(t *testing.T) {
	fake := &routeCompleter{routes: map[string]string{
		"action detector":      "NO",
		"Remove all [COMMAND]": "Чистый ответ.",
	}}

	got := newValidator(fake).ValidateCommand(context.Background(), "какая погода?", "Чистый ответ. [COMMAND]x[/COMMAND]")

	assert.Equal(t, "Чистый ответ.", got)
	assert.Len(t, fake.calls, 2)
}

func TestValidateCommandNoActionStripFailureKeepsInput(t *testing.T) {
	fake := &routeCompleter{routes: map[string]string{
		"action detector": "NO",
	}}

	in := "Ответ как есть."
	got := newValidator(fake).ValidateCommand(context.Background(), "вопрос", in)

	assert.Equal(t, in, got)
}

func TestValidateCommandDetectorFailureMeansNoAction(t *testing.T) {
	fake := &routeCompleter{err: errors.New("backend down")}

	in := "Ответ как есть."
	got := newValidator(fake).ValidateCommand(context.Background(), "отправь сообщение", in)

	// both the probe and the strip call failed: input survives untouched
	assert.Equal(t, in, got)
	assert.Len(t, fake.calls, 2)
}

func TestValidateCommandActionMergesExtractions(t *testing.T) {
	fake := &routeCompleter{routes: map[string]string{
		"action detector":           "YES",
		"based on the user request": "[COMMAND]TG_MESSAGE: вариант А[/COMMAND]",
		"ignoring the assistant":    "[COMMAND]TG_MESSAGE: вариант Б[/COMMAND]",
		"command merger":            "[COMMAND]TG_MESSAGE: финальный[/COMMAND]",
	}}

	got := newValidator(fake).ValidateCommand(context.Background(), "отправь сообщение", "Хорошо.")

	assert.Equal(t, "Хорошо.\n[COMMAND]TG_MESSAGE: финальный[/COMMAND]", got)
	// probe + two extractions + merge
	assert.Len(t, fake.calls, 4)
}
