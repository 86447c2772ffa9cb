package assistant

import (
	"context"
	"strings"

	"github.com/orgstruct/bff/pkg/ai/llm"
	"github.com/orgstruct/bff/pkg/logx"
)

// ============================================================================
// Rule Validator
// ============================================================================

// ruleStopwords are policy phrasing words carrying no topic content
var ruleStopwords = map[string]struct{}{
	"never": {}, "don't": {}, "dont": {}, "discuss": {}, "mention": {},
	"about": {}, "the": {}, "any": {}, "talk": {},
	"не": {}, "нельзя": {}, "никогда": {}, "обсуждать": {}, "говорить": {},
	"упоминать": {}, "про": {}, "тему": {},
}

// ruleViolated applies the keyword heuristic of a single free-text rule:
// the rule's topic tokens (policy phrasing words filtered out) matched
// as case-insensitive substrings of the answer.
func ruleViolated(rule, answer string) bool {
	loweredAnswer := strings.ToLower(answer)
	for _, token := range strings.Fields(strings.ToLower(rule)) {
		token = strings.Trim(token, ".,;:!?\"'()")
		if token == "" {
			continue
		}
		if _, skip := ruleStopwords[token]; skip {
			continue
		}
		if len([]rune(token)) < 4 {
			continue
		}
		if strings.Contains(loweredAnswer, token) {
			return true
		}
	}
	return false
}

// ApplyRules evaluates every rule against the answer; any violation
// replaces the whole answer with the fixed refusal. All rules are
// checked — a later rule cannot undo an earlier rejection.
func ApplyRules(rules []Rule, answer string) string {
	violated := false
	for _, r := range rules {
		if ruleViolated(r.Value, answer) {
			violated = true
		}
	}
	if violated {
		return RefusalReply
	}
	return answer
}

// ============================================================================
// Action Validator
// ============================================================================

// ActionValidator gates command blocks through the completion backend.
// Every sub-call is non-fatal: a failed or malformed completion degrades
// to the prior-stage text instead of aborting the pipeline.
type ActionValidator struct {
	llm *llm.Client
}

func NewActionValidator(client *llm.Client) *ActionValidator {
	return &ActionValidator{llm: client}
}

// complete runs one sub-call and reports whether it produced an answer.
// Transport errors are logged and reported as misses, never propagated.
func (v *ActionValidator) complete(ctx context.Context, prompt string) (string, bool) {
	resp, err := v.llm.Complete(ctx, prompt)
	if err != nil {
		logx.Errorf("[assistant] validation sub-call failed: %v", err)
		return "", false
	}
	if resp.Answer == "" {
		return "", false
	}
	return resp.Answer, true
}

// ValidateAnswer asks the model to correct grammar and strip irrelevant
// content while keeping block structure intact. Falls back to the input
// on any sub-call failure.
func (v *ActionValidator) ValidateAnswer(ctx context.Context, userText, cleanAnswer string) string {
	prompt := strings.Join([]string{
		"Check the assistant's answer for correctness.",
		"Rules:",
		"- The answer must be grammatically correct and logical.",
		"- The answer must not contain irrelevant information.",
		"- If the answer is fine, return it unchanged.",
		"- If irrelevant, return corrected version.",
		"- If the answer contains [ANSWER] and/or [COMMAND], keep them. " +
			"You may rewrite inside [ANSWER], but block structure must remain.",
		"",
		"User question: " + userText,
		"Assistant answer: " + cleanAnswer,
		"",
		"Validated answer:",
	}, "\n")

	if answer, ok := v.complete(ctx, prompt); ok {
		return CleanAnswer(answer)
	}
	return cleanAnswer
}

// ValidateCommand runs the two-stage command gate:
//
//  1. An intent probe over the user text alone decides whether an action
//     was explicitly requested.
//  2. If not, one completion strips command blocks from the candidate
//     answer (fallback: candidate unchanged).
//  3. If yes, two independently grounded extractions (with and without
//     the candidate answer as context) are merged by a third completion
//     into a single canonical command block appended to the candidate.
//
// A single-pass extraction is unreliable; the double extraction plus
// merge reduces the chance either path's phrasing corrupts the action.
func (v *ActionValidator) ValidateCommand(ctx context.Context, userText, validated string) string {
	detectPrompt := strings.Join([]string{
		"You are an action detector.",
		"Decide if the user explicitly asked to perform an action.",
		"Examples of actions: send, create, turn on, remind, call, open, play.",
		"Answer only YES or NO.",
		"",
		"User question: " + userText,
		"",
		"Answer:",
	}, "\n")

	detectAnswer, ok := v.complete(ctx, detectPrompt)
	isAction := ok && strings.Contains(strings.ToLower(detectAnswer), "yes")

	if !isAction {
		stripPrompt := strings.Join([]string{
			"Remove all [COMMAND] blocks from the assistant answer.",
			"Do not touch [ANSWER].",
			"",
			"Assistant answer: " + validated,
			"",
			"Clean answer:",
		}, "\n")

		if answer, ok := v.complete(ctx, stripPrompt); ok {
			return CleanAnswer(answer)
		}
		return validated
	}

	withContextPrompt := strings.Join([]string{
		"Extract the intended [COMMAND] block based on the user request and assistant answer.",
		"",
		"User question: " + userText,
		"Assistant answer: " + validated,
		"",
		"Output only one corrected [COMMAND] block.",
	}, "\n")
	withContextAnswer, _ := v.complete(ctx, withContextPrompt)
	commandWithContext := CleanAnswer(withContextAnswer)

	fromUserPrompt := strings.Join([]string{
		"Extract the intended [COMMAND] block only from the user question, ignoring the assistant answer.",
		"",
		"User question: " + userText,
		"",
		"Output only one [COMMAND] block.",
	}, "\n")
	fromUserAnswer, _ := v.complete(ctx, fromUserPrompt)
	commandFromUser := CleanAnswer(fromUserAnswer)

	mergePrompt := strings.Join([]string{
		"You are a command merger.",
		"Task: combine the two extracted [COMMAND] blocks into the final correct one.",
		"Rules:",
		"- If they differ, choose the one that matches user intent best.",
		"- Keep only ONE [COMMAND] block.",
		"",
		"Option A (with context): " + commandWithContext,
		"Option B (from user): " + commandFromUser,
		"",
		"Final [COMMAND]:",
	}, "\n")
	mergeAnswer, _ := v.complete(ctx, mergePrompt)
	finalCommand := CleanAnswer(mergeAnswer)

	return validated + "\n" + finalCommand
}
