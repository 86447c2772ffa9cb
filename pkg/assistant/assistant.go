package assistant

import (
	"net/http"
	"time"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/kernel"
)

// ============================================================================
// Conversation Entities
// ============================================================================

// Role tags one side of the dialogue
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged utterance in the conversation log. Turns are
// immutable once created; ordering is by creation time.
type Turn struct {
	ID        kernel.DocumentID `db:"id" json:"id"`
	Role      Role              `db:"role" json:"role"`
	Text      string            `db:"text" json:"text"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}

// Instruction is a static prompt fragment loaded from storage. The set
// is flat and re-read on every request, never cached.
type Instruction struct {
	ID    kernel.DocumentID `db:"id" json:"id"`
	Value string            `db:"value" json:"value"`
}

// Rule is a free-text answer policy (e.g. a forbidden topic). Rules are
// independent and unordered.
type Rule struct {
	ID    kernel.DocumentID `db:"id" json:"id"`
	Value string            `db:"value" json:"value"`
}

// ============================================================================
// Fixed Replies & Markers
// ============================================================================

const (
	// FallbackApology replaces answers that come back empty or degenerate
	FallbackApology = "Извини, я не могу ответить на это."

	// RefusalReply replaces answers that violate a policy rule
	RefusalReply = "Извини, я не могу говорить на эту тему."

	// CommandAck is spoken when a fast-path command was dispatched
	CommandAck = "Уже делаю"

	CommandOpen  = "[COMMAND]"
	CommandClose = "[/COMMAND]"

	// TelegramCommandPrefix tags a command body as a Telegram dispatch
	TelegramCommandPrefix = "TG_MESSAGE:"
)

// WrapCommand re-wraps a command body in its markers, the form in which
// executed commands are persisted to memory.
func WrapCommand(body string) string {
	return CommandOpen + body + CommandClose
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("VOICE")

var (
	CodeNoAudioFile        = ErrRegistry.Register("NO_AUDIO_FILE", errx.TypeValidation, http.StatusBadRequest, "No file provided")
	CodeTranscriptionFail  = ErrRegistry.Register("TRANSCRIPTION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Speech-to-text failed")
	CodeCompletionFail     = ErrRegistry.Register("COMPLETION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Completion backend failed")
	CodeSynthesisFail      = ErrRegistry.Register("SYNTHESIS_FAILED", errx.TypeExternal, http.StatusBadGateway, "Text-to-speech failed")
	CodeDispatchFail       = ErrRegistry.Register("DISPATCH_FAILED", errx.TypeExternal, http.StatusBadGateway, "Command dispatch failed")
	CodeMemoryStoreFailure = ErrRegistry.Register("MEMORY_STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Conversation memory store failure")
)

func ErrNoAudioFile() *errx.Error {
	return ErrRegistry.New(CodeNoAudioFile)
}

func ErrTranscriptionFailed() *errx.Error {
	return ErrRegistry.New(CodeTranscriptionFail)
}

func ErrCompletionFailed() *errx.Error {
	return ErrRegistry.New(CodeCompletionFail)
}

func ErrSynthesisFailed() *errx.Error {
	return ErrRegistry.New(CodeSynthesisFail)
}

func ErrDispatchFailed() *errx.Error {
	return ErrRegistry.New(CodeDispatchFail)
}

func ErrMemoryStoreFailure() *errx.Error {
	return ErrRegistry.New(CodeMemoryStoreFailure)
}
