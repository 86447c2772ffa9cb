package telegram

import (
	"net/http"

	"github.com/orgstruct/bff/pkg/errx"
)

// MaxMessageLength is the Bot API's hard limit for one message
const MaxMessageLength = 4096

// SplitText chunks text into size-bounded parts. Empty input still
// yields one (empty) part so callers always send something addressable.
func SplitText(text string, size int) []string {
	if text == "" {
		return []string{""}
	}
	runes := []rune(text)
	parts := make([]string, 0, len(runes)/size+1)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[i:end]))
	}
	return parts
}

// ============================================================================
// Bot API types (only the fields this service consumes)
// ============================================================================

type Chat struct {
	ID int64 `json:"id"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

// Update is one incoming webhook event
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

type WebAppInfo struct {
	URL string `json:"url"`
}

type InlineKeyboardButton struct {
	Text         string      `json:"text"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *WebAppInfo `json:"web_app,omitempty"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// ============================================================================
// Requests & Results
// ============================================================================

type SendMessageRequest struct {
	ChatID      string                `json:"chatId"`
	Text        string                `json:"text"`
	ParseMode   string                `json:"parseMode,omitempty"`
	ThreadID    int64                 `json:"threadId,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"replyMarkup,omitempty"`
}

type SendDocumentRequest struct {
	ChatID   string `json:"chatId"`
	FileURL  string `json:"fileUrl"`
	Caption  string `json:"caption,omitempty"`
	ThreadID int64  `json:"threadId,omitempty"`
}

// SendResult reports how many chunks were delivered
type SendResult struct {
	OK   bool `json:"ok"`
	Sent int  `json:"sent"`
}

// UpdateResult is the webhook acknowledgement; processing errors are
// reported inside the body, never as a failed webhook response.
type UpdateResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("TG")

var (
	CodeChatIDRequired  = ErrRegistry.Register("CHAT_ID_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "chatId required")
	CodeTextRequired    = ErrRegistry.Register("TEXT_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "text required")
	CodeFileURLRequired = ErrRegistry.Register("FILE_URL_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "fileUrl required")
	CodeAPICallFailed   = ErrRegistry.Register("API_CALL_FAILED", errx.TypeExternal, http.StatusBadGateway, "Telegram API call failed")
	CodeUnauthorized    = ErrRegistry.Register("UNAUTHORIZED", errx.TypeAuthorization, http.StatusForbidden, "Invalid auth key")
)

func ErrChatIDRequired() *errx.Error {
	return ErrRegistry.New(CodeChatIDRequired)
}

func ErrTextRequired() *errx.Error {
	return ErrRegistry.New(CodeTextRequired)
}

func ErrFileURLRequired() *errx.Error {
	return ErrRegistry.New(CodeFileURLRequired)
}

func ErrAPICallFailed() *errx.Error {
	return ErrRegistry.New(CodeAPICallFailed)
}

func ErrUnauthorized() *errx.Error {
	return ErrRegistry.New(CodeUnauthorized)
}
