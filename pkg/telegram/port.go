package telegram

import (
	"context"
	"encoding/json"
)

// BotAPI abstracts the raw Bot API transport. Method is the bare API
// method name (sendMessage, answerCallbackQuery, ...), params the
// form fields. The raw result payload is returned on success.
type BotAPI interface {
	Call(ctx context.Context, method string, params map[string]string) (json.RawMessage, error)
}
