package assistantinfra

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/errx"
)

// HTTPNotifier dispatches command text to the fixed notification
// endpoint, authenticated with a static shared-secret header.
type HTTPNotifier struct {
	url        string
	authKey    string
	chatID     string
	httpClient *http.Client
}

func NewHTTPNotifier(url, authKey, chatID string) assistant.Notifier {
	return &HTTPNotifier{
		url:     url,
		authKey: authKey,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type notifyRequest struct {
	ChatID    string `json:"chatId"`
	ParseMode string `json:"parseMode"`
	Text      string `json:"text"`
}

func (n *HTTPNotifier) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(notifyRequest{
		ChatID:    n.chatID,
		ParseMode: "HTML",
		Text:      text,
	})
	if err != nil {
		return errx.Wrap(err, "failed to encode notification", errx.TypeInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errx.Wrap(err, "failed to build notification request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth", n.authKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errx.Wrap(err, "notification request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errx.New("notification endpoint returned non-200", errx.TypeExternal).
			WithDetail("status", resp.StatusCode)
	}

	return nil
}
