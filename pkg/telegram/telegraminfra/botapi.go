package telegraminfra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/telegram"
)

// HTTPBotAPI talks to the Telegram Bot API over form-encoded POSTs
type HTTPBotAPI struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPBotAPI(baseURL, token string) *HTTPBotAPI {
	return &HTTPBotAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiEnvelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (a *HTTPBotAPI) Call(ctx context.Context, method string, params map[string]string) (json.RawMessage, error) {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", a.baseURL, a.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errx.Wrap(err, "failed to create Telegram API request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errx.Wrap(err, "Telegram API request failed", errx.TypeExternal).
			WithDetail("method", method)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read Telegram API response", errx.TypeExternal)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errx.Wrap(err, "failed to decode Telegram API response", errx.TypeExternal).
			WithDetail("method", method).
			WithDetail("status", resp.StatusCode)
	}
	if !envelope.OK {
		return nil, telegram.ErrAPICallFailed().
			WithDetail("method", method).
			WithDetail("description", envelope.Description)
	}

	return envelope.Result, nil
}

var _ telegram.BotAPI = (*HTTPBotAPI)(nil)
