package telegramsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/orgstruct/bff/pkg/config"
	"github.com/orgstruct/bff/pkg/logx"
	"github.com/orgstruct/bff/pkg/telegram"
)

const (
	agreementText = "Перед началом работы подтвердите согласие с условиями использования."
	agreementAck  = "Спасибо! Согласие принято."
	openAppText   = "Откройте приложение:"
)

// BotService delivers outgoing messages and processes webhook updates
type BotService struct {
	api telegram.BotAPI
	cfg *config.TelegramConfig
}

func NewBotService(api telegram.BotAPI, cfg *config.TelegramConfig) *BotService {
	return &BotService{
		api: api,
		cfg: cfg,
	}
}

// SendMessage delivers text to a chat, splitting it into Bot API sized
// chunks. An empty ChatID falls back to the configured default chat.
func (s *BotService) SendMessage(ctx context.Context, req telegram.SendMessageRequest) (telegram.SendResult, error) {
	chatID := req.ChatID
	if chatID == "" {
		chatID = s.cfg.DefaultChatID
	}
	if chatID == "" {
		return telegram.SendResult{}, telegram.ErrChatIDRequired()
	}
	if req.Text == "" {
		return telegram.SendResult{}, telegram.ErrTextRequired()
	}

	parts := telegram.SplitText(req.Text, telegram.MaxMessageLength)
	for i, part := range parts {
		params := map[string]string{
			"chat_id": chatID,
			"text":    part,
		}
		if req.ParseMode != "" {
			params["parse_mode"] = req.ParseMode
		}
		if req.ThreadID != 0 {
			params["message_thread_id"] = strconv.FormatInt(req.ThreadID, 10)
		}
		// only the last chunk carries the keyboard
		if req.ReplyMarkup != nil && i == len(parts)-1 {
			markup, err := json.Marshal(req.ReplyMarkup)
			if err != nil {
				return telegram.SendResult{Sent: i}, err
			}
			params["reply_markup"] = string(markup)
		}

		if _, err := s.api.Call(ctx, "sendMessage", params); err != nil {
			return telegram.SendResult{Sent: i}, err
		}
	}

	return telegram.SendResult{OK: true, Sent: len(parts)}, nil
}

// SendDocument delivers a document by URL
func (s *BotService) SendDocument(ctx context.Context, req telegram.SendDocumentRequest) (telegram.SendResult, error) {
	chatID := req.ChatID
	if chatID == "" {
		chatID = s.cfg.DefaultChatID
	}
	if chatID == "" {
		return telegram.SendResult{}, telegram.ErrChatIDRequired()
	}
	if req.FileURL == "" {
		return telegram.SendResult{}, telegram.ErrFileURLRequired()
	}

	params := map[string]string{
		"chat_id":  chatID,
		"document": req.FileURL,
	}
	if req.Caption != "" {
		params["caption"] = req.Caption
	}
	if req.ThreadID != 0 {
		params["message_thread_id"] = strconv.FormatInt(req.ThreadID, 10)
	}

	if _, err := s.api.Call(ctx, "sendDocument", params); err != nil {
		return telegram.SendResult{}, err
	}

	return telegram.SendResult{OK: true, Sent: 1}, nil
}

// HandleUpdate processes one webhook update. Processing errors are folded
// into the result body so Telegram never retries a handled update.
func (s *BotService) HandleUpdate(ctx context.Context, update telegram.Update) telegram.UpdateResult {
	var err error
	switch {
	case update.CallbackQuery != nil:
		err = s.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		err = s.handleMessage(ctx, update.Message)
	}
	if err != nil {
		logx.WithFields(logx.Fields{
			"update_id": update.UpdateID,
		}).Errorf("failed to process update: %v", err)
		return telegram.UpdateResult{OK: false, Error: err.Error()}
	}
	return telegram.UpdateResult{OK: true}
}

func (s *BotService) handleMessage(ctx context.Context, msg *telegram.Message) error {
	command := strings.TrimSpace(msg.Text)
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	switch command {
	case "/getchatid":
		_, err := s.SendMessage(ctx, telegram.SendMessageRequest{
			ChatID: chatID,
			Text:   fmt.Sprintf("Chat ID: %s", chatID),
		})
		return err
	case "/start":
		markup := &telegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]telegram.InlineKeyboardButton{{
				{Text: "Принимаю", CallbackData: "accept_agreement"},
			}},
		}
		_, err := s.SendMessage(ctx, telegram.SendMessageRequest{
			ChatID:      chatID,
			Text:        agreementText,
			ReplyMarkup: markup,
		})
		return err
	}

	return nil
}

func (s *BotService) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) error {
	if cb.Data != "accept_agreement" {
		return nil
	}

	if _, err := s.api.Call(ctx, "answerCallbackQuery", map[string]string{
		"callback_query_id": cb.ID,
		"text":              agreementAck,
	}); err != nil {
		return err
	}

	if cb.Message == nil {
		return nil
	}
	chatID := strconv.FormatInt(cb.Message.Chat.ID, 10)

	req := telegram.SendMessageRequest{
		ChatID: chatID,
		Text:   agreementAck,
	}
	if s.cfg.WebAppURL != "" {
		req.Text = openAppText
		req.ReplyMarkup = &telegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]telegram.InlineKeyboardButton{{
				{Text: "Открыть", WebApp: &telegram.WebAppInfo{URL: s.cfg.WebAppURL}},
			}},
		}
	}

	_, err := s.SendMessage(ctx, req)
	return err
}
