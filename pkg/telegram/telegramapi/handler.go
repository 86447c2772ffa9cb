package telegramapi

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/orgstruct/bff/pkg/config"
	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/telegram"
	"github.com/orgstruct/bff/pkg/telegram/telegramsrv"
)

// BotHandlers exposes the Telegram endpoints
type BotHandlers struct {
	service *telegramsrv.BotService
	cfg     *config.AssistantConfig
}

func NewBotHandlers(service *telegramsrv.BotService, cfg *config.AssistantConfig) *BotHandlers {
	return &BotHandlers{
		service: service,
		cfg:     cfg,
	}
}

func (h *BotHandlers) RegisterRoutes(router fiber.Router) {
	tg := router.Group("/telegram")

	tg.Post("/send-message", h.SendMessage)
	tg.Post("/send-document", h.SendDocument)
	tg.Post("/webhook", h.Webhook)
	tg.Post("/notify", h.Notify)
}

func (h *BotHandlers) SendMessage(c *fiber.Ctx) error {
	var req telegram.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	result, err := h.service.SendMessage(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *BotHandlers) SendDocument(c *fiber.Ctx) error {
	var req telegram.SendDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	result, err := h.service.SendDocument(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Webhook accepts Bot API updates. It always answers 200 with a status
// body; Telegram retries on non-2xx and we never want duplicate updates.
func (h *BotHandlers) Webhook(c *fiber.Ctx) error {
	var update telegram.Update
	if err := c.BodyParser(&update); err != nil {
		return c.JSON(telegram.UpdateResult{OK: false, Error: "invalid update payload"})
	}

	return c.JSON(h.service.HandleUpdate(c.Context(), update))
}

// Notify is the shared-secret entry used by the voice pipeline to relay
// extracted commands. The x-auth header must match the configured key.
func (h *BotHandlers) Notify(c *fiber.Ctx) error {
	key := c.Get("x-auth")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.NotifyAuthKey)) != 1 {
		return telegram.ErrUnauthorized()
	}

	var req telegram.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	result, err := h.service.SendMessage(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
