package assistantapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/assistant/assistantsrv"
)

type VoiceHandlers struct {
	service *assistantsrv.VoiceService
}

func NewVoiceHandlers(service *assistantsrv.VoiceService) *VoiceHandlers {
	return &VoiceHandlers{service: service}
}

func (h *VoiceHandlers) RegisterRoutes(router fiber.Router) {
	voice := router.Group("/voice")

	voice.Post("/ask", h.AskVoice)
}

// AskVoice accepts a multipart audio upload and returns the synthesized
// reply as raw audio bytes. A command-only answer returns 204.
func (h *VoiceHandlers) AskVoice(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return assistant.ErrNoAudioFile()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return assistant.ErrNoAudioFile().WithDetail("reason", err.Error())
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return assistant.ErrNoAudioFile().WithDetail("reason", err.Error())
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/webm"
	}

	out, err := h.service.AskVoice(c.Context(), audio, fileHeader.Filename, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set("Content-Type", "audio/wav")
	return c.Send(out)
}
