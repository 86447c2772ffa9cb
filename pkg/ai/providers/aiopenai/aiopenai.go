package aiopenai

import (
	"context"
	"io"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/orgstruct/bff/pkg/ai/llm"
	"github.com/orgstruct/bff/pkg/ai/speech"
	"github.com/orgstruct/bff/pkg/errx"
)

// OpenAIProvider implements the Completer, Transcriber and Speaker
// interfaces backed by the OpenAI API. It is the alternate inference
// backend selectable through ASSISTANT_PROVIDER.
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string, opts ...option.RequestOption) *OpenAIProvider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(options...)

	return &OpenAIProvider{
		client: client,
	}
}

func defaultCompleteOptions() *llm.CompleteOptions {
	options := llm.DefaultOptions()
	options.Model = "gpt-4o-mini"
	return options
}

// Complete implements llm.Completer. The single-shot prompt is sent as
// one user message; the first choice's content is the answer.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, opts ...llm.Option) (llm.Completion, error) {
	options := defaultCompleteOptions()
	for _, opt := range opts {
		opt(options)
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: options.Model,
	}

	if options.Temperature != 0 {
		params.Temperature = openai.Float(float64(options.Temperature))
	}
	if options.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(options.MaxTokens))
	}
	if len(options.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: options.Stop,
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return llm.Completion{}, errx.Wrap(err, "openai completion failed", errx.TypeExternal)
	}
	if len(completion.Choices) == 0 {
		return llm.Completion{}, errx.New("openai completion returned no choices", errx.TypeExternal)
	}

	return llm.Completion{
		Answer: completion.Choices[0].Message.Content,
		Usage: llm.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Transcribe implements speech.Transcriber via the Whisper endpoint
func (p *OpenAIProvider) Transcribe(ctx context.Context, audio io.Reader, opts ...speech.TranscriptionOption) (speech.Transcript, error) {
	options := &speech.TranscriptionOptions{
		Model: "whisper-1",
	}
	for _, opt := range opts {
		opt(options)
	}

	params := openai.AudioTranscriptionNewParams{
		File:  audio,
		Model: openai.AudioModel(options.Model),
	}
	if options.Language != "" {
		params.Language = openai.String(options.Language)
	}

	transcription, err := p.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return speech.Transcript{}, errx.Wrap(err, "openai transcription failed", errx.TypeExternal)
	}

	return speech.Transcript{
		Text:         transcription.Text,
		LanguageCode: options.Language,
	}, nil
}

// Synthesize implements speech.Speaker via the TTS endpoint
func (p *OpenAIProvider) Synthesize(ctx context.Context, text string, opts ...speech.SynthesisOption) (speech.Audio, error) {
	options := &speech.SynthesisOptions{
		Voice:       "alloy",
		Model:       "tts-1",
		AudioFormat: speech.AudioFormatWAV,
	}
	for _, opt := range opts {
		opt(options)
	}

	params := openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(options.Model),
		Voice:          openai.AudioSpeechNewParamsVoice(options.Voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(options.AudioFormat),
	}

	resp, err := p.client.Audio.Speech.New(ctx, params)
	if err != nil {
		return speech.Audio{}, errx.Wrap(err, "openai speech synthesis failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return speech.Audio{}, errx.Wrap(err, "failed to read synthesized audio", errx.TypeExternal)
	}

	return speech.Audio{
		Content: content,
		Format:  options.AudioFormat,
	}, nil
}

var (
	_ llm.Completer      = (*OpenAIProvider)(nil)
	_ speech.Transcriber = (*OpenAIProvider)(nil)
	_ speech.Speaker     = (*OpenAIProvider)(nil)
)
