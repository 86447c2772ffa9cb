package pythonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/orgstruct/bff/pkg/ai/llm"
	"github.com/orgstruct/bff/pkg/ai/speech"
	"github.com/orgstruct/bff/pkg/errx"
)

// Provider is an HTTP adapter for the Python inference service. It
// implements llm.Completer, speech.Transcriber and speech.Speaker
// against three endpoints: /ask_text, /speech_to_text, /text_to_speech.
// There is no retry policy: a non-200 response or a missing field is
// returned as a typed external error.
type Provider struct {
	baseURL    string
	httpClient *http.Client
}

// NewProvider creates a provider for the given base URL
func NewProvider(baseURL string, timeout time.Duration) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

//---------- Completion ----------//

type askTextRequest struct {
	Text string `json:"text"`
}

type askTextResponse struct {
	Answer string `json:"answer"`
}

// Complete implements llm.Completer via POST /ask_text
func (p *Provider) Complete(ctx context.Context, prompt string, opts ...llm.Option) (llm.Completion, error) {
	body, err := json.Marshal(askTextRequest{Text: prompt})
	if err != nil {
		return llm.Completion{}, errx.Wrap(err, "failed to encode completion request", errx.TypeInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/ask_text", bytes.NewReader(body))
	if err != nil {
		return llm.Completion{}, errx.Wrap(err, "failed to build completion request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return llm.Completion{}, errx.Wrap(err, "completion request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return llm.Completion{}, errx.New("completion backend returned non-200", errx.TypeExternal).
			WithDetail("status", resp.StatusCode)
	}

	var out askTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return llm.Completion{}, errx.Wrap(err, "failed to decode completion response", errx.TypeExternal)
	}
	if out.Answer == "" {
		return llm.Completion{}, errx.New("completion response missing answer", errx.TypeExternal)
	}

	return llm.Completion{Answer: out.Answer}, nil
}

//---------- Speech-to-Text ----------//

type speechToTextResponse struct {
	Text string `json:"text"`
}

// Transcribe implements speech.Transcriber via POST /speech_to_text
func (p *Provider) Transcribe(ctx context.Context, audio io.Reader, opts ...speech.TranscriptionOption) (speech.Transcript, error) {
	options := &speech.TranscriptionOptions{
		Filename:    "voice.webm",
		ContentType: "audio/webm",
	}
	for _, opt := range opts {
		opt(options)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+options.Filename+`"`)
	header.Set("Content-Type", options.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return speech.Transcript{}, errx.Wrap(err, "failed to build multipart body", errx.TypeInternal)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return speech.Transcript{}, errx.Wrap(err, "failed to copy audio payload", errx.TypeInternal)
	}
	if err := writer.Close(); err != nil {
		return speech.Transcript{}, errx.Wrap(err, "failed to finalize multipart body", errx.TypeInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/speech_to_text", &buf)
	if err != nil {
		return speech.Transcript{}, errx.Wrap(err, "failed to build transcription request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return speech.Transcript{}, errx.Wrap(err, "transcription request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return speech.Transcript{}, errx.New("speech-to-text backend returned non-200", errx.TypeExternal).
			WithDetail("status", resp.StatusCode)
	}

	var out speechToTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return speech.Transcript{}, errx.Wrap(err, "failed to decode transcription response", errx.TypeExternal)
	}
	if out.Text == "" {
		return speech.Transcript{}, errx.New("transcription response missing text", errx.TypeExternal)
	}

	return speech.Transcript{Text: out.Text}, nil
}

//---------- Text-to-Speech ----------//

// Synthesize implements speech.Speaker via POST /text_to_speech
func (p *Provider) Synthesize(ctx context.Context, text string, opts ...speech.SynthesisOption) (speech.Audio, error) {
	form := url.Values{}
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/text_to_speech", strings.NewReader(form.Encode()))
	if err != nil {
		return speech.Audio{}, errx.Wrap(err, "failed to build synthesis request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return speech.Audio{}, errx.Wrap(err, "synthesis request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return speech.Audio{}, errx.New("text-to-speech backend returned non-200", errx.TypeExternal).
			WithDetail("status", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return speech.Audio{}, errx.Wrap(err, "failed to read synthesized audio", errx.TypeExternal)
	}

	return speech.Audio{
		Content: content,
		Format:  speech.AudioFormatWAV,
	}, nil
}

var (
	_ llm.Completer      = (*Provider)(nil)
	_ speech.Transcriber = (*Provider)(nil)
	_ speech.Speaker     = (*Provider)(nil)
)
