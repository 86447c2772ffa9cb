package speech

import (
	"context"
	"io"
)

//---------- Text-to-Speech (TTS) ----------//

// Speaker represents an interface for text-to-speech operations
type Speaker interface {
	// Synthesize converts text to speech audio
	Synthesize(ctx context.Context, text string, opts ...SynthesisOption) (Audio, error)
}

// Audio represents the generated speech audio
type Audio struct {
	// Content is the audio data
	Content []byte

	// Format indicates the audio format (MP3, WAV, etc.)
	Format AudioFormat
}

//---------- Speech-to-Text (STT) ----------//

// Transcriber represents an interface for speech-to-text operations
type Transcriber interface {
	// Transcribe converts speech audio to text
	Transcribe(ctx context.Context, audio io.Reader, opts ...TranscriptionOption) (Transcript, error)
}

// Transcript represents the result of a speech-to-text operation
type Transcript struct {
	// Text is the transcribed text
	Text string

	// LanguageCode is the detected language (if available)
	LanguageCode string
}

//---------- Common Types ----------//

// AudioFormat represents the format of speech audio
type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatOGG  AudioFormat = "ogg"
	AudioFormatWebM AudioFormat = "webm"
)

//---------- Clients ----------//

// TTSClient represents a configured text-to-speech client
type TTSClient struct {
	speaker Speaker
}

// NewTTSClient creates a new text-to-speech client
func NewTTSClient(speaker Speaker) *TTSClient {
	return &TTSClient{speaker: speaker}
}

// Synthesize converts text to speech audio
func (c *TTSClient) Synthesize(ctx context.Context, text string, opts ...SynthesisOption) (Audio, error) {
	return c.speaker.Synthesize(ctx, text, opts...)
}

// STTClient represents a configured speech-to-text client
type STTClient struct {
	transcriber Transcriber
}

// NewSTTClient creates a new speech-to-text client
func NewSTTClient(transcriber Transcriber) *STTClient {
	return &STTClient{transcriber: transcriber}
}

// Transcribe converts speech audio to text
func (c *STTClient) Transcribe(ctx context.Context, audio io.Reader, opts ...TranscriptionOption) (Transcript, error) {
	return c.transcriber.Transcribe(ctx, audio, opts...)
}
