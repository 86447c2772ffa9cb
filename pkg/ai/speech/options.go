package speech

//---------- Text-to-Speech Options ----------//

// SynthesisOption represents a configuration option for text-to-speech operations
type SynthesisOption func(*SynthesisOptions)

// SynthesisOptions contains all configurable parameters for text-to-speech operations
type SynthesisOptions struct {
	Voice       string
	Model       string
	AudioFormat AudioFormat
}

// WithVoice sets the voice to use
func WithVoice(voice string) SynthesisOption {
	return func(o *SynthesisOptions) {
		o.Voice = voice
	}
}

// WithTTSModel sets the TTS model to use
func WithTTSModel(model string) SynthesisOption {
	return func(o *SynthesisOptions) {
		o.Model = model
	}
}

// WithOutputFormat sets the audio output format
func WithOutputFormat(format AudioFormat) SynthesisOption {
	return func(o *SynthesisOptions) {
		o.AudioFormat = format
	}
}

//---------- Speech-to-Text Options ----------//

// TranscriptionOption represents a configuration option for speech-to-text operations
type TranscriptionOption func(*TranscriptionOptions)

// TranscriptionOptions contains all configurable parameters for speech-to-text operations
type TranscriptionOptions struct {
	Model       string
	Language    string
	Filename    string
	ContentType string
}

// WithSTTModel sets the STT model to use
func WithSTTModel(model string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Model = model
	}
}

// WithLanguage sets the expected language of the audio
func WithLanguage(language string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Language = language
	}
}

// WithFilename sets the upload filename forwarded to the backend
func WithFilename(name string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Filename = name
	}
}

// WithContentType sets the MIME type of the input audio
func WithContentType(contentType string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.ContentType = contentType
	}
}
