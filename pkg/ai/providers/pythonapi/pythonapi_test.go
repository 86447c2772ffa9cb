package pythonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgstruct/bff/pkg/ai/speech"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProvider(srv.URL, 5*time.Second)
}

func TestComplete(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask_text", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "кто ты?", body["text"])

		json.NewEncoder(w).Encode(map[string]string{"answer": "Я ассистент."})
	})

	resp, err := provider.Complete(context.Background(), "кто ты?")
	require.NoError(t, err)
	assert.Equal(t, "Я ассистент.", resp.Answer)
}

func TestCompleteNon200(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := provider.Complete(context.Background(), "вопрос")
	assert.Error(t, err)
}

func TestCompleteMissingAnswer(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := provider.Complete(context.Background(), "вопрос")
	assert.Error(t, err)
}

func TestTranscribe(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/speech_to_text", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "note.ogg", header.Filename)
		assert.Equal(t, "audio/ogg", header.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]string{"text": "привет мир"})
	})

	transcript, err := provider.Transcribe(context.Background(), bytes.NewReader([]byte("fake-audio")),
		speech.WithFilename("note.ogg"),
		speech.WithContentType("audio/ogg"),
	)
	require.NoError(t, err)
	assert.Equal(t, "привет мир", transcript.Text)
}

func TestTranscribeMissingText(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := provider.Transcribe(context.Background(), bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}

func TestSynthesize(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text_to_speech", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "привет", r.PostFormValue("text"))

		w.Write([]byte("wav-bytes"))
	})

	audio, err := provider.Synthesize(context.Background(), "привет")
	require.NoError(t, err)
	assert.Equal(t, []byte("wav-bytes"), audio.Content)
	assert.Equal(t, speech.AudioFormatWAV, audio.Format)
}

func TestSynthesizeNon200(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := provider.Synthesize(context.Background(), "привет")
	assert.Error(t, err)
}
