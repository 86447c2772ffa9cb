package config

import "time"

// AssistantConfig wires the voice pipeline: the external Python
// inference service, the conversation memory window and the command
// notification dispatch target.
type AssistantConfig struct {
	// Provider selects the inference backend: "python" or "openai"
	Provider string

	PythonAPIURL   string
	RequestTimeout time.Duration

	OpenAIAPIKey string
	OpenAIModel  string

	// MemoryBackend selects where conversation turns live: "postgres" or "redis"
	MemoryBackend    string
	MemoryLimit      int
	InstructionLimit int

	// NotifyURL is the fixed command dispatch endpoint; NotifyAuthKey is
	// sent as the x-auth shared secret. NotifyChatID is the static
	// recipient for voice-triggered messages.
	NotifyURL     string
	NotifyAuthKey string
	NotifyChatID  string
}

func loadAssistantConfig() AssistantConfig {
	return AssistantConfig{
		Provider:         getEnv("ASSISTANT_PROVIDER", "python"),
		PythonAPIURL:     getEnv("PYTHON_API_URL", "http://localhost:8000"),
		RequestTimeout:   getEnvDuration("ASSISTANT_REQUEST_TIMEOUT", 60*time.Second),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MemoryBackend:    getEnv("ASSISTANT_MEMORY_BACKEND", "postgres"),
		MemoryLimit:      getEnvInt("ASSISTANT_MEMORY_LIMIT", 10),
		InstructionLimit: getEnvInt("ASSISTANT_INSTRUCTION_LIMIT", 100),
		NotifyURL:        getEnv("NOTIFY_URL", "http://localhost:5555/sendMessage"),
		NotifyAuthKey:    getEnv("NOTIFY_AUTH_KEY", ""),
		NotifyChatID:     getEnv("NOTIFY_CHAT_ID", ""),
	}
}
