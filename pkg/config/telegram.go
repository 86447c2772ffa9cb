package config

type TelegramConfig struct {
	BotToken      string
	APIBaseURL    string
	DefaultChatID string
	WebAppURL     string
}

func loadTelegramConfig() TelegramConfig {
	return TelegramConfig{
		BotToken:      getEnv("TG_BOT_TOKEN", ""),
		APIBaseURL:    getEnv("TG_API_BASE_URL", "https://api.telegram.org"),
		DefaultChatID: getEnv("DEFAULT_CHAT_ID", ""),
		WebAppURL:     getEnv("TG_WEBAPP_URL", ""),
	}
}
