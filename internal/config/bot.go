package config

// Bot configures the Telegram notification sink. An empty token disables
// it; notifications are still logged.
type Bot struct {
	Token  string `env:"BOT_TOKEN"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}
