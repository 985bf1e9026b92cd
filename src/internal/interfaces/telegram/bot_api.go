package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BotAPI abstracts Telegram bot methods used to answer messages.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// UpdateSource is the long-polling side of the bot.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// ChatAdministratorsGetter lists the administrators of a chat.
type ChatAdministratorsGetter interface {
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
}

// Client is everything the runtime needs; *tgbotapi.BotAPI satisfies it.
type Client interface {
	BotAPI
	UpdateSource
	ChatAdministratorsGetter
}

var _ Client = (*tgbotapi.BotAPI)(nil)
