package telegram

import (
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int

	updates chan tgbotapi.Update
	stopped int

	admins      []tgbotapi.ChatMember
	adminsErr   error
	adminsAsked []tgbotapi.ChatAdministratorsConfig
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	b.nextID++
	return tgbotapi.Message{MessageID: b.nextID, Chat: &tgbotapi.Chat{ID: 1}}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped++
}

func (b *fakeBot) GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.adminsAsked = append(b.adminsAsked, config)
	return b.admins, b.adminsErr
}

// messages returns the sent text messages in order.
func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]tgbotapi.MessageConfig, 0, len(b.sent))
	for _, c := range b.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (b *fakeBot) texts() []string {
	msgs := b.messages()
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func (b *fakeBot) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = nil
}

// commandMessage builds a message the way Telegram delivers a command.
func commandMessage(from int64, text string) *tgbotapi.Message {
	length := strings.IndexByte(text, ' ')
	if length < 0 {
		length = len(text)
	}
	return &tgbotapi.Message{
		MessageID: 77,
		From:      &tgbotapi.User{ID: from},
		Chat:      &tgbotapi.Chat{ID: 500},
		Text:      text,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}
